package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Lexer tokenizes source text into a stream of tokens. Malformed input never
// stops the scan: it yields TokenInvalid and the next call resumes after it.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes. The lexer never
// writes to src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Reset re-initializes the lexer over new source.
func (l *Lexer) Reset(src []byte) {
	l.src = src
	l.pos = 0
	l.line = 1
	l.col = 1
	l.peeked = nil
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked != nil {
		return *l.peeked
	}
	tok := l.scan()
	l.peeked = &tok
	return tok
}

// Next returns the next token and advances the lexer. Once TokenEOF has been
// returned, every later call returns TokenEOF at the same position.
func (l *Lexer) Next() Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.scan()
}

// Lexeme returns the raw source text a token was scanned from.
func (l *Lexer) Lexeme(tok Token) string {
	if tok.Pos.Offset < 0 || tok.End() > len(l.src) || tok.Len < 0 {
		return ""
	}
	return string(l.src[tok.Pos.Offset:tok.End()])
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *Lexer) peekRune() rune {
	if l.atEnd() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(l.src[l.pos:])
	return r
}

// advance consumes one character. A byte that is not valid UTF-8 counts as
// one character.
func (l *Lexer) advance() rune {
	r, w := utf8.DecodeRune(l.src[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) token(kind TokenKind, start int, pos Position) Token {
	return Token{Kind: kind, Literal: string(l.src[start:l.pos]), Pos: pos, Len: l.pos - start}
}

func (l *Lexer) invalid(reason Reason, start int, pos Position) Token {
	tok := l.token(TokenInvalid, start, pos)
	tok.Reason = reason
	return tok
}

// skipWhitespaceAndComments consumes insignificant input. It reports an
// invalid token when a block comment runs to end of input.
func (l *Lexer) skipWhitespaceAndComments() (Token, bool) {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			// Line comment: skip to end of line
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekAt(1) == '*':
			// Block comment: skip to the first */, comments do not nest
			pos := l.currentPos()
			start := l.pos
			l.advance() // consume /
			l.advance() // consume *
			for {
				if l.atEnd() {
					return l.invalid(ReasonUnterminatedComment, start, pos), true
				}
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance() // consume *
					l.advance() // consume /
					break
				}
				l.advance()
			}
		default:
			return Token{}, false
		}
	}
	return Token{}, false
}

func (l *Lexer) scan() Token {
	if tok, ok := l.skipWhitespaceAndComments(); ok {
		return tok
	}

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}
	}

	pos := l.currentPos()
	start := l.pos
	ch := l.peek()

	switch {
	case isIdentStart(l.peekRune()):
		return l.scanIdentifier()
	case isDigit(ch):
		return l.scanNumber()
	case ch == '"':
		return l.scanString()
	case ch == '\'':
		return l.scanChar()
	}

	if op, ok := matchOperator(l.src[l.pos:]); ok {
		for range op.text {
			l.advance()
		}
		return l.token(op.kind, start, pos)
	}

	l.advance()
	return l.invalid(ReasonUnrecognizedCharacter, start, pos)
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peekRune()) {
		l.advance()
	}

	tok := l.token(TokenIdentifier, start, pos)
	if kind, ok := LookupKeyword(tok.Literal); ok {
		tok.Kind = kind
		return tok
	}
	tok.Literal = norm.NFC.String(tok.Literal)
	return tok
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || (r != utf8.RuneError && unicode.IsLetter(r))
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc)
}
