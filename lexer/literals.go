package lexer

import (
	"strconv"
	"strings"
)

// scanNumber scans an integer or floating-point literal. Accepted forms:
//
//	42  42L  0x2A  0x2AL  3.14  1e10  1.5E-3  2.5f  7d
//
// A trailing dot (1.), a second fraction (1.2.3), an exponent without digits
// (1e), a bare hex prefix (0x) and a digit run glued to letters (5mm) are all
// rejected as a single malformed number.
func (l *Lexer) scanNumber() Token {
	pos := l.currentPos()
	start := l.pos
	kind := TokenIntLiteral
	malformed := false

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.advance() // 0
		l.advance() // x
		if !isHexDigit(l.peek()) {
			malformed = true
		}
		for !l.atEnd() && isHexDigit(l.peek()) {
			l.advance()
		}
		if l.peek() == 'L' || l.peek() == 'l' {
			l.advance()
		}
		return l.finishNumber(kind, malformed, start, pos)
	}

	l.consumeDigits()

	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		kind = TokenFloatLiteral
		l.advance() // consume '.'
		l.consumeDigits()
	}

	if e := l.peek(); e == 'e' || e == 'E' {
		sign := l.peekAt(1) == '+' || l.peekAt(1) == '-'
		switch {
		case isDigit(l.peekAt(1)):
			kind = TokenFloatLiteral
			l.advance() // e
			l.consumeDigits()
		case sign && isDigit(l.peekAt(2)):
			kind = TokenFloatLiteral
			l.advance() // e
			l.advance() // sign
			l.consumeDigits()
		}
	}

	for l.peek() == '.' {
		malformed = true
		l.advance()
		l.consumeDigits()
	}

	switch l.peek() {
	case 'L', 'l':
		if kind == TokenIntLiteral {
			l.advance()
		}
	case 'f', 'F', 'd', 'D':
		kind = TokenFloatLiteral
		l.advance()
	}

	return l.finishNumber(kind, malformed, start, pos)
}

func (l *Lexer) finishNumber(kind TokenKind, malformed bool, start int, pos Position) Token {
	if !l.atEnd() && isIdentPart(l.peekRune()) {
		malformed = true
		for !l.atEnd() && isIdentPart(l.peekRune()) {
			l.advance()
		}
	}
	if malformed {
		return l.invalid(ReasonMalformedNumber, start, pos)
	}
	return l.token(kind, start, pos)
}

func (l *Lexer) consumeDigits() {
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
}

// scanString scans a double-quoted literal. The token literal is the decoded
// contents without the quotes.
func (l *Lexer) scanString() Token {
	pos := l.currentPos()
	start := l.pos
	l.advance() // consume opening "

	var sb strings.Builder
	reason := ReasonNone
	for {
		if l.atEnd() || l.peek() == '\n' {
			return l.invalid(ReasonUnterminatedString, start, pos)
		}
		from := l.pos
		ch := l.advance()
		if ch == '"' {
			break
		}
		if ch == '\\' {
			r, ok := l.scanEscape()
			if !ok && reason == ReasonNone {
				reason = ReasonInvalidEscape
			}
			sb.WriteRune(r)
			continue
		}
		sb.Write(l.src[from:l.pos])
	}

	if reason != ReasonNone {
		return l.invalid(reason, start, pos)
	}
	return Token{Kind: TokenStringLiteral, Literal: sb.String(), Pos: pos, Len: l.pos - start}
}

// scanChar scans a single-quoted literal holding exactly one character after
// escape resolution.
func (l *Lexer) scanChar() Token {
	pos := l.currentPos()
	start := l.pos
	l.advance() // consume opening '

	var value []byte
	count := 0
	reason := ReasonNone
	for {
		if l.atEnd() || l.peek() == '\n' {
			return l.invalid(ReasonUnterminatedChar, start, pos)
		}
		from := l.pos
		ch := l.advance()
		if ch == '\'' {
			break
		}
		count++
		if ch == '\\' {
			r, ok := l.scanEscape()
			if !ok && reason == ReasonNone {
				reason = ReasonInvalidEscape
			}
			value = []byte(string(r))
			continue
		}
		value = l.src[from:l.pos]
	}

	if reason == ReasonNone && count != 1 {
		reason = ReasonMalformedChar
	}
	if reason != ReasonNone {
		return l.invalid(reason, start, pos)
	}
	return Token{Kind: TokenCharLiteral, Literal: string(value), Pos: pos, Len: l.pos - start}
}

// scanEscape decodes the escape following a backslash. Supported:
// \b \t \n \f \r \" \' \\ \0 and \uXXXX (one or more u's, four hex digits).
// A newline or end of input after the backslash is left for the caller.
func (l *Lexer) scanEscape() (rune, bool) {
	if l.atEnd() || l.peek() == '\n' {
		return 0, false
	}
	switch esc := l.advance(); esc {
	case 'b':
		return '\b', true
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'f':
		return '\f', true
	case 'r':
		return '\r', true
	case '"', '\'', '\\':
		return esc, true
	case '0':
		return 0, true
	case 'u':
		for l.peek() == 'u' {
			l.advance()
		}
		from := l.pos
		for i := 0; i < 4; i++ {
			if !isHexDigit(l.peek()) {
				return 0, false
			}
			l.advance()
		}
		v, err := strconv.ParseUint(string(l.src[from:l.pos]), 16, 32)
		if err != nil {
			return 0, false
		}
		return rune(v), true
	default:
		return 0, false
	}
}
