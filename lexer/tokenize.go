package lexer

import "errors"

// Tokenize drains a lexer over src. The returned slice always ends with a
// TokenEOF. The error joins one *LexError per invalid token and is nil when
// the whole input lexed cleanly; the tokens are complete either way.
func Tokenize(src []byte) ([]Token, error) {
	lex := NewLexer(src)
	var tokens []Token
	var errs []error
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if err := tok.Err(); err != nil {
			errs = append(errs, err)
		}
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens, errors.Join(errs...)
}
