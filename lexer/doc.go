// Package lexer implements the lexical analyzer for a Java-like source
// language, the first stage of the jlexer compiler front end.
//
// The Lexer is a pull-based scanner over an in-memory buffer. Each call to
// Next returns exactly one Token carrying its kind, its text and the
// position where it starts:
//
//   - Whitespace, // line comments and /* block */ comments are skipped.
//     Block comments do not nest.
//   - Identifiers are checked against the keyword table, so "class" is
//     TokenClass while "classify" is an identifier.
//   - Operators use maximal munch: "==" is one TokenEquals.
//   - String and char literals have their quotes stripped and escapes
//     resolved; numbers keep their raw spelling.
//
// Lexing never stops on bad input. Malformed lexemes come back as
// TokenInvalid with a Reason, and scanning resumes after them, so a caller
// can report every lexical error in one pass. TokenEOF is returned once the
// input is drained and on every call after that.
//
// Usage:
//
//	lex := lexer.NewLexer(src)
//	for tok := lex.Next(); tok.Kind != lexer.TokenEOF; tok = lex.Next() {
//	    fmt.Println(tok.Pos, tok)
//	}
//
// Tokenize does the same in one call and joins the lexical errors.
package lexer
