package lexer

import (
	"bytes"
	"sort"
)

type operator struct {
	text []byte
	kind TokenKind
}

// operators holds every punctuation and operator spelling, longest first, so
// the first prefix match is the maximal munch.
var operators = buildOperators(map[string]TokenKind{
	"{":    TokenLBrace,
	"}":    TokenRBrace,
	"(":    TokenLParen,
	")":    TokenRParen,
	"[":    TokenLBracket,
	"]":    TokenRBracket,
	";":    TokenSemicolon,
	":":    TokenColon,
	",":    TokenComma,
	".":    TokenDot,
	"...":  TokenEllipsis,
	"::":   TokenDoubleColon,
	"->":   TokenArrow,
	"?":    TokenQuestion,
	"=":    TokenAssign,
	"==":   TokenEquals,
	"!=":   TokenNotEquals,
	"<":    TokenLess,
	"<=":   TokenLessEq,
	">":    TokenGreater,
	">=":   TokenGreaterEq,
	"!":    TokenNot,
	"~":    TokenTilde,
	"&&":   TokenAndAnd,
	"||":   TokenOrOr,
	"++":   TokenIncrement,
	"--":   TokenDecrement,
	"+":    TokenPlus,
	"-":    TokenMinus,
	"*":    TokenStar,
	"/":    TokenSlash,
	"%":    TokenPercent,
	"&":    TokenAmp,
	"|":    TokenPipe,
	"^":    TokenCaret,
	"<<":   TokenShl,
	">>":   TokenShr,
	">>>":  TokenUShr,
	"+=":   TokenPlusAssign,
	"-=":   TokenMinusAssign,
	"*=":   TokenStarAssign,
	"/=":   TokenSlashAssign,
	"%=":   TokenPercentAssign,
	"&=":   TokenAmpAssign,
	"|=":   TokenPipeAssign,
	"^=":   TokenCaretAssign,
	"<<=":  TokenShlAssign,
	">>=":  TokenShrAssign,
	">>>=": TokenUShrAssign,
})

func buildOperators(table map[string]TokenKind) []operator {
	ops := make([]operator, 0, len(table))
	for text, kind := range table {
		ops = append(ops, operator{text: []byte(text), kind: kind})
	}
	sort.Slice(ops, func(i, j int) bool {
		if len(ops[i].text) != len(ops[j].text) {
			return len(ops[i].text) > len(ops[j].text)
		}
		return bytes.Compare(ops[i].text, ops[j].text) < 0
	})
	return ops
}

// matchOperator returns the longest operator that prefixes src.
func matchOperator(src []byte) (operator, bool) {
	for _, op := range operators {
		if bytes.HasPrefix(src, op.text) {
			return op, true
		}
	}
	return operator{}, false
}
