package lexer

import "fmt"

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInvalid
	TokenIdentifier // [A-Za-z_$][A-Za-z0-9_$]* (Unicode letters allowed)

	literalBeg
	TokenIntLiteral     // 42, 0x2A, 42L
	TokenFloatLiteral   // 3.14, 1e10, 2.5f
	TokenStringLiteral  // "..." with escape processing
	TokenCharLiteral    // 'c' with escape processing
	TokenBooleanLiteral // true, false
	TokenNullLiteral    // null
	literalEnd

	punctBeg
	TokenLBrace      // {
	TokenRBrace      // }
	TokenLParen      // (
	TokenRParen      // )
	TokenLBracket    // [
	TokenRBracket    // ]
	TokenSemicolon   // ;
	TokenColon       // :
	TokenComma       // ,
	TokenDot         // .
	TokenEllipsis    // ...
	TokenDoubleColon // ::
	TokenArrow       // ->
	TokenQuestion    // ?
	punctEnd

	operatorBeg
	TokenAssign      // =
	TokenEquals      // ==
	TokenNotEquals   // !=
	TokenLess        // <
	TokenLessEq      // <=
	TokenGreater     // >
	TokenGreaterEq   // >=
	TokenNot         // !
	TokenTilde       // ~
	TokenAndAnd      // &&
	TokenOrOr        // ||
	TokenIncrement   // ++
	TokenDecrement   // --
	TokenPlus        // +
	TokenMinus       // -
	TokenStar        // *
	TokenSlash       // /
	TokenPercent     // %
	TokenAmp         // &
	TokenPipe        // |
	TokenCaret       // ^
	TokenShl         // <<
	TokenShr         // >>
	TokenUShr        // >>>
	TokenPlusAssign  // +=
	TokenMinusAssign // -=
	TokenStarAssign  // *=
	TokenSlashAssign // /=
	TokenPercentAssign
	TokenAmpAssign
	TokenPipeAssign
	TokenCaretAssign
	TokenShlAssign
	TokenShrAssign
	TokenUShrAssign
	operatorEnd

	// Keywords (identifier text checked against keyword map)
	keywordBeg
	TokenPackage
	TokenImport
	TokenClass
	TokenInterface
	TokenExtends
	TokenImplements
	TokenPublic
	TokenProtected
	TokenPrivate
	TokenStatic
	TokenAbstract
	TokenFinal
	TokenNative
	TokenSynchronized
	TokenTransient
	TokenVolatile
	TokenIf
	TokenElse
	TokenWhile
	TokenDo
	TokenSwitch
	TokenCase
	TokenDefault
	TokenBreak
	TokenContinue
	TokenReturn
	TokenGoto
	TokenTry
	TokenCatch
	TokenFinally
	TokenThrow
	TokenThrows
	TokenNew
	TokenThis
	TokenSuper
	TokenInstanceof
	TokenConst

	// Primitive types
	TokenByte
	TokenShort
	TokenInt
	TokenLong
	TokenChar
	TokenFloat
	TokenDouble
	TokenBoolean
	TokenVoid
	keywordEnd
)

var tokenNames = map[TokenKind]string{
	TokenEOF:            "EOF",
	TokenInvalid:        "invalid",
	TokenIdentifier:     "identifier",
	TokenIntLiteral:     "integer",
	TokenFloatLiteral:   "float",
	TokenStringLiteral:  "string",
	TokenCharLiteral:    "char",
	TokenBooleanLiteral: "boolean",
	TokenNullLiteral:    "null",

	TokenLBrace:      "'{'",
	TokenRBrace:      "'}'",
	TokenLParen:      "'('",
	TokenRParen:      "')'",
	TokenLBracket:    "'['",
	TokenRBracket:    "']'",
	TokenSemicolon:   "';'",
	TokenColon:       "':'",
	TokenComma:       "','",
	TokenDot:         "'.'",
	TokenEllipsis:    "'...'",
	TokenDoubleColon: "'::'",
	TokenArrow:       "'->'",
	TokenQuestion:    "'?'",

	TokenAssign:        "'='",
	TokenEquals:        "'=='",
	TokenNotEquals:     "'!='",
	TokenLess:          "'<'",
	TokenLessEq:        "'<='",
	TokenGreater:       "'>'",
	TokenGreaterEq:     "'>='",
	TokenNot:           "'!'",
	TokenTilde:         "'~'",
	TokenAndAnd:        "'&&'",
	TokenOrOr:          "'||'",
	TokenIncrement:     "'++'",
	TokenDecrement:     "'--'",
	TokenPlus:          "'+'",
	TokenMinus:         "'-'",
	TokenStar:          "'*'",
	TokenSlash:         "'/'",
	TokenPercent:       "'%'",
	TokenAmp:           "'&'",
	TokenPipe:          "'|'",
	TokenCaret:         "'^'",
	TokenShl:           "'<<'",
	TokenShr:           "'>>'",
	TokenUShr:          "'>>>'",
	TokenPlusAssign:    "'+='",
	TokenMinusAssign:   "'-='",
	TokenStarAssign:    "'*='",
	TokenSlashAssign:   "'/='",
	TokenPercentAssign: "'%='",
	TokenAmpAssign:     "'&='",
	TokenPipeAssign:    "'|='",
	TokenCaretAssign:   "'^='",
	TokenShlAssign:     "'<<='",
	TokenShrAssign:     "'>>='",
	TokenUShrAssign:    "'>>>='",
}

func init() {
	for word, kind := range keywords {
		tokenNames[kind] = "'" + word + "'"
	}
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsKeyword reports whether k is a reserved word, including primitive types.
func (k TokenKind) IsKeyword() bool { return keywordBeg < k && k < keywordEnd }

// IsLiteral reports whether k is a literal kind.
func (k TokenKind) IsLiteral() bool { return literalBeg < k && k < literalEnd }

// IsOperator reports whether k is an arithmetic, relational, logical,
// bitwise or assignment operator.
func (k TokenKind) IsOperator() bool { return operatorBeg < k && k < operatorEnd }

// IsPunctuation reports whether k is a structural token.
func (k TokenKind) IsPunctuation() bool { return punctBeg < k && k < punctEnd }

// IsPrimitiveType reports whether k names a primitive type or void.
func (k TokenKind) IsPrimitiveType() bool { return TokenByte <= k && k <= TokenVoid }

// Position is a location in source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in characters
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by the Lexer. Tokens own their
// text; they stay valid after the source buffer is released.
type Token struct {
	Kind TokenKind
	// Literal is the token text: raw for identifiers, numbers and operators,
	// decoded with delimiters stripped for string and char literals, and the
	// offending text for invalid tokens.
	Literal string
	Pos     Position
	// Len is the byte length of the lexeme in the source, so
	// src[Pos.Offset:Pos.Offset+Len] is the raw lexeme.
	Len int
	// Reason is set for TokenInvalid only.
	Reason Reason
}

// End returns the byte offset just past the lexeme.
func (t Token) End() int { return t.Pos.Offset + t.Len }

// Bool returns the value of a boolean literal. It is false for every other kind.
func (t Token) Bool() bool {
	return t.Kind == TokenBooleanLiteral && t.Literal == "true"
}

// Err returns the error carried by an invalid token, or nil.
func (t Token) Err() *LexError {
	if t.Kind != TokenInvalid {
		return nil
	}
	return &LexError{Reason: t.Reason, Text: t.Literal, Pos: t.Pos}
}

func (t Token) String() string {
	switch {
	case t.Kind == TokenInvalid:
		return fmt.Sprintf("invalid(%q, %s)", t.Literal, t.Reason)
	case t.Kind == TokenIdentifier, t.Kind.IsLiteral():
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	}
	return t.Kind.String()
}

// keywords maps reserved spellings to their token kinds.
var keywords = map[string]TokenKind{
	"package":      TokenPackage,
	"import":       TokenImport,
	"class":        TokenClass,
	"interface":    TokenInterface,
	"extends":      TokenExtends,
	"implements":   TokenImplements,
	"public":       TokenPublic,
	"protected":    TokenProtected,
	"private":      TokenPrivate,
	"static":       TokenStatic,
	"abstract":     TokenAbstract,
	"final":        TokenFinal,
	"native":       TokenNative,
	"synchronized": TokenSynchronized,
	"transient":    TokenTransient,
	"volatile":     TokenVolatile,
	"if":           TokenIf,
	"else":         TokenElse,
	"while":        TokenWhile,
	"do":           TokenDo,
	"switch":       TokenSwitch,
	"case":         TokenCase,
	"default":      TokenDefault,
	"break":        TokenBreak,
	"continue":     TokenContinue,
	"return":       TokenReturn,
	"goto":         TokenGoto,
	"try":          TokenTry,
	"catch":        TokenCatch,
	"finally":      TokenFinally,
	"throw":        TokenThrow,
	"throws":       TokenThrows,
	"new":          TokenNew,
	"this":         TokenThis,
	"super":        TokenSuper,
	"instanceof":   TokenInstanceof,
	"const":        TokenConst,
	"byte":         TokenByte,
	"short":        TokenShort,
	"int":          TokenInt,
	"long":         TokenLong,
	"char":         TokenChar,
	"float":        TokenFloat,
	"double":       TokenDouble,
	"boolean":      TokenBoolean,
	"void":         TokenVoid,
}

// literalWords are identifier spellings that produce literal tokens.
var literalWords = map[string]TokenKind{
	"true":  TokenBooleanLiteral,
	"false": TokenBooleanLiteral,
	"null":  TokenNullLiteral,
}

// LookupKeyword returns the token kind for a reserved spelling, and whether
// the spelling is reserved at all.
func LookupKeyword(word string) (TokenKind, bool) {
	if kind, ok := keywords[word]; ok {
		return kind, true
	}
	kind, ok := literalWords[word]
	return kind, ok
}
