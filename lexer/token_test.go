package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "identifier", TokenIdentifier.String())
	assert.Equal(t, "'=='", TokenEquals.String())
	assert.Equal(t, "'class'", TokenClass.String())
	assert.Equal(t, "'void'", TokenVoid.String())
	assert.Equal(t, "TokenKind(9999)", TokenKind(9999).String())
}

func TestEveryKindHasAName(t *testing.T) {
	for k := TokenEOF; k < keywordEnd; k++ {
		switch k {
		case literalBeg, literalEnd, punctBeg, punctEnd, operatorBeg, operatorEnd, keywordBeg:
			continue
		}
		assert.NotContains(t, k.String(), "TokenKind(", "kind %d has no name", int(k))
	}
}

func TestTokenKindClasses(t *testing.T) {
	assert.True(t, TokenPackage.IsKeyword())
	assert.True(t, TokenInt.IsKeyword())
	assert.True(t, TokenInt.IsPrimitiveType())
	assert.False(t, TokenIdentifier.IsKeyword())
	assert.False(t, TokenBooleanLiteral.IsKeyword())

	assert.True(t, TokenStringLiteral.IsLiteral())
	assert.True(t, TokenNullLiteral.IsLiteral())
	assert.False(t, TokenIdentifier.IsLiteral())

	assert.True(t, TokenEquals.IsOperator())
	assert.True(t, TokenUShrAssign.IsOperator())
	assert.False(t, TokenSemicolon.IsOperator())

	assert.True(t, TokenSemicolon.IsPunctuation())
	assert.False(t, TokenPackage.IsPunctuation())
	assert.False(t, TokenClass.IsPrimitiveType())
}

func TestLookupKeyword(t *testing.T) {
	kind, ok := LookupKeyword("class")
	assert.True(t, ok)
	assert.Equal(t, TokenClass, kind)

	kind, ok = LookupKeyword("true")
	assert.True(t, ok)
	assert.Equal(t, TokenBooleanLiteral, kind)

	_, ok = LookupKeyword("classify")
	assert.False(t, ok)
}

func TestOperatorTableIsLongestFirst(t *testing.T) {
	for i := 1; i < len(operators); i++ {
		assert.GreaterOrEqual(t, len(operators[i-1].text), len(operators[i].text))
	}
	op, ok := matchOperator([]byte(">>>=x"))
	assert.True(t, ok)
	assert.Equal(t, TokenUShrAssign, op.kind)

	_, ok = matchOperator([]byte("@"))
	assert.False(t, ok)
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `identifier("x")`, Token{Kind: TokenIdentifier, Literal: "x"}.String())
	assert.Equal(t, `string("hi")`, Token{Kind: TokenStringLiteral, Literal: "hi"}.String())
	assert.Equal(t, "';'", Token{Kind: TokenSemicolon, Literal: ";"}.String())
	assert.Equal(t, `invalid("@", unrecognized character)`,
		Token{Kind: TokenInvalid, Literal: "@", Reason: ReasonUnrecognizedCharacter}.String())
}
