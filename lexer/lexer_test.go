package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []TokenType {
	kinds := make([]TokenType, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Type
	}
	return kinds
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, err := New(`+ - / * % ^ ( ) { } ; , ? : & |`).ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, []TokenType{
		PLUS, MINUS, SLASH, STAR, PERCENT, CARET, LEFT_PAREN, RIGHT_PAREN,
		LEFT_BRACE, RIGHT_BRACE, SEMI_COLON, COMMA, QUESTION, COLON,
		AMPERSAND, PIPE, EOF,
	}, kindsOf(tokens))
}

func TestScanTokens_CompoundComparisons(t *testing.T) {
	tokens, err := New(`> >= < <= = == ! !=`).ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, []TokenType{
		GREATER_THAN, GREATER_THAN_EQUAL, LESS_THAN, LESS_THAN_EQUAL,
		EQUAL, EQUAL_EQUAL, BANG, BANG_EQUAL, EOF,
	}, kindsOf(tokens))
}

func TestScanTokens_KeywordsVsIdentifiers(t *testing.T) {
	tokens, err := New(`var x = funny`).ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 5) // var, x, =, funny, EOF
	assert.Equal(t, VAR, tokens[0].Type)
	assert.Equal(t, IDENTIFIER, tokens[1].Type)
	assert.Equal(t, EQUAL, tokens[2].Type)
	assert.Equal(t, IDENTIFIER, tokens[3].Type, "funny must not be split at the fun prefix")
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	tokens, err := New(`3.14 42`).ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, 3.14, tokens[0].Literal)
	assert.Equal(t, 42.0, tokens[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, err := New(`"hello" 'world'`).ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "hello", tokens[0].Literal)
	assert.Equal(t, "world", tokens[1].Literal)
}

func TestScanTokens_EmptyStringIsLexicalError(t *testing.T) {
	_, err := New(`""`).ScanTokens()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
}

func TestScanTokens_UnterminatedStringIsLexicalError(t *testing.T) {
	_, err := New(`"abc`).ScanTokens()
	require.Error(t, err)
}

func TestScanTokens_MismatchedQuotesIsLexicalError(t *testing.T) {
	_, err := New(`"abc'`).ScanTokens()
	require.Error(t, err)
}

func TestScanTokens_LineTracking(t *testing.T) {
	tokens, err := New("1\n2\n\n3").ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 4, tokens[2].Line)
}

func TestScanTokens_BacktickCommentsAreNotTokens(t *testing.T) {
	lex := New("1 + 2 `this is dropped\n+ 3")
	tokens, err := lex.ScanTokens()
	require.NoError(t, err)
	assert.NotContains(t, kindsOf(tokens), BACKTICK)
	require.Len(t, lex.Comments(), 1)
	assert.Contains(t, lex.Comments()[0], "this is dropped")
}

func TestScanTokens_UnexpectedCharacterIsLexicalError(t *testing.T) {
	_, err := New(`1 @ 2`).ScanTokens()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "@")
}

func TestScanTokens_AlwaysEndsInSingleEOF(t *testing.T) {
	tokens, err := New(`var a = 1;`).ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, EOF, tokens[len(tokens)-1].Type)
	for _, tok := range tokens[:len(tokens)-1] {
		assert.NotEqual(t, EOF, tok.Type)
	}
}
