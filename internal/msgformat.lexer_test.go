package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type tokenSpec struct {
	Type  TokenType
	Value string
}

func tokenSpecs(tokens []Token) []tokenSpec {
	specs := make([]tokenSpec, len(tokens))
	for i, tok := range tokens {
		specs[i] = tokenSpec{Type: tok.Type, Value: tok.Value}
	}
	return specs
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenSpec
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []tokenSpec{{Type: TokenTypeEOF}},
		},
		{
			name:  "identifier and text",
			input: "Hello!",
			expected: []tokenSpec{
				{TokenTypeIdentifier, "Hello"},
				{TokenTypeText, "!"},
				{Type: TokenTypeEOF},
			},
		},
		{
			name:  "simple variable",
			input: "Hi {name}",
			expected: []tokenSpec{
				{TokenTypeIdentifier, "Hi"},
				{TokenTypeWhitespace, " "},
				{TokenTypeLBrace, "{"},
				{TokenTypeIdentifier, "name"},
				{TokenTypeRBrace, "}"},
				{Type: TokenTypeEOF},
			},
		},
		{
			name:  "whitespace run is one token",
			input: "a \t\n b",
			expected: []tokenSpec{
				{TokenTypeIdentifier, "a"},
				{TokenTypeWhitespace, " \t\n "},
				{TokenTypeIdentifier, "b"},
				{Type: TokenTypeEOF},
			},
		},
		{
			name:  "identifier includes digits, underscore and hyphen",
			input: "user_id-2",
			expected: []tokenSpec{
				{TokenTypeIdentifier, "user_id-2"},
				{Type: TokenTypeEOF},
			},
		},
		{
			name:  "punctuation tokens",
			input: "{}.,[]()\"'`\\",
			expected: []tokenSpec{
				{TokenTypeLBrace, "{"},
				{TokenTypeRBrace, "}"},
				{TokenTypeDot, "."},
				{TokenTypeComma, ","},
				{TokenTypeLBracket, "["},
				{TokenTypeRBracket, "]"},
				{TokenTypeLParen, "("},
				{TokenTypeRParen, ")"},
				{TokenTypeQuoteDouble, "\""},
				{TokenTypeQuoteSingle, "'"},
				{TokenTypeQuoteTick, "`"},
				{TokenTypeBackslash, "\\"},
				{Type: TokenTypeEOF},
			},
		},
		{
			name:  "text run stops at the next token",
			input: "@$!foo:EUR",
			expected: []tokenSpec{
				{TokenTypeText, "@$!"},
				{TokenTypeIdentifier, "foo"},
				{TokenTypeText, ":"},
				{TokenTypeIdentifier, "EUR"},
				{Type: TokenTypeEOF},
			},
		},
		{
			name:  "escaped brace",
			input: `\{x\}`,
			expected: []tokenSpec{
				{TokenTypeBackslash, "\\"},
				{TokenTypeLBrace, "{"},
				{TokenTypeIdentifier, "x"},
				{TokenTypeBackslash, "\\"},
				{TokenTypeRBrace, "}"},
				{Type: TokenTypeEOF},
			},
		},
		{
			name:  "multi-byte text",
			input: "héllo",
			expected: []tokenSpec{
				{TokenTypeIdentifier, "h"},
				{TokenTypeText, "é"},
				{TokenTypeIdentifier, "llo"},
				{Type: TokenTypeEOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewLexer(tt.input, zap.NewNop()).Tokenize()
			assert.Equal(t, tt.expected, tokenSpecs(tokens))
		})
	}
}

func TestLexer_Tokenize_Positions(t *testing.T) {
	tokens := NewLexer("a\n{b}", zap.NewNop()).Tokenize()
	require.Len(t, tokens, 6)

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, tokens[0].Position)
	assert.Equal(t, Position{Offset: 1, Line: 1, Column: 2}, tokens[1].Position)
	assert.Equal(t, Position{Offset: 2, Line: 2, Column: 1}, tokens[2].Position)
	assert.Equal(t, Position{Offset: 3, Line: 2, Column: 2}, tokens[3].Position)
	assert.Equal(t, Position{Offset: 4, Line: 2, Column: 3}, tokens[4].Position)
	assert.Equal(t, Position{Offset: 5, Line: 2, Column: 4}, tokens[5].Position)
	assert.True(t, tokens[5].IsEOF())
}

func TestLexer_NilLogger(t *testing.T) {
	tokens := NewLexer("x", nil).Tokenize()
	assert.Len(t, tokens, 2)
}

func TestToken_Helpers(t *testing.T) {
	assert.True(t, NewToken(TokenTypeLParen, "(", Position{}).IsOpenDelimiter())
	assert.True(t, NewToken(TokenTypeQuoteTick, "`", Position{}).IsOpenDelimiter())
	assert.False(t, NewToken(TokenTypeRParen, ")", Position{}).IsOpenDelimiter())
	assert.True(t, NewToken(TokenTypeWhitespace, " ", Position{}).IsWhitespace())
	assert.Contains(t, NewToken(TokenTypeText, "x", Position{Line: 1, Column: 2}).String(), "line 1, column 2")
}
