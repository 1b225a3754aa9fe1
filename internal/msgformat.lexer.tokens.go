package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token represents a lexical token produced by the lexer
type Token struct {
	Type     TokenType // The type of token
	Value    string    // The literal source text of the token
	Position Position  // Source position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("Token{%s @ %s}", t.Type, t.Position)
	}
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Type, t.Value, t.Position)
}

// IsEOF returns true if this is an end-of-file token
func (t Token) IsEOF() bool {
	return t.Type == TokenTypeEOF
}

// IsWhitespace returns true if this is a whitespace run
func (t Token) IsWhitespace() bool {
	return t.Type == TokenTypeWhitespace
}

// IsOpenDelimiter returns true if the token opens one of the matched delimiter pairs
func (t Token) IsOpenDelimiter() bool {
	_, ok := closingDelimiters[t.Type]
	return ok
}

// NewToken creates a new token with the given type, value, and position
func NewToken(tokenType TokenType, value string, pos Position) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	}
}

// NewEOFToken creates an EOF token at the given position
func NewEOFToken(pos Position) Token {
	return Token{
		Type:     TokenTypeEOF,
		Position: pos,
	}
}

// closingDelimiters maps each opening delimiter to the token that closes it.
// Quotes close themselves.
var closingDelimiters = map[TokenType]TokenType{
	TokenTypeLBrace:      TokenTypeRBrace,
	TokenTypeLBracket:    TokenTypeRBracket,
	TokenTypeLParen:      TokenTypeRParen,
	TokenTypeQuoteSingle: TokenTypeQuoteSingle,
	TokenTypeQuoteDouble: TokenTypeQuoteDouble,
	TokenTypeQuoteTick:   TokenTypeQuoteTick,
}

// singleCharTokens is the fixed set of one-character tokens
var singleCharTokens = map[byte]TokenType{
	CharLBrace:      TokenTypeLBrace,
	CharRBrace:      TokenTypeRBrace,
	CharDot:         TokenTypeDot,
	CharComma:       TokenTypeComma,
	CharLBracket:    TokenTypeLBracket,
	CharRBracket:    TokenTypeRBracket,
	CharLParen:      TokenTypeLParen,
	CharRParen:      TokenTypeRParen,
	CharDoubleQuote: TokenTypeQuoteDouble,
	CharSingleQuote: TokenTypeQuoteSingle,
	CharBacktick:    TokenTypeQuoteTick,
	CharBackslash:   TokenTypeBackslash,
}
