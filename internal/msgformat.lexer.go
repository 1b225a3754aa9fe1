package internal

import (
	"go.uber.org/zap"
)

// Lexer tokenizes message source into a token stream.
//
// Tokens are recognized in a fixed order: whitespace runs, identifiers
// ([a-zA-Z0-9_-]+), then the single-character punctuation set. Any run of
// characters that starts none of those becomes one TEXT token.
type Lexer struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewLexer creates a new lexer for the given source
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns a token stream terminated by EOF.
// Tokenization never fails: every byte belongs to some token.
func (l *Lexer) Tokenize() []Token {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		tokens = append(tokens, l.scanToken())
	}

	tokens = append(tokens, NewEOFToken(l.currentPosition()))
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens
}

// scanToken scans the longest token starting at the current position
func (l *Lexer) scanToken() Token {
	start := l.pos
	pos := l.currentPosition()
	ch := l.peek()

	switch {
	case isWhitespace(ch):
		for !l.isAtEnd() && isWhitespace(l.peek()) {
			l.advance()
		}
		return NewToken(TokenTypeWhitespace, l.source[start:l.pos], pos)

	case isIdentChar(ch):
		for !l.isAtEnd() && isIdentChar(l.peek()) {
			l.advance()
		}
		return NewToken(TokenTypeIdentifier, l.source[start:l.pos], pos)
	}

	if tokenType, ok := singleCharTokens[ch]; ok {
		l.advance()
		return NewToken(tokenType, l.source[start:l.pos], pos)
	}

	// Anything else: consume until a recognized token could start
	for !l.isAtEnd() && !l.startsToken(l.peek()) {
		l.advance()
	}
	return NewToken(TokenTypeText, l.source[start:l.pos], pos)
}

// startsToken reports whether ch begins one of the recognized tokens
func (l *Lexer) startsToken(ch byte) bool {
	if isWhitespace(ch) || isIdentChar(ch) {
		return true
	}
	_, ok := singleCharTokens[ch]
	return ok
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current character without advancing
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// Character classification helpers

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == CharUnderscore || ch == CharHyphen
}

func isWhitespace(ch byte) bool {
	return ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet
}
