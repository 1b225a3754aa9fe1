package internal

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeWhitespace  TokenType = "WHITESPACE"
	TokenTypeIdentifier  TokenType = "IDENTIFIER"
	TokenTypeLBrace      TokenType = "LBRACE"
	TokenTypeRBrace      TokenType = "RBRACE"
	TokenTypeDot         TokenType = "DOT"
	TokenTypeComma       TokenType = "COMMA"
	TokenTypeLBracket    TokenType = "LBRACKET"
	TokenTypeRBracket    TokenType = "RBRACKET"
	TokenTypeLParen      TokenType = "LPAREN"
	TokenTypeRParen      TokenType = "RPAREN"
	TokenTypeQuoteDouble TokenType = "QUOTE_DOUBLE"
	TokenTypeQuoteSingle TokenType = "QUOTE_SINGLE"
	TokenTypeQuoteTick   TokenType = "QUOTE_TICK"
	TokenTypeBackslash   TokenType = "BACKSLASH"
	TokenTypeText        TokenType = "TEXT"
	TokenTypeEOF         TokenType = "EOF"
)

// NodeType identifies AST node types
type NodeType int

// Node type constants
const (
	NodeTypeMessage NodeType = iota
	NodeTypeText
	NodeTypeLiteral
	NodeTypePath
	NodeTypeTransformer
	NodeTypeVariable
	NodeTypeSpan
)

// Node type string names for debugging
const (
	NodeTypeNameMessage     = "MESSAGE"
	NodeTypeNameText        = "TEXT"
	NodeTypeNameLiteral     = "LITERAL"
	NodeTypeNamePath        = "PATH"
	NodeTypeNameTransformer = "TRANSFORMER"
	NodeTypeNameVariable    = "VARIABLE"
	NodeTypeNameSpan        = "SPAN"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeMessage:
		return NodeTypeNameMessage
	case NodeTypeText:
		return NodeTypeNameText
	case NodeTypeLiteral:
		return NodeTypeNameLiteral
	case NodeTypePath:
		return NodeTypeNamePath
	case NodeTypeTransformer:
		return NodeTypeNameTransformer
	case NodeTypeVariable:
		return NodeTypeNameVariable
	case NodeTypeSpan:
		return NodeTypeNameSpan
	default:
		return NodeTypeNameMessage
	}
}

// Character constants
const (
	CharLBrace      = '{'
	CharRBrace      = '}'
	CharDot         = '.'
	CharComma       = ','
	CharLBracket    = '['
	CharRBracket    = ']'
	CharLParen      = '('
	CharRParen      = ')'
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharBacktick    = '`'
	CharBackslash   = '\\'
	CharUnderscore  = '_'
	CharHyphen      = '-'
	CharSpace       = ' '
	CharTab         = '\t'
	CharNewline     = '\n'
	CharCarriageRet = '\r'
	CharColon       = ':'
	CharMinus       = '-'
	CharZero        = '0'
)

// String value constants
const (
	StringValueEmpty     = ""
	StringValueUndefined = "undefined"
	StringValueNull      = "null"
	StringValueTrue      = "true"
	StringValueFalse     = "false"
	StringValueNaN       = "NaN"
	StringValueInfinity  = "Infinity"
	StringValueNegInf    = "-Infinity"
	StringValueObject    = "[object Object]"
	StringValueColon     = ":"
	StringValueComma     = ","
	StringValueSpace     = " "
	StringValueLBrace    = "{"
	StringValueRBrace    = "}"
	StringValueUnderline = "_"
	InvalidDateText      = "Invalid Date"
)

// Display constants for AST String() output
const (
	MaxStringDisplayLength = 50
	TruncatedStringLength  = 47
	TruncationSuffix       = "..."
)

// Log message constants
const (
	LogMsgLexerCreated      = "lexer created"
	LogMsgTokenizerStart    = "tokenization started"
	LogMsgTokenizerEnd      = "tokenization completed"
	LogMsgParserCreated     = "parser created"
	LogMsgParserStart       = "parsing started"
	LogMsgParserEnd         = "parsing completed"
	LogMsgParserFailed      = "parsing failed"
	LogMsgCompileStart      = "compilation started"
	LogMsgCompileEnd        = "compilation completed"
	LogMsgRegistryCreated   = "formatter registry created"
	LogMsgFormatterAdded    = "formatter registered"
	LogMsgFormatterOverride = "custom formatter overrides built-in"
	LogMsgFormatterMissing  = "formatter not found"
	LogMsgCacheMiss         = "format options cache miss"
	LogMsgCurrencyInvalid   = "invalid currency code"
)

// Log field constants
const (
	LogFieldSource    = "source_length"
	LogFieldTokens    = "token_count"
	LogFieldNodes     = "node_count"
	LogFieldFormatter = "formatter"
	LogFieldLocale    = "locale"
	LogFieldCacheKey  = "cache_key"
	LogFieldCurrency  = "currency"
	LogFieldError     = "error"
	LogFieldPosition  = "position"
)

// Built-in formatter names
const (
	FormatterNameDate     = "date"
	FormatterNameTime     = "time"
	FormatterNameNumber   = "number"
	FormatterNameDuration = "duration"
	FormatterNameSelect   = "select"
)

// Formatter style and option keywords
const (
	StyleShort         = "short"
	StyleLong          = "long"
	StyleFull          = "full"
	NumberKindInteger  = "integer"
	NumberKindPercent  = "percent"
	NumberKindCurrency = "currency"
	DefaultCurrency    = "USD"
	SelectKeyOther     = "other"
)

// Format cache key prefixes
const (
	CacheKeyNumber    = "number"
	CacheKeyDate      = "date"
	CacheKeyTime      = "time"
	CacheKeySeparator = "|"
)

// Numeric constants
const (
	SecondsPerMinute      = 60
	MinutesPerHour        = 60
	DurationFractionDigit = 3
	PadWidthThreshold     = 10
	IntBase10             = 10
	FloatBitSize64        = 64
	FloatFormatFlag       = 'f'
	FloatPrecisionAll     = -1
	CurrencyFractionDigit = 2
	ExponentUpperBound    = 1e21
	ExponentLowerBound    = 1e-6
)
