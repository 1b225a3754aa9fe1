package msgformat

// Default configuration values
const (
	DefaultLocale = "en"
)

// Metadata keys attached to errors
const (
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyOffset    = "offset"
	MetaKeyExpected  = "expected"
	MetaKeyActual    = "actual"
	MetaKeyDelimiter = "delimiter"
	MetaKeyFormatter = "formatter"
	MetaKeyLocale    = "locale"
)

// Log message constants
const (
	LogMsgEngineCreated   = "message format created"
	LogMsgCompileFailed   = "message compilation failed"
	LogMsgRenderFailed    = "message render failed"
	LogMsgLocaleSkipped   = "unparseable locale skipped"
	LogMsgFormatterLoaded = "custom formatter loaded"
)

// Log field constants
const (
	LogFieldLocale     = "locale"
	LogFieldFormatters = "formatter_count"
	LogFieldFormatter  = "formatter"
)
