package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Data file extensions decoded as YAML; anything else is JSON
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate   = "template source required (--template or --message)"
	ErrMsgInvalidJSON       = "invalid JSON data"
	ErrMsgInvalidYAML       = "invalid YAML data"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgCompileFailed     = "message compilation failed"
	ErrMsgRenderFailed      = "message render failed"
	ErrMsgEngineFailed      = "failed to create formatter"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
)

// Version output format templates
const (
	VersionTextTemplate = "go-msgformat version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output format templates
const (
	ValidationTextValid   = "%s: valid"
	ValidationTextInvalid = "%s: %v"
	ValidationTextSummary = "%d of %d template(s) invalid"
)

// CLI metadata
const (
	CLIName        = "msgformat"
	CLIDescription = "ICU-style message template compiler"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtWrapError   = "%s: %w"
	FmtErrorPrefix = "error: "
	FmtNewline     = "\n"
	FmtStdinName   = "<stdin>"
)
