package internal

import "fmt"

// Error message constants for the internal package
const (
	ErrMsgUnexpectedToken    = "unexpected token"
	ErrMsgExpectedToken      = "expected token not found"
	ErrMsgUnclosedDelimiter  = "unclosed delimiter"
	ErrMsgUnknownFormatter   = "unknown formatter"
	ErrMsgNilFormatter       = "formatter cannot be nil"
	ErrMsgEmptyFormatterName = "formatter name cannot be empty"
	ErrMsgFormatterExists    = "formatter already registered"
)

// Error format strings
const (
	ErrFmtWithPosition = "%s at %s"
	ErrFmtExpected     = "%s: expected %s, got %q at %s"
	ErrFmtDelimiter    = "%s %q opened at %s"
	ErrFmtNameMessage  = "%s: %s"
	ErrFmtQuotedDelim  = "'%s'"
)

// ParseError is a syntax error with position context
type ParseError struct {
	Message   string
	Position  Position
	Expected  string // What the grammar was looking for, if known
	Actual    string // The source text found instead
	Delimiter string // The unclosed delimiter, for unclosed delimiter errors
}

// Error implements the error interface
func (e *ParseError) Error() string {
	switch {
	case e.Delimiter != StringValueEmpty:
		return fmt.Sprintf(ErrFmtDelimiter, e.Message, e.Delimiter, e.Position)
	case e.Expected != StringValueEmpty:
		return fmt.Sprintf(ErrFmtExpected, e.Message, e.Expected, e.Actual, e.Position)
	default:
		return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position)
	}
}

// newUnclosedDelimiterError creates a fatal error for a delimiter without a
// matching close before end of input
func newUnclosedDelimiterError(open Token) *ParseError {
	return &ParseError{
		Message:   ErrMsgUnclosedDelimiter,
		Position:  open.Position,
		Delimiter: open.Value,
	}
}

// FormatterError is raised at render time when a variable names a formatter
// that neither the custom nor the built-in layer provides
type FormatterError struct {
	Message  string
	Name     string
	Position Position
}

// Error implements the error interface
func (e *FormatterError) Error() string {
	return fmt.Sprintf(ErrFmtWithPosition, fmt.Sprintf(ErrFmtNameMessage, e.Message, e.Name), e.Position)
}

// RegistryError represents a registry operation error
type RegistryError struct {
	Message string
	Name    string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, name string) *RegistryError {
	return &RegistryError{
		Message: message,
		Name:    name,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.Name != StringValueEmpty {
		return fmt.Sprintf(ErrFmtNameMessage, e.Message, e.Name)
	}
	return e.Message
}

// tokenDescription names a token type the way a template author would read it
func tokenDescription(tt TokenType) string {
	switch tt {
	case TokenTypeIdentifier:
		return "identifier"
	case TokenTypeWhitespace:
		return "whitespace"
	case TokenTypeEOF:
		return "end of input"
	}
	for ch, t := range singleCharTokens {
		if t == tt {
			return fmt.Sprintf(ErrFmtQuotedDelim, string(ch))
		}
	}
	return string(tt)
}
