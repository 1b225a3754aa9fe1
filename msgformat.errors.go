package msgformat

import (
	"errors"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-msgformat/internal"
)

// Error message constants
const (
	// Parse errors
	ErrMsgParseFailed       = "message parsing failed"
	ErrMsgUnclosedDelimiter = "unclosed delimiter"

	// Render errors
	ErrMsgUnknownFormatter = "unknown formatter"
	ErrMsgRenderFailed     = "message render failed"

	// Configuration errors
	ErrMsgInvalidLocale = "no valid locale"

	// Registry errors
	ErrMsgFormatterExists    = "formatter already registered"
	ErrMsgNilFormatter       = "formatter cannot be nil"
	ErrMsgEmptyFormatterName = "formatter name cannot be empty"
)

// Error code constants for categorization
const (
	ErrCodeParse      = "MSGFORMAT_PARSE"
	ErrCodeRender     = "MSGFORMAT_RENDER"
	ErrCodeValidation = "MSGFORMAT_VALIDATION"
	ErrCodeRegistry   = "MSGFORMAT_REGISTRY"
)

// Position represents a location in the message source
type Position = internal.Position

// NewParseError creates a syntax error with position context. The message
// names the failure and where it happened.
func NewParseError(msg string, pos Position, cause error) error {
	return parseError(msg, pos, cause)
}

func parseError(msg string, pos Position, cause error) *cuserr.CustomError {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// newParseErrorFrom converts the parser's error into a public parse error
func newParseErrorFrom(err error) error {
	var parseErr *internal.ParseError
	if !errors.As(err, &parseErr) {
		return NewParseError(ErrMsgParseFailed, Position{}, err)
	}

	custom := parseError(parseErr.Error(), parseErr.Position, parseErr)
	if parseErr.Delimiter != "" {
		custom = custom.WithMetadata(MetaKeyDelimiter, parseErr.Delimiter)
	}
	if parseErr.Expected != "" {
		custom = custom.
			WithMetadata(MetaKeyExpected, parseErr.Expected).
			WithMetadata(MetaKeyActual, parseErr.Actual)
	}
	return custom
}

// NewUnknownFormatterError creates the render-time error for a formatter name
// that no registry layer provides
func NewUnknownFormatterError(name string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed)
	} else {
		err = cuserr.NewNotFoundError(MetaKeyFormatter, name)
	}
	return err.
		WithMetadata(MetaKeyFormatter, name).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column))
}

// newRenderErrorFrom converts a render failure into a public error
func newRenderErrorFrom(err error) error {
	var fmtErr *internal.FormatterError
	if errors.As(err, &fmtErr) {
		return NewUnknownFormatterError(fmtErr.Name, fmtErr.Position, fmtErr)
	}
	return cuserr.WrapStdError(err, ErrCodeRender, ErrMsgRenderFailed)
}

// NewInvalidLocaleError creates an error for a locale list with no parseable tag
func NewInvalidLocaleError(locales []string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeValidation, ErrMsgInvalidLocale)
	} else {
		err = cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidLocale)
	}
	return err.WithMetadata(MetaKeyLocale, strings.Join(locales, ","))
}

// newRegistryErrorFrom converts a registry failure into a public error
func newRegistryErrorFrom(err error) error {
	var regErr *internal.RegistryError
	if !errors.As(err, &regErr) {
		return err
	}
	return cuserr.NewValidationError(ErrCodeRegistry, regErr.Message).
		WithMetadata(MetaKeyFormatter, regErr.Name)
}

// IsParseError reports whether err is a template syntax error
func IsParseError(err error) bool {
	var parseErr *internal.ParseError
	return errors.As(err, &parseErr)
}

// IsUnknownFormatterError reports whether err was raised for a formatter name
// that is not registered
func IsUnknownFormatterError(err error) bool {
	var fmtErr *internal.FormatterError
	return errors.As(err, &fmtErr)
}
