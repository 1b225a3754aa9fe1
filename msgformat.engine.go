package msgformat

import (
	"sort"
	"time"

	"github.com/itsatony/go-msgformat/internal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// MessageFormat is the main entry point. It holds the default locale and the
// formatter registry that compiled Renderers dispatch to.
type MessageFormat struct {
	registry *internal.Registry
	locale   language.Tag
	config   *formatConfig
	logger   *zap.Logger
}

// New creates a MessageFormat with the given options.
func New(opts ...Option) (*MessageFormat, error) {
	config := defaultFormatConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	locale, err := parseLocales(config.locales, logger)
	if err != nil {
		return nil, err
	}

	registry := internal.NewRegistry(internal.RegistryConfig{
		Cache:    config.cache,
		Location: config.location,
	}, logger)

	// Sorted so registration errors are deterministic
	names := make([]string, 0, len(config.formatters))
	for name := range config.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := registry.Register(name, config.formatters[name]); err != nil {
			return nil, newRegistryErrorFrom(err)
		}
		logger.Debug(LogMsgFormatterLoaded, zap.String(LogFieldFormatter, name))
	}

	logger.Debug(LogMsgEngineCreated,
		zap.String(LogFieldLocale, locale.String()),
		zap.Int(LogFieldFormatters, len(names)))

	return &MessageFormat{
		registry: registry,
		locale:   locale,
		config:   config,
		logger:   logger,
	}, nil
}

// MustNew creates a new MessageFormat and panics if there's an error.
func MustNew(opts ...Option) *MessageFormat {
	mf, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return mf
}

// Compile parses source and returns a reusable Renderer. Passing locales
// overrides the default locale for this Renderer only.
//
// Compilation is all-or-nothing: a syntax error returns a parse error with
// line and column metadata and no Renderer. Formatter names are not checked
// here; an unknown name fails when the Renderer runs.
func (mf *MessageFormat) Compile(source string, locales ...string) (Renderer, error) {
	locale := mf.locale
	if len(locales) > 0 {
		override, err := parseLocales(locales, mf.logger)
		if err != nil {
			return nil, err
		}
		locale = override
	}

	msg, err := internal.Parse(source, mf.logger)
	if err != nil {
		mf.logger.Debug(LogMsgCompileFailed, zap.Error(err))
		return nil, newParseErrorFrom(err)
	}

	render := internal.NewCompiler(mf.registry, locale, mf.logger).Compile(msg)
	logger := mf.logger

	return func(data map[string]any) (string, error) {
		out, err := render(data)
		if err != nil {
			logger.Debug(LogMsgRenderFailed, zap.Error(err))
			return "", newRenderErrorFrom(err)
		}
		return out, nil
	}, nil
}

// MustCompile compiles source and panics if there's an error.
func (mf *MessageFormat) MustCompile(source string, locales ...string) Renderer {
	r, err := mf.Compile(source, locales...)
	if err != nil {
		panic(err)
	}
	return r
}

// Format is a convenience method that compiles and renders in one step.
// For messages that will be rendered multiple times, use Compile instead.
func (mf *MessageFormat) Format(source string, data map[string]any) (string, error) {
	r, err := mf.Compile(source)
	if err != nil {
		return "", err
	}
	return r(data)
}

// Validate checks source for syntax errors without compiling it.
func (mf *MessageFormat) Validate(source string) error {
	if _, err := internal.Parse(source, mf.logger); err != nil {
		return newParseErrorFrom(err)
	}
	return nil
}

// RegisterFormatter adds a custom formatter after construction. Renderers
// look formatters up when they run, so previously compiled Renderers see it.
// Returns an error if a custom formatter with the same name already exists.
func (mf *MessageFormat) RegisterFormatter(name string, f Formatter) error {
	if err := mf.registry.Register(name, f); err != nil {
		return newRegistryErrorFrom(err)
	}
	return nil
}

// MustRegisterFormatter adds a custom formatter and panics if registration fails.
func (mf *MessageFormat) MustRegisterFormatter(name string, f Formatter) {
	if err := mf.RegisterFormatter(name, f); err != nil {
		panic(err)
	}
}

// Formatters returns the names of all available formatters in sorted order.
func (mf *MessageFormat) Formatters() []string {
	return mf.registry.List()
}

// HasFormatter checks if a formatter is available under the given name.
func (mf *MessageFormat) HasFormatter(name string) bool {
	return mf.registry.Has(name)
}

// Locale returns the default locale
func (mf *MessageFormat) Locale() language.Tag {
	return mf.locale
}

// TimeZone returns the time zone used for date and time output
func (mf *MessageFormat) TimeZone() *time.Location {
	return mf.registry.Location()
}

// CacheStats returns the format option cache statistics
func (mf *MessageFormat) CacheStats() CacheStats {
	return mf.registry.Cache().Stats()
}

// NumberInteger formats value as a number with no fraction digits. It can be
// registered as a custom formatter.
func (mf *MessageFormat) NumberInteger(value any, locale language.Tag, args ...any) string {
	return mf.registry.NumberInteger(value, locale, args...)
}

// NumberPercent formats value as a percentage (0.5 renders as 50%).
func (mf *MessageFormat) NumberPercent(value any, locale language.Tag, args ...any) string {
	return mf.registry.NumberPercent(value, locale, args...)
}

// NumberCurrency formats value as money; the first argument is the ISO 4217
// code, USD if absent.
func (mf *MessageFormat) NumberCurrency(value any, locale language.Tag, args ...any) string {
	return mf.registry.NumberCurrency(value, locale, args...)
}

// parseLocales returns the first tag in locales that parses
func parseLocales(locales []string, logger *zap.Logger) (language.Tag, error) {
	var lastErr error
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err == nil {
			return tag, nil
		}
		logger.Debug(LogMsgLocaleSkipped, zap.String(LogFieldLocale, l), zap.Error(err))
		lastErr = err
	}
	return language.Und, NewInvalidLocaleError(locales, lastErr)
}
