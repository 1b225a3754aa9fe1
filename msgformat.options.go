package msgformat

import (
	"time"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a MessageFormat.
type Option func(*formatConfig)

// formatConfig holds the internal configuration for a MessageFormat.
type formatConfig struct {
	locales    []string
	formatters map[string]Formatter
	cache      *FormatCache
	location   *time.Location
	logger     *zap.Logger
}

// defaultFormatConfig returns the default configuration.
func defaultFormatConfig() *formatConfig {
	return &formatConfig{
		locales:    []string{DefaultLocale},
		formatters: make(map[string]Formatter),
		cache:      nil,
		location:   nil,
		logger:     nil,
	}
}

// WithLocale sets the default locale as an ordered list of BCP 47 tags. The
// first tag that parses is used.
// Default: "en"
func WithLocale(locales ...string) Option {
	return func(c *formatConfig) {
		if len(locales) > 0 {
			c.locales = locales
		}
	}
}

// WithFormatter adds a custom formatter. Custom formatters are looked up
// before the built-ins, so a custom "number" replaces the built-in one.
func WithFormatter(name string, f Formatter) Option {
	return func(c *formatConfig) {
		c.formatters[name] = f
	}
}

// WithFormatters adds several custom formatters at once.
func WithFormatters(formatters map[string]Formatter) Option {
	return func(c *formatConfig) {
		for name, f := range formatters {
			c.formatters[name] = f
		}
	}
}

// WithCache shares a format option cache between MessageFormat instances.
// Default: a private cache per instance
func WithCache(cache *FormatCache) Option {
	return func(c *formatConfig) {
		c.cache = cache
	}
}

// WithTimeZone sets the time zone used by the date and time formatters.
// Default: time.Local
func WithTimeZone(loc *time.Location) Option {
	return func(c *formatConfig) {
		c.location = loc
	}
}

// WithLogger sets the logger.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatConfig) {
		c.logger = logger
	}
}
