package internal

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Formatter renders a resolved value for a locale. args are the raw argument
// fragments of the transformer: strings, []any for delimited spans, and the
// already rendered output of nested variables.
type Formatter func(value any, locale language.Tag, args ...any) string

// RegistryConfig configures the built-in formatters
type RegistryConfig struct {
	Cache    *FormatCache   // Shared option cache; a fresh one is created if nil
	Location *time.Location // Time zone for date and time output; time.Local if nil
}

// Registry maps formatter names to formatters in two layers. Lookups check the
// custom layer before the built-ins, so a custom formatter shadows a built-in
// of the same name without replacing it.
// It is thread-safe for concurrent read/write access.
type Registry struct {
	builtins map[string]Formatter
	custom   map[string]Formatter
	mu       sync.RWMutex
	cache    *FormatCache
	location *time.Location
	logger   *zap.Logger
}

// NewRegistry creates a registry with the built-in formatters installed
func NewRegistry(config RegistryConfig, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Cache == nil {
		config.Cache = NewFormatCache()
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	logger.Debug(LogMsgRegistryCreated)

	r := &Registry{
		custom:   make(map[string]Formatter),
		cache:    config.Cache,
		location: config.Location,
		logger:   logger,
	}
	r.builtins = map[string]Formatter{
		FormatterNameDate:     r.formatDate,
		FormatterNameTime:     r.formatTime,
		FormatterNameNumber:   r.formatNumber,
		FormatterNameDuration: FormatDuration,
		FormatterNameSelect:   FormatSelect,
	}
	return r
}

// Register adds a custom formatter. A custom formatter may shadow a built-in,
// but registering the same custom name twice is an error (first-come-wins).
func (r *Registry) Register(name string, f Formatter) error {
	if f == nil {
		return NewRegistryError(ErrMsgNilFormatter, name)
	}
	if name == StringValueEmpty {
		return NewRegistryError(ErrMsgEmptyFormatterName, StringValueEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.custom[name]; exists {
		return NewRegistryError(ErrMsgFormatterExists, name)
	}
	if _, builtin := r.builtins[name]; builtin {
		r.logger.Debug(LogMsgFormatterOverride, zap.String(LogFieldFormatter, name))
	}

	r.custom[name] = f
	r.logger.Debug(LogMsgFormatterAdded, zap.String(LogFieldFormatter, name))
	return nil
}

// Get retrieves a formatter by name, custom layer first.
// Returns the formatter and true if found, or nil and false if not.
func (r *Registry) Get(name string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.custom[name]; ok {
		return f, true
	}
	f, ok := r.builtins[name]
	return f, ok
}

// Has checks if a formatter is available under the given name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// IsBuiltin reports whether name is one of the built-in formatters
func (r *Registry) IsBuiltin(name string) bool {
	_, ok := r.builtins[name]
	return ok
}

// List returns all available formatter names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.builtins)+len(r.custom))
	for name := range r.builtins {
		seen[name] = struct{}{}
	}
	for name := range r.custom {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of available formatter names.
func (r *Registry) Count() int {
	return len(r.List())
}

// Cache returns the option cache shared by the built-in formatters
func (r *Registry) Cache() *FormatCache {
	return r.cache
}

// Location returns the time zone used by the date and time formatters
func (r *Registry) Location() *time.Location {
	return r.location
}
