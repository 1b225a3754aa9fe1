package msgformat

import (
	"github.com/itsatony/go-msgformat/internal"
	"golang.org/x/text/language"
)

// Formatter renders a resolved variable value for a locale. args are the raw
// argument fragments written after the formatter name: strings, []any for
// delimited spans such as {...} or (...), and the rendered output of variables
// nested inside braces.
//
//	func shout(value any, _ language.Tag, _ ...any) string {
//	    return strings.ToUpper(msgformat.Stringify(value))
//	}
type Formatter = internal.Formatter

// FormatCache memoizes locale-specific formatter setup. It is safe for
// concurrent use and may be shared between MessageFormat instances.
type FormatCache = internal.FormatCache

// CacheStats reports FormatCache effectiveness
type CacheStats = internal.CacheStats

// NewFormatCache creates an empty FormatCache
func NewFormatCache() *FormatCache {
	return internal.NewFormatCache()
}

// Undefined is the value of a variable whose path does not resolve. It
// renders as "undefined".
var Undefined = internal.Undefined

// IsUndefined reports whether v is Undefined
func IsUndefined(v any) bool {
	return internal.IsUndefined(v)
}

// Stringify converts a value the way variables without a formatter render it
func Stringify(v any) string {
	return internal.Stringify(v)
}

// ToNumber coerces a value to a number the way the number formatter does
func ToNumber(v any) float64 {
	return internal.ToNumber(v)
}

// Resolve walks keys through record, returning def if the path is absent.
// Present values are returned unchanged, including nil, 0 and false.
func Resolve(record any, keys []any, def any) any {
	return internal.Resolve(record, keys, def)
}

// Duration is the built-in duration formatter: seconds as [h:]m:ss
func Duration(value any, locale language.Tag, args ...any) string {
	return internal.FormatDuration(value, locale, args...)
}

// Select is the built-in select formatter
func Select(value any, locale language.Tag, args ...any) string {
	return internal.FormatSelect(value, locale, args...)
}
