package internal

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// UndefinedValue is the type of the Undefined sentinel
type UndefinedValue struct{}

// String returns "undefined"
func (UndefinedValue) String() string {
	return StringValueUndefined
}

// Undefined marks a value that is absent from the data record. It is distinct
// from nil, which stands for a present null value.
var Undefined = UndefinedValue{}

// IsUndefined reports whether v is the Undefined sentinel
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

// Common time parsing formats tried in order
var commonTimeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	DateTimeFormatISO,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	DateFormatUS,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
	"Mon Jan 2 2006 15:04:05",
}

// Date format constants
const (
	DateFormatISO     = "2006-01-02"
	DateFormatUS      = "01/02/2006"
	DateTimeFormatISO = "2006-01-02T15:04:05"
	LayoutShortMonth  = "Jan"
	LayoutLongMonth   = "January"
)

// MaxTimeMillis bounds the milliseconds a number may name, 100 million days
// either side of the epoch
const MaxTimeMillis = 8.64e15

// Stringify converts any value to a string the way template output expects:
// Undefined becomes "undefined", nil becomes "null", numbers use the shortest
// round-trip form, and lists join their elements with commas.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return StringValueNull
	case UndefinedValue:
		return StringValueUndefined
	case string:
		return val
	case bool:
		if val {
			return StringValueTrue
		}
		return StringValueFalse
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, IntBase10)
	case int32:
		return strconv.FormatInt(int64(val), IntBase10)
	case uint:
		return strconv.FormatUint(uint64(val), IntBase10)
	case uint64:
		return strconv.FormatUint(val, IntBase10)
	case float64:
		return NumberToString(val)
	case float32:
		return NumberToString(float64(val))
	case json.Number:
		return val.String()
	case time.Time:
		return val.String()
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	case []any:
		return joinList(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), IntBase10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), IntBase10)
	case reflect.Float32, reflect.Float64:
		return NumberToString(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return joinList(items)
	case reflect.Map, reflect.Struct:
		return StringValueObject
	case reflect.Pointer:
		if rv.IsNil() {
			return StringValueNull
		}
		return Stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// joinList joins list elements with commas; nil and Undefined contribute
// nothing
func joinList(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		if item == nil || IsUndefined(item) {
			continue
		}
		parts[i] = Stringify(item)
	}
	return strings.Join(parts, StringValueComma)
}

// NumberToString renders a float64 in its shortest form: integral values have
// no fraction, very large or very small magnitudes use exponent notation.
func NumberToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return StringValueNaN
	case math.IsInf(f, 1):
		return StringValueInfinity
	case math.IsInf(f, -1):
		return StringValueNegInf
	case f == 0:
		return string(CharZero)
	}

	abs := math.Abs(f)
	if abs >= ExponentUpperBound || abs < ExponentLowerBound {
		s := strconv.FormatFloat(f, 'e', FloatPrecisionAll, FloatBitSize64)
		// Go pads the exponent to two digits
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, FloatFormatFlag, FloatPrecisionAll, FloatBitSize64)
}

// ToNumber coerces any value to a float64. Undefined and unparseable strings
// become NaN; nil and the empty string become 0.
func ToNumber(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case UndefinedValue:
		return math.NaN()
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case int32:
		return float64(val)
	case uint:
		return float64(val)
	case uint64:
		return float64(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case string:
		return parseNumber(val)
	case json.Number:
		return parseNumber(val.String())
	case time.Time:
		return float64(val.UnixMilli())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Pointer:
		if rv.IsNil() {
			return 0
		}
		return ToNumber(rv.Elem().Interface())
	}
	return parseNumber(Stringify(v))
}

// parseNumber parses a numeric string. Only the literal spellings Infinity,
// +Infinity and -Infinity produce infinities directly.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == StringValueEmpty {
		return 0
	}

	unsigned := strings.TrimLeft(s, "+-")
	if unsigned == StringValueInfinity {
		if strings.HasPrefix(s, string(CharMinus)) {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if len(unsigned) != len(s) && len(s)-len(unsigned) > 1 {
		return math.NaN()
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		n, err := strconv.ParseInt(s, 0, FloatBitSize64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	// Go also accepts "inf", "nan" and hex floats; those are not numbers here
	for i := 0; i < len(unsigned); i++ {
		ch := unsigned[i]
		if !isDigit(ch) && ch != '.' && ch != 'e' && ch != 'E' && ch != '+' && ch != '-' {
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(s, FloatBitSize64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// ToTime coerces a value to a time in loc. Numbers are milliseconds since the
// Unix epoch; strings are tried against a fixed list of layouts. The boolean
// result is false for values that name no valid instant.
func ToTime(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	switch val := v.(type) {
	case time.Time:
		return val.In(loc), true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return val.In(loc), true
	case UndefinedValue:
		return time.Time{}, false
	case string:
		return parseTime(val, loc)
	}

	ms := ToNumber(v)
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > MaxTimeMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).In(loc), true
}

// parseTime tries each known layout. Date-only ISO strings are UTC.
func parseTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateFormatISO, s, time.UTC); err == nil {
		return t.In(loc), true
	}
	for _, layout := range commonTimeFormats {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// isTruthy reports whether a value counts as present when walking a path
func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil, UndefinedValue:
		return false
	case bool:
		return val
	case string:
		return val != StringValueEmpty
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case int:
		return val != 0
	case int64:
		return val != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	}
	return true
}
