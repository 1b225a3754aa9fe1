package internal

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stringerValue struct{}

func (stringerValue) String() string { return "custom" }

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"undefined", Undefined, "undefined"},
		{"nil", nil, "null"},
		{"string", "hello", "hello"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint8", uint8(200), "200"},
		{"integral float", 3.0, "3"},
		{"fractional float", 1.5, "1.5"},
		{"zero float", 0.0, "0"},
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"large exponent", 1e21, "1e+21"},
		{"small exponent", 1e-7, "1e-7"},
		{"json number", json.Number("12.50"), "12.50"},
		{"list", []any{1, "a", nil, true}, "1,a,,true"},
		{"typed slice", []string{"x", "y"}, "x,y"},
		{"map", map[string]any{"a": 1}, "[object Object]"},
		{"struct", struct{ A int }{1}, "[object Object]"},
		{"stringer", stringerValue{}, "custom"},
		{"nil pointer", (*int)(nil), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stringify(tt.input))
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"nil", nil, 0},
		{"int", 5, 5},
		{"float", 2.5, 2.5},
		{"true", true, 1},
		{"false", false, 0},
		{"numeric string", "42", 42},
		{"padded string", "  3.5 ", 3.5},
		{"empty string", "", 0},
		{"exponent string", "1e3", 1000},
		{"hex string", "0x10", 16},
		{"signed string", "-12", -12},
		{"infinity string", "Infinity", math.Inf(1)},
		{"negative infinity string", "-Infinity", math.Inf(-1)},
		{"json number", json.Number("7"), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToNumber(tt.input))
		})
	}
}

func TestToNumber_NaN(t *testing.T) {
	for _, input := range []any{Undefined, "abc", "12px", "inf", "nan", "--1", map[string]any{}} {
		assert.True(t, math.IsNaN(ToNumber(input)), "expected NaN for %#v", input)
	}
}

func TestToTime(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected time.Time
	}{
		{"epoch milliseconds", 0, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"milliseconds float", 1455978000000.0, time.Date(2016, 2, 20, 14, 20, 0, 0, time.UTC)},
		{"iso date is UTC", "2016-02-21", time.Date(2016, 2, 21, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "1999-01-12T10:30:00Z", time.Date(1999, 1, 12, 10, 30, 0, 0, time.UTC)},
		{"time value", time.Date(2020, 5, 1, 8, 0, 0, 0, time.UTC), time.Date(2020, 5, 1, 8, 0, 0, 0, time.UTC)},
		{"largest instant", 8.64e15, time.Date(275760, 9, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToTime(tt.input, time.UTC)
			assert.True(t, ok)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestToTime_Invalid(t *testing.T) {
	for _, input := range []any{Undefined, "not a date", math.NaN(), math.Inf(1), (*time.Time)(nil), 1e300, -8.64e15 - 1} {
		_, ok := ToTime(input, time.UTC)
		assert.False(t, ok, "expected invalid time for %#v", input)
	}
}

func TestIsUndefined(t *testing.T) {
	assert.True(t, IsUndefined(Undefined))
	assert.False(t, IsUndefined(nil))
	assert.False(t, IsUndefined(""))
	assert.Equal(t, "undefined", Undefined.String())
}
