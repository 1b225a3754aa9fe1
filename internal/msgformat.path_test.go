package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pathUser struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Age     int
	private string
}

func TestResolve(t *testing.T) {
	record := map[string]any{
		"user": map[string]any{
			"name":  "Ada",
			"roles": []any{"admin", "dev"},
			"zero":  0,
			"off":   false,
			"empty": "",
			"null":  nil,
		},
		"typed":  map[string]string{"k": "v"},
		"struct": pathUser{Name: "Grace", Email: "g@example.com", Age: 85, private: "x"},
		"ptr":    &pathUser{Name: "Linus"},
		"ints":   []int{10, 20, 30},
		"key":    "name",
	}

	tests := []struct {
		name     string
		keys     []any
		expected any
	}{
		{"top level", []any{"key"}, "name"},
		{"nested map", []any{"user", "name"}, "Ada"},
		{"list index", []any{"user", "roles", "1"}, "dev"},
		{"list index out of range", []any{"user", "roles", "5"}, Undefined},
		{"non canonical index", []any{"user", "roles", "01"}, Undefined},
		{"zero is kept", []any{"user", "zero"}, 0},
		{"false is kept", []any{"user", "off"}, false},
		{"empty string is kept", []any{"user", "empty"}, ""},
		{"null is kept", []any{"user", "null"}, nil},
		{"missing key", []any{"user", "missing"}, Undefined},
		{"missing intermediate", []any{"nope", "deeper", "deepest"}, Undefined},
		{"through empty string", []any{"user", "empty", "length"}, Undefined},
		{"typed map", []any{"typed", "k"}, "v"},
		{"struct json tag", []any{"struct", "name"}, "Grace"},
		{"struct json tag with options", []any{"struct", "email"}, "g@example.com"},
		{"struct field name", []any{"struct", "Age"}, 85},
		{"unexported field", []any{"struct", "private"}, Undefined},
		{"pointer to struct", []any{"ptr", "name"}, "Linus"},
		{"typed slice", []any{"ints", "2"}, 30},
		{"numeric key", []any{"ints", 0}, 10},
		{"string is not indexable", []any{"key", "0"}, Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(record, tt.keys, Undefined))
		})
	}
}

func TestResolve_Default(t *testing.T) {
	record := map[string]any{"a": 0}

	assert.Equal(t, "fallback", Resolve(record, []any{"b"}, "fallback"))
	assert.Equal(t, 0, Resolve(record, []any{"a"}, "fallback"))
	assert.Equal(t, "fallback", Resolve(nil, []any{"a"}, "fallback"))
	assert.Equal(t, record, Resolve(record, nil, "fallback"))
}
