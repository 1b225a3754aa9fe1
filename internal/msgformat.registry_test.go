package internal

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func constFormatter(out string) Formatter {
	return func(any, language.Tag, ...any) string { return out }
}

func TestRegistry_Builtins(t *testing.T) {
	r := newTestRegistry()

	assert.Equal(t, []string{"date", "duration", "number", "select", "time"}, r.List())
	assert.Equal(t, 5, r.Count())
	for _, name := range r.List() {
		assert.True(t, r.IsBuiltin(name), name)
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("missing"))
	assert.NotNil(t, r.Cache())
	assert.NotNil(t, r.Location())
}

func TestRegistry_Register(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.Register("upper", constFormatter("U")))
	assert.True(t, r.Has("upper"))
	assert.False(t, r.IsBuiltin("upper"))
	assert.Equal(t, 6, r.Count())

	f, ok := r.Get("upper")
	require.True(t, ok)
	assert.Equal(t, "U", f("x", language.English))
}

func TestRegistry_Register_Errors(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register("upper", constFormatter("U")))

	tests := []struct {
		name      string
		formatter Formatter
		message   string
	}{
		{"upper", constFormatter("again"), ErrMsgFormatterExists},
		{"", constFormatter("x"), ErrMsgEmptyFormatterName},
		{"nil", nil, ErrMsgNilFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			err := r.Register(tt.name, tt.formatter)
			require.Error(t, err)

			var regErr *RegistryError
			require.True(t, errors.As(err, &regErr))
			assert.Equal(t, tt.message, regErr.Message)
		})
	}

	// The first registration is kept
	f, _ := r.Get("upper")
	assert.Equal(t, "U", f(nil, language.English))
}

func TestRegistry_CustomShadowsBuiltin(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register("date", constFormatter("custom date")))

	f, ok := r.Get("date")
	require.True(t, ok)
	assert.Equal(t, "custom date", f(0, language.English))
	assert.True(t, r.IsBuiltin("date"))
	assert.Equal(t, 5, r.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(string(rune('a'+i)), constFormatter("x"))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Get("number")
			_ = r.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, r.Count())
}
