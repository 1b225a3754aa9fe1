package msgformat

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// TestNewParseError tests parse error creation with position context
func TestNewParseError(t *testing.T) {
	t.Run("with cause error", func(t *testing.T) {
		pos := Position{Line: 5, Column: 10, Offset: 50}
		causeErr := errors.New("underlying parse issue")
		err := NewParseError(ErrMsgParseFailed, pos, causeErr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgParseFailed)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		line, ok := customErr.GetMetadata(MetaKeyLine)
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(pos.Line), line)

		column, ok := customErr.GetMetadata(MetaKeyColumn)
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(pos.Column), column)

		offset, ok := customErr.GetMetadata(MetaKeyOffset)
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(pos.Offset), offset)

		assert.True(t, errors.Is(err, causeErr))
	})

	t.Run("without cause error", func(t *testing.T) {
		err := NewParseError(ErrMsgParseFailed, Position{Line: 1, Column: 1}, nil)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		line, ok := customErr.GetMetadata(MetaKeyLine)
		assert.True(t, ok)
		assert.Equal(t, "1", line)
	})
}

// TestCompile_ParseErrors tests that syntax errors carry position metadata
func TestCompile_ParseErrors(t *testing.T) {
	mf := MustNew()

	t.Run("unclosed delimiter", func(t *testing.T) {
		_, err := mf.Compile("Hi\n{a, fmt, (open}")
		require.Error(t, err)
		assert.True(t, IsParseError(err))
		assert.Contains(t, err.Error(), ErrMsgUnclosedDelimiter)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		delim, ok := customErr.GetMetadata(MetaKeyDelimiter)
		assert.True(t, ok)
		assert.Equal(t, "(", delim)

		line, _ := customErr.GetMetadata(MetaKeyLine)
		assert.Equal(t, "2", line)
		column, _ := customErr.GetMetadata(MetaKeyColumn)
		assert.Equal(t, "10", column)
	})

	t.Run("unclosed variable", func(t *testing.T) {
		_, err := mf.Compile("Hello {name")
		require.Error(t, err)
		assert.True(t, IsParseError(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		expected, ok := customErr.GetMetadata(MetaKeyExpected)
		assert.True(t, ok)
		assert.Equal(t, "'}'", expected)
	})

	t.Run("brace at end of input", func(t *testing.T) {
		_, err := mf.Compile("Hello {")
		require.Error(t, err)
		assert.True(t, IsParseError(err))
		assert.Contains(t, err.Error(), ErrMsgUnclosedDelimiter)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		delim, ok := customErr.GetMetadata(MetaKeyDelimiter)
		assert.True(t, ok)
		assert.Equal(t, "{", delim)
		column, _ := customErr.GetMetadata(MetaKeyColumn)
		assert.Equal(t, "7", column)
	})

	t.Run("validate reports the same error", func(t *testing.T) {
		err := mf.Validate("{a, select, x{y}")
		require.Error(t, err)
		assert.True(t, IsParseError(err))
		assert.NoError(t, mf.Validate("{a, select, x{y}}"))
	})

	t.Run("validate does not check formatter names", func(t *testing.T) {
		assert.NoError(t, mf.Validate("{a, nope}"))
	})
}

// TestUnknownFormatterError tests render-time formatter errors
func TestUnknownFormatterError(t *testing.T) {
	mf := MustNew()
	r := mf.MustCompile("text {x, missing}")

	_, err := r(map[string]any{"x": 1})
	require.Error(t, err)
	assert.True(t, IsUnknownFormatterError(err))
	assert.False(t, IsParseError(err))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	name, ok := customErr.GetMetadata(MetaKeyFormatter)
	assert.True(t, ok)
	assert.Equal(t, "missing", name)

	assert.True(t, strings.HasSuffix(err.Error(), ErrMsgRenderFailed+": unknown formatter: missing at line 1, column 8"), err.Error())
	assert.Equal(t, 1, strings.Count(err.Error(), ErrMsgUnknownFormatter))
}

// TestRegistryErrors tests formatter registration failures
func TestRegistryErrors(t *testing.T) {
	mf := MustNew()
	upper := func(any, language.Tag, ...any) string { return "U" }

	require.NoError(t, mf.RegisterFormatter("upper", upper))

	err := mf.RegisterFormatter("upper", upper)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFormatterExists)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	name, ok := customErr.GetMetadata(MetaKeyFormatter)
	assert.True(t, ok)
	assert.Equal(t, "upper", name)

	assert.Error(t, mf.RegisterFormatter("", upper))
	assert.Error(t, mf.RegisterFormatter("nil", nil))
	assert.Panics(t, func() { mf.MustRegisterFormatter("upper", upper) })
}

// TestInvalidLocale tests locale validation at construction and compile time
func TestInvalidLocale(t *testing.T) {
	_, err := New(WithLocale("not a locale!"))
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	locale, ok := customErr.GetMetadata(MetaKeyLocale)
	assert.True(t, ok)
	assert.Equal(t, "not a locale!", locale)

	mf := MustNew()
	_, err = mf.Compile("{x}", "???")
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew(WithLocale("")) })
}
