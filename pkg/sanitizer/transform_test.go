package sanitizer_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtokit/pkg/sanitizer"
)

func TestString(t *testing.T) {
	t.Parallel()

	tr := sanitizer.String(sanitizer.Trim, sanitizer.ToUpper)
	assert.Equal(t, "GO", tr(" go "))
	assert.Equal(t, 42, tr(42))
	assert.Nil(t, tr(nil))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("default layouts", func(t *testing.T) {
		parse := sanitizer.ParseDate()

		got, ok := parse("2020-01-01").(time.Time)
		require.True(t, ok)
		assert.True(t, got.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))

		got, ok = parse("2020-01-01T10:30:00Z").(time.Time)
		require.True(t, ok)
		assert.Equal(t, 10, got.Hour())

		got, ok = parse("2020-01-01 10:30:00").(time.Time)
		require.True(t, ok)
		assert.Equal(t, 30, got.Minute())
	})

	t.Run("invalid text is kept", func(t *testing.T) {
		assert.Equal(t, "2024-21-01", sanitizer.ParseDate()("2024-21-01"))
		assert.Equal(t, 5, sanitizer.ParseDate()(5))
	})

	t.Run("custom layout", func(t *testing.T) {
		got, ok := sanitizer.ParseDate("02/01/2006")("17/05/1990").(time.Time)
		require.True(t, ok)
		assert.Equal(t, time.May, got.Month())
	})

	t.Run("time passes through", func(t *testing.T) {
		now := time.Now()
		assert.Equal(t, now, sanitizer.ParseDate()(now))
	})
}

func TestParseNumbers(t *testing.T) {
	t.Parallel()

	parseInt := sanitizer.ParseInt()
	assert.Equal(t, int64(42), parseInt(" 42 "))
	assert.Equal(t, int64(7), parseInt(json.Number("7")))
	assert.Equal(t, int64(3), parseInt(float64(3)))
	assert.Equal(t, 3.5, parseInt(3.5))
	assert.Equal(t, int64(9), parseInt(9))
	assert.Equal(t, "x", parseInt("x"))

	parseFloat := sanitizer.ParseFloat()
	assert.Equal(t, 1.25, parseFloat("1.25"))
	assert.Equal(t, 2.0, parseFloat(2))
	assert.Equal(t, 0.5, parseFloat(json.Number("0.5")))
	assert.Equal(t, "abc", parseFloat("abc"))
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	parse := sanitizer.ParseBool()
	tests := map[any]any{
		"true":  true,
		"0":     false,
		" on ":  true,
		"No":    false,
		"maybe": "maybe",
		1:       1,
	}
	for in, want := range tests {
		assert.Equal(t, want, parse(in), "input %v", in)
	}
}
