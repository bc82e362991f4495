package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

func IsString(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_string", func(v any, _ rto.View) bool {
		_, ok := v.(string)
		return ok
	}, "'%s' must be a string.", opts)
}

// IsNumber accepts any finite Go or JSON number.
func IsNumber(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_number", func(v any, _ rto.View) bool {
		f, ok := toFloat(v)
		return ok && isFinite(f)
	}, "'%s' must be a number.", opts)
}

// IsInt accepts integers, including floats without a fractional part as
// produced by JSON decoding.
func IsInt(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_int", func(v any, _ rto.View) bool {
		f, ok := toFloat(v)
		return ok && isFinite(f) && f == float64(int64(f))
	}, "'%s' must be an integer number.", opts)
}

func IsBool(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_bool", func(v any, _ rto.View) bool {
		_, ok := v.(bool)
		return ok
	}, "'%s' must be a boolean value.", opts)
}

// IsDate accepts a non-zero time.Time. Pair it with sanitizer.ParseDate to
// accept strings.
func IsDate(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_date", func(v any, _ rto.View) bool {
		t, ok := v.(time.Time)
		return ok && !t.IsZero()
	}, "'%s' must be a valid Date object.", opts)
}

func IsObject(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_object", func(v any, _ rto.View) bool {
		switch v.(type) {
		case map[string]any, rto.Object:
			return true
		default:
			return false
		}
	}, "'%s' must be an object.", opts)
}

func IsArray(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_array", func(v any, _ rto.View) bool {
		if v == nil {
			return false
		}
		k := reflect.TypeOf(v).Kind()
		return k == reflect.Slice || k == reflect.Array
	}, "'%s' must be an array.", opts)
}

// IsDefined rejects nil, including an explicit null in the payload.
func IsDefined(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_defined", func(v any, _ rto.View) bool {
		return v != nil
	}, "'%s' should not be null or undefined.", opts)
}

// IsNotEmpty rejects nil, blank strings and empty collections.
func IsNotEmpty(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_not_empty", func(v any, _ rto.View) bool {
		if v == nil {
			return false
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s) != ""
		}
		if n, ok := length(v); ok {
			return n > 0
		}
		return true
	}, "'%s' should not be empty.", opts)
}
