package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// newRule builds an rto.Rule with a default message. Caller options run last
// so they can override the message, set Each, Optional, and so on.
func newRule(name string, check func(value any, view rto.View) bool, message string, opts []rto.RuleOption) rto.Rule {
	base := []rto.RuleOption{rto.WithMessage(sprintfProperty(message))}
	return rto.NewRule(name, rto.CheckWith(check), append(base, opts...)...)
}

// sprintfProperty renders message with the property name in place of %s.
func sprintfProperty(message string) rto.MessageFunc {
	return func(args rto.MessageArgs) string {
		return fmt.Sprintf(message, args.Property)
	}
}

// toFloat reads any Go or JSON number.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// length returns the length of strings (in runes), slices, arrays and maps.
func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return len([]rune(s)), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}
