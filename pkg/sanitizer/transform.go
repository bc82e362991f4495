package sanitizer

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// String lifts string sanitizers into an rto.Transform. Non-string values
// pass through untouched so the property's type rule can report them.
func String(fns ...func(string) string) rto.Transform {
	pipeline := Compose(fns...)
	return func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		return pipeline(s)
	}
}

// ParseDate parses strings with the first matching layout. Unparseable
// strings are returned unchanged so a date rule rejects them while the error
// still carries the raw text. time.Time values pass through.
func ParseDate(layouts ...string) rto.Transform {
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}
	}
	return func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		s = strings.TrimSpace(s)
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return v
	}
}

// ParseInt converts numeric strings and JSON numbers to int64. Anything
// that does not parse is returned unchanged.
func ParseInt() rto.Transform {
	return func(v any) any {
		switch n := v.(type) {
		case string:
			if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
				return i
			}
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return i
			}
		case float64:
			if n == float64(int64(n)) {
				return int64(n)
			}
		case int:
			return int64(n)
		}
		return v
	}
}

// ParseFloat converts numeric strings and JSON numbers to float64.
func ParseFloat() rto.Transform {
	return func(v any) any {
		switch n := v.(type) {
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f
			}
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
		return v
	}
}

// ParseBool converts the usual textual booleans, including the form values
// "on"/"off" and "yes"/"no".
func ParseBool() rto.Transform {
	return func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "on", "yes":
			return true
		case "off", "no":
			return false
		}
		return v
	}
}
