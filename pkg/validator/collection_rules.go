package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

func ArrayMinSize(min int, opts ...rto.RuleOption) rto.Rule {
	return newRule("array_min_size", func(v any, _ rto.View) bool {
		n, ok := sliceLen(v)
		return ok && n >= min
	}, fmt.Sprintf("'%%s' must contain at least %d elements.", min), opts)
}

func ArrayMaxSize(max int, opts ...rto.RuleOption) rto.Rule {
	return newRule("array_max_size", func(v any, _ rto.View) bool {
		n, ok := sliceLen(v)
		return ok && n <= max
	}, fmt.Sprintf("'%%s' must contain no more than %d elements.", max), opts)
}

// ArrayUnique rejects arrays holding deeply equal elements.
func ArrayUnique(opts ...rto.RuleOption) rto.Rule {
	return newRule("array_unique", func(v any, _ rto.View) bool {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			for j := i + 1; j < rv.Len(); j++ {
				if reflect.DeepEqual(rv.Index(i).Interface(), rv.Index(j).Interface()) {
					return false
				}
			}
		}
		return true
	}, "All '%s''s elements must be unique.", opts)
}

func sliceLen(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0, false
	}
	return rv.Len(), true
}
