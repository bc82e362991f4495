package validator

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// IsIn accepts values deeply equal to one of allowed.
func IsIn(allowed ...any) rto.Rule {
	return IsInWith(allowed)
}

// IsInWith is IsIn with rule options.
func IsInWith(allowed []any, opts ...rto.RuleOption) rto.Rule {
	return newRule("is_in", func(v any, _ rto.View) bool {
		return slices.ContainsFunc(allowed, func(a any) bool { return reflect.DeepEqual(a, v) })
	}, fmt.Sprintf("'%%s' must be one of the following values: %s.", joinValues(allowed)), opts)
}

// IsNotIn rejects values deeply equal to one of forbidden.
func IsNotIn(forbidden []any, opts ...rto.RuleOption) rto.Rule {
	return newRule("is_not_in", func(v any, _ rto.View) bool {
		return !slices.ContainsFunc(forbidden, func(a any) bool { return reflect.DeepEqual(a, v) })
	}, fmt.Sprintf("'%%s' should not be one of the following values: %s.", joinValues(forbidden)), opts)
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strings.ReplaceAll(fmt.Sprint(v), "%", "%%")
	}
	return strings.Join(parts, ", ")
}
