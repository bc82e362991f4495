package validator

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

func Min(min float64, opts ...rto.RuleOption) rto.Rule {
	return newRule("min", func(v any, _ rto.View) bool {
		f, ok := toFloat(v)
		return ok && isFinite(f) && f >= min
	}, fmt.Sprintf("'%%s' must not be less than %s.", formatFloat(min)), opts)
}

func Max(max float64, opts ...rto.RuleOption) rto.Rule {
	return newRule("max", func(v any, _ rto.View) bool {
		f, ok := toFloat(v)
		return ok && isFinite(f) && f <= max
	}, fmt.Sprintf("'%%s' must not be greater than %s.", formatFloat(max)), opts)
}

func Positive(opts ...rto.RuleOption) rto.Rule {
	return newRule("positive", func(v any, _ rto.View) bool {
		f, ok := toFloat(v)
		return ok && isFinite(f) && f > 0
	}, "'%s' must be a positive number.", opts)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
