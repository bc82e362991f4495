package validator

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// MinDate accepts dates equal to or after min.
func MinDate(min time.Time, opts ...rto.RuleOption) rto.Rule {
	return newRule("min_date", func(v any, _ rto.View) bool {
		t, ok := v.(time.Time)
		return ok && !t.IsZero() && !t.Before(min)
	}, fmt.Sprintf("minimal allowed date for '%%s' is %s.", min.Format(time.DateOnly)), opts)
}

// MaxDate accepts dates equal to or before max.
func MaxDate(max time.Time, opts ...rto.RuleOption) rto.Rule {
	return newRule("max_date", func(v any, _ rto.View) bool {
		t, ok := v.(time.Time)
		return ok && !t.IsZero() && !t.After(max)
	}, fmt.Sprintf("maximal allowed date for '%%s' is %s.", max.Format(time.DateOnly)), opts)
}

// AfterField accepts dates strictly after the date held by a sibling property.
// It passes when the sibling is not a date, leaving that to the sibling's rules.
func AfterField(sibling string, opts ...rto.RuleOption) rto.Rule {
	return newRule("after_field", func(v any, view rto.View) bool {
		t, ok := v.(time.Time)
		if !ok {
			return false
		}
		other, ok := view.Get(sibling)
		if !ok {
			return true
		}
		ref, ok := other.(time.Time)
		if !ok {
			return true
		}
		return t.After(ref)
	}, fmt.Sprintf("'%%s' must be after '%s'.", sibling), opts)
}
