package validator

import (
	"context"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// Custom wraps a synchronous check. message may contain one %s for the
// property name.
func Custom(name string, check func(value any, view rto.View) bool, message string, opts ...rto.RuleOption) rto.Rule {
	return newRule(name, check, message, opts)
}

// CustomAsync wraps a check that blocks, such as a uniqueness lookup. It runs
// in its own goroutine and is joined with the rest of the pass; an error it
// returns aborts the pass.
func CustomAsync(name string, check func(ctx context.Context, value any, view rto.View) (bool, error), message string, opts ...rto.RuleOption) rto.Rule {
	base := []rto.RuleOption{rto.WithMessage(sprintfProperty(message))}
	return rto.NewRule(name, rto.CheckAsync(check), append(base, opts...)...)
}
