package rto

import (
	"context"
	"slices"

	"github.com/dmitrymomot/rtokit/pkg/async"
)

type outcomeState uint8

const (
	outcomePending outcomeState = iota
	outcomeSettled
)

// report is one rule failure registered against a property. A nil check
// means the failure is certain; otherwise it stands only if check settles false.
type report struct {
	draft *ValidationError
	check *async.Future[bool]
}

// outcome is the error slot of one property: Pending while any report is
// deferred, Settled(err) once joined. A settled nil err means no error.
type outcome struct {
	state   outcomeState
	reports []report
	err     *ValidationError
}

func newOutcome(r report) *outcome {
	o := &outcome{}
	if r.check == nil {
		o.state = outcomeSettled
		o.err = cloneDraft(r.draft)
		return o
	}
	o.state = outcomePending
	o.reports = []report{r}
	return o
}

// add registers another failure for the same property. Two certain failures
// merge on the spot; anything deferred keeps the slot pending until join.
func (o *outcome) add(r report) {
	if o.state == outcomeSettled && r.check == nil {
		o.err = mergeDraft(o.err, r.draft)
		return
	}
	if o.state == outcomeSettled {
		if o.err != nil {
			o.reports = append(o.reports, report{draft: o.err})
		}
		o.err = nil
		o.state = outcomePending
	}
	o.reports = append(o.reports, r)
}

// join resolves every deferred report in registration order. An error from a
// deferred predicate is a fault and is returned as is; so is ctx ending first.
func (o *outcome) join(ctx context.Context) (*ValidationError, error) {
	if o.state == outcomeSettled {
		return o.err, nil
	}

	var merged *ValidationError
	for _, r := range o.reports {
		if r.check != nil {
			ok, err := r.check.AwaitContext(ctx)
			if err != nil {
				return nil, err
			}
			if ok {
				continue
			}
		}
		merged = mergeDraft(merged, r.draft)
	}

	o.state = outcomeSettled
	o.reports = nil
	o.err = merged
	return merged, nil
}

// mergeDraft unions next's constraints into base, dropping exact duplicates
// and keeping base's values.
func mergeDraft(base, next *ValidationError) *ValidationError {
	if base == nil {
		return cloneDraft(next)
	}
	for _, c := range next.Constraints {
		if !slices.Contains(base.Constraints, c) {
			base.Constraints = append(base.Constraints, c)
		}
	}
	return base
}

func cloneDraft(d *ValidationError) *ValidationError {
	c := *d
	c.Constraints = make([]string, 0, len(d.Constraints))
	for _, msg := range d.Constraints {
		if !slices.Contains(c.Constraints, msg) {
			c.Constraints = append(c.Constraints, msg)
		}
	}
	return &c
}
