package rto

import (
	"context"
	"maps"
	"slices"

	"github.com/dmitrymomot/rtokit/pkg/async"
)

// working is the value a property starts the pass with.
type working struct {
	value       any
	defined     bool
	fromDefault bool
}

// workingValue picks the payload value, falling back to the declared default
// when defaults are exposed. A partial object in the payload overrides only
// the keys it carries when the default is itself an object.
func (s *session) workingValue(p *Property) working {
	plain, present := s.plain(p.Name)
	if !p.HasDefault || !s.opts.exposeDefaults {
		return working{value: plain, defined: present}
	}
	if !present {
		return working{value: copyDefault(p.Default), defined: true, fromDefault: true}
	}
	if def, ok := asObject(p.Default); ok {
		if given, ok := asObject(plain); ok {
			merged := maps.Clone(def)
			maps.Copy(merged, given)
			return working{value: merged, defined: true}
		}
	}
	return working{value: plain, defined: true}
}

// copyDefault keeps passes from mutating a default shared through the Shape.
func copyDefault(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return maps.Clone(t)
	case Object:
		return maps.Clone(t)
	case []any:
		return slices.Clone(t)
	default:
		return v
	}
}

// initialize runs once per property before any assignment: it settles the
// working value, marks the property optional for this pass and exposes it.
func (s *session) initialize(p *Property) working {
	w := s.workingValue(p)

	if w.defined && w.value != nil && slices.ContainsFunc(p.Rules, func(r Rule) bool { return r.Each }) {
		w.value = box(w.value)
	}

	if (!w.defined && p.optional()) || w.fromDefault {
		s.markOptional(p.Name)
	}

	if p.exposed() {
		s.expose(p, w)
	}

	return w
}

func box(v any) []any {
	if items, ok := asSlice(v); ok {
		return slices.Clone(items)
	}
	return []any{v}
}

// assign pushes the working value through the property's rules in order.
// Each rule transforms the output of the previous one and checks the result.
// The value lands on the subject unless some rule failed outright; deferred
// failures are recorded and the pass drops the value again if one settles
// false (see prune).
func (s *session) assign(ctx context.Context, p *Property, w working) {
	plain, _ := s.plain(p.Name)
	value := w.value
	failed := false

	for i := range p.Rules {
		r := &p.Rules[i]

		if w.defined && r.Transform != nil {
			value = applyTransform(r, value)
		}

		if s.isOptional(p.Name) {
			continue
		}

		pred := s.predicateFor(p, r)
		if pred == nil {
			continue
		}

		draft := &ValidationError{
			Property:    p.Name,
			Constraints: []string{r.render(s.messageArgs(p.Name, value))},
			Value:       value,
			PlainValue:  plain,
			Target:      s.shape.Name,
		}

		var res Result
		if _, isSlice := asSlice(value); r.Each && isSlice && r.nested == nil {
			res = s.checkEach(ctx, pred, value, draft)
		} else {
			res = pred(ctx, value, s.view())
		}

		switch {
		case res.Deferred():
			s.recordError(draft, res.future)
		case !res.valid:
			s.recordError(draft, nil)
			failed = true
		}
	}

	if !failed && w.defined {
		s.subject[p.Name] = value
	}
}

func applyTransform(r *Rule, value any) any {
	if !r.Each {
		return r.Transform(value)
	}
	items, ok := asSlice(value)
	if !ok {
		return r.Transform(value)
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = r.Transform(item)
	}
	return out
}

func (s *session) predicateFor(p *Property, r *Rule) Predicate {
	if r.nested != nil {
		return s.nestedPredicate(p, r)
	}
	return r.Predicate
}

// checkEach validates every element on its own. The draft's value keeps the
// elements that passed and nils out the ones that did not.
func (s *session) checkEach(ctx context.Context, pred Predicate, value any, draft *ValidationError) Result {
	items, _ := asSlice(value)
	view := s.view()
	kept := slices.Clone(items)
	draft.Value = kept

	ok := true
	var (
		pending    []*async.Future[bool]
		pendingIdx []int
	)
	for i, item := range items {
		res := pred(ctx, item, view)
		if res.Deferred() {
			pending = append(pending, res.future)
			pendingIdx = append(pendingIdx, i)
			continue
		}
		if !res.valid {
			ok = false
			kept[i] = nil
		}
	}

	if len(pending) == 0 {
		return Valid(ok)
	}

	return Later(async.Then(ctx, async.All(ctx, pending...), func(results []bool) (bool, error) {
		for j, valid := range results {
			if !valid {
				ok = false
				kept[pendingIdx[j]] = nil
			}
		}
		return ok, nil
	}))
}
