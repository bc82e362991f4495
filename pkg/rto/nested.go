package rto

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/rtokit/pkg/async"
)

// Nested declares a property holding an object of the child shape, or an
// array of them when combined with Each. The child is validated by its own
// pass; its cleaned object replaces the raw value and its errors become the
// Children of the property's error.
func Nested(shape *Shape, opts ...RuleOption) Rule {
	if shape == nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidShape, ErrNilShape))
	}
	r := NewRule("nested", nil, opts...)
	r.nested = shape
	if r.Message == nil {
		r.Message = func(args MessageArgs) string {
			return fmt.Sprintf("'%s' must be a valid %s object.", args.Property, shape.Name)
		}
	}
	return r
}

type elementResult struct {
	obj     Object
	errs    []*ValidationError
	invalid bool
}

func (s *session) nestedPredicate(p *Property, r *Rule) Predicate {
	return func(ctx context.Context, value any, _ View) Result {
		if r.Each {
			items, ok := asSlice(value)
			if !ok {
				return Valid(false)
			}
			return s.validateElements(ctx, p, r, items)
		}

		payload, ok := asObject(value)
		if !ok {
			return Valid(false)
		}

		path := s.path + "." + p.Name
		return Later(async.Async(ctx, payload, func(ctx context.Context, payload map[string]any) (bool, error) {
			obj, errs, err := runPass(ctx, r.nested, payload, s.opts, path)
			if err != nil {
				return false, err
			}
			if len(errs) > 0 {
				s.setNested(p.Name, nil, errs)
				return false, nil
			}
			s.setNested(p.Name, obj, nil)
			return true, nil
		}))
	}
}

// validateElements runs one child pass per element, all started at once.
// The rule holds only if every element passes.
func (s *session) validateElements(ctx context.Context, p *Property, r *Rule, items []any) Result {
	futures := make([]*async.Future[elementResult], len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s.%s[%d]", s.path, p.Name, i)
		futures[i] = async.Async(ctx, item, func(ctx context.Context, item any) (elementResult, error) {
			payload, ok := asObject(item)
			if !ok {
				return elementResult{invalid: true}, nil
			}
			obj, errs, err := runPass(ctx, r.nested, payload, s.opts, path)
			if err != nil {
				return elementResult{}, err
			}
			return elementResult{obj: obj, errs: errs}, nil
		})
	}

	return Later(async.Then(ctx, async.All(ctx, futures...), func(results []elementResult) (bool, error) {
		objs := make([]any, len(results))
		var errs []*ValidationError
		for i, res := range results {
			if !res.invalid && len(res.errs) == 0 {
				objs[i] = res.obj
				continue
			}
			index := fmt.Sprint(i)
			errs = append(errs, &ValidationError{
				Property:    index,
				Constraints: []string{r.render(s.messageArgs(fmt.Sprintf("%s[%d]", p.Name, i), items[i]))},
				Value:       items[i],
				PlainValue:  items[i],
				Target:      r.nested.Name,
				Children:    res.errs,
			})
		}
		s.setNested(p.Name, objs, errs)
		return len(errs) == 0, nil
	}))
}
