package rto

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/rtokit/pkg/async"
)

// Predicate decides whether value satisfies a rule. It may answer immediately
// with Valid or hand back a deferred answer with Later.
type Predicate func(ctx context.Context, value any, view View) Result

// Transform converts a raw payload value before it is validated and assigned.
// Transforms are never called for undefined values.
type Transform func(value any) any

// MessageFunc renders the human-readable constraint text of a failed rule.
type MessageFunc func(args MessageArgs) string

// MessageArgs is passed to a MessageFunc.
type MessageArgs struct {
	Property string
	Value    any
	Target   string
	Data     map[string]any
}

// Result is the outcome of a Predicate: either settled now or deferred.
type Result struct {
	valid  bool
	future *async.Future[bool]
}

// Valid returns an immediate Result.
func Valid(ok bool) Result {
	return Result{valid: ok}
}

// Later returns a deferred Result settled by f.
// A nil future is treated as an immediate failure.
func Later(f *async.Future[bool]) Result {
	if f == nil {
		return Result{}
	}
	return Result{future: f}
}

// Deferred reports whether the result is not settled yet.
func (r Result) Deferred() bool {
	return r.future != nil
}

// Check adapts a plain boolean function into a Predicate.
func Check(fn func(value any) bool) Predicate {
	return func(_ context.Context, value any, _ View) Result {
		return Valid(fn(value))
	}
}

// CheckWith adapts a boolean function that needs sibling values or pass data.
func CheckWith(fn func(value any, view View) bool) Predicate {
	return func(_ context.Context, value any, view View) Result {
		return Valid(fn(value, view))
	}
}

// CheckAsync adapts a blocking function into a deferred Predicate. The
// function starts immediately in its own goroutine and is joined when the
// pass collects its errors. A returned error aborts the pass.
func CheckAsync(fn func(ctx context.Context, value any, view View) (bool, error)) Predicate {
	return func(ctx context.Context, value any, view View) Result {
		return Later(async.Async(ctx, value, func(ctx context.Context, v any) (bool, error) {
			return fn(ctx, v, view)
		}))
	}
}

// Rule is one (predicate, transform, options) triple attached to a property.
type Rule struct {
	Name      string
	Predicate Predicate
	Transform Transform
	Message   MessageFunc

	// Optional exempts an undefined value from the predicate.
	Optional bool
	// Each validates every element of an array value; scalars are boxed.
	Each bool
	// Expose registers the raw value for default merging, whitelisting and
	// validation views, and reports undefined required values early.
	Expose bool

	nested *Shape
}

// RuleOption configures a Rule.
type RuleOption func(*Rule)

// NewRule builds a Rule from a predicate and options.
func NewRule(name string, p Predicate, opts ...RuleOption) Rule {
	r := Rule{Name: name, Predicate: p}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func Optional() RuleOption {
	return func(r *Rule) { r.Optional = true }
}

func Each() RuleOption {
	return func(r *Rule) { r.Each = true }
}

func Expose() RuleOption {
	return func(r *Rule) { r.Expose = true }
}

// WithTransform sets the transform applied before the predicate runs.
func WithTransform(t Transform) RuleOption {
	return func(r *Rule) { r.Transform = t }
}

// WithMessage overrides the message renderer.
func WithMessage(m MessageFunc) RuleOption {
	return func(r *Rule) {
		if m != nil {
			r.Message = m
		}
	}
}

// WithMessageText overrides the message with a fixed text.
// "%s" placeholders are not interpreted.
func WithMessageText(text string) RuleOption {
	return func(r *Rule) {
		r.Message = func(MessageArgs) string { return text }
	}
}

func (r *Rule) render(args MessageArgs) string {
	if r.Message != nil {
		return r.Message(args)
	}
	if r.Name != "" {
		return fmt.Sprintf("'%s' failed the %s rule.", args.Property, r.Name)
	}
	return fmt.Sprintf("'%s' is invalid.", args.Property)
}

// Property is one row of a Shape's schema table.
type Property struct {
	Name       string
	Default    any
	HasDefault bool
	Rules      []Rule
}

// Field declares a property with its rules, applied in order.
func Field(name string, rules ...Rule) Property {
	return Property{Name: name, Rules: rules}
}

// WithDefault returns a copy of p carrying a hard-coded default value.
func (p Property) WithDefault(v any) Property {
	p.Default = v
	p.HasDefault = true
	return p
}

func (p *Property) optional() bool {
	for i := range p.Rules {
		if p.Rules[i].Optional {
			return true
		}
	}
	return false
}

func (p *Property) exposed() bool {
	for i := range p.Rules {
		if p.Rules[i].Expose {
			return true
		}
	}
	return false
}

// Shape is the declared target of a validation pass. A Shape holds no pass
// state and may be shared by concurrent passes.
type Shape struct {
	Name       string
	Properties []Property
}

// NewShape builds a Shape. It panics on an empty or duplicated property name
// so that schema mistakes surface at declaration time.
func NewShape(name string, props ...Property) *Shape {
	seen := make(map[string]struct{}, len(props))
	for _, p := range props {
		if p.Name == "" {
			panic(fmt.Errorf("%w: shape %q has a property without a name", ErrInvalidShape, name))
		}
		if _, dup := seen[p.Name]; dup {
			panic(fmt.Errorf("%w: shape %q declares %q twice", ErrInvalidShape, name, p.Name))
		}
		seen[p.Name] = struct{}{}
	}
	return &Shape{Name: name, Properties: props}
}

// Property returns the declared property by name.
func (s *Shape) Property(name string) (*Property, bool) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return &s.Properties[i], true
		}
	}
	return nil, false
}
