package rto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dmitrymomot/rtokit/pkg/logger"
)

// Run validates payload against shape and returns the cleaned subject.
//
// Properties are initialized and assigned in declaration order. Failures never
// stop the pass; they are collected per property and, once every deferred
// rule and nested pass has settled, handed to the failure handler. The
// default handler returns an *AggregateError. An error returned by a deferred
// predicate is not a validation failure and is returned unchanged.
func Run(ctx context.Context, shape *Shape, payload map[string]any, opts ...Option) (Object, error) {
	if shape == nil {
		return nil, ErrNilShape
	}
	o := newOptions(opts...)

	start := time.Now()
	obj, errs, err := runPass(ctx, shape, payload, o, shape.Name)
	if err != nil {
		o.logger.ErrorContext(ctx, "validation pass aborted", logger.Shape(shape.Name), logger.Error(err))
		return nil, err
	}

	o.logger.DebugContext(ctx, "validation pass finished",
		logger.Shape(shape.Name),
		logger.FailureCount(len(errs)),
		logger.Duration(time.Since(start)),
	)

	if len(errs) > 0 {
		if err := o.onFailures(ctx, shape, errs); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// RunValue is Run for payloads that are not already a map: structs and maps
// with string keys are decoded into one first.
func RunValue(ctx context.Context, shape *Shape, payload any, opts ...Option) (Object, error) {
	m, err := toPayload(payload)
	if err != nil {
		return nil, err
	}
	return Run(ctx, shape, m, opts...)
}

// Bind runs the pass and decodes the subject into T using the "rto" struct
// tag (field names match case-insensitively when the tag is absent).
func Bind[T any](ctx context.Context, shape *Shape, payload map[string]any, opts ...Option) (T, error) {
	var out T
	obj, err := Run(ctx, shape, payload, opts...)
	if err != nil {
		return out, err
	}
	if err := Decode(obj, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Decode copies a subject into dst, which must be a pointer.
func Decode(obj Object, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "rto",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := dec.Decode(obj.Resolve()); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

func toPayload(payload any) (map[string]any, error) {
	switch p := payload.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return p, nil
	case Object:
		return p, nil
	}

	var m map[string]any
	if err := mapstructure.Decode(payload, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidPayload, payload)
	}
	return m, nil
}

// Construct builds a subject from values without validating anything: declared
// properties take the given value or their default. It is the plain
// counterpart of Run for trusted data.
func Construct(shape *Shape, values map[string]any) Object {
	obj := make(Object, len(shape.Properties))
	for _, p := range shape.Properties {
		if v, ok := values[p.Name]; ok {
			obj[p.Name] = v
			continue
		}
		if p.HasDefault {
			obj[p.Name] = copyDefault(p.Default)
		}
	}
	return obj
}

// runPass is one orchestrated pass over shape. It returns the subject and the
// joined failures; the error is reserved for faults.
func runPass(ctx context.Context, shape *Shape, payload map[string]any, o *options, path string) (Object, []*ValidationError, error) {
	s := newSession(shape, payload, o, path)
	defer s.flush()

	ctx = withShapePath(ctx, path)

	for i := range shape.Properties {
		p := &shape.Properties[i]
		w := s.initialize(p)
		s.assign(ctx, p, w)
	}

	errs, err := s.errors(ctx)
	if err != nil {
		return nil, nil, err
	}

	nestedObj, nestedErrs := s.nested()
	maps.Copy(s.subject, nestedObj)
	for _, ve := range errs {
		if children, ok := nestedErrs[ve.Property]; ok {
			ve.Children = children
		}
	}
	s.prune(errs)

	s.mergeExposed()

	if !o.excludeExtraneous {
		for k, v := range s.payload {
			if !s.subject.Has(k) {
				s.subject[k] = v
			}
		}
	}

	if len(errs) > 0 && path != shape.Name {
		o.logger.DebugContext(ctx, "nested validation failed",
			logger.Shape(shape.Name),
			logger.FailureCount(len(errs)),
		)
	}

	return s.subject, errs, nil
}

// prune removes every failed property from the subject. Values written
// while a deferred or nested rule was still pending are only kept when all
// of the property's rules held.
func (s *session) prune(errs []*ValidationError) {
	for _, ve := range errs {
		delete(s.subject, ve.Property)
	}
}

// mergeExposed fills properties still undefined on the subject with their
// exposed value, in declaration order.
func (s *session) mergeExposed() {
	for _, p := range s.shape.Properties {
		v, ok := s.exposed[p.Name]
		if !ok || s.subject.Has(p.Name) {
			continue
		}
		if s.opts.exposeAsGetter {
			s.subject[p.Name] = Getter(func() any { return v })
			continue
		}
		s.subject[p.Name] = v
	}
}

type shapePathKey struct{}

func withShapePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, shapePathKey{}, path)
}

// ShapePath returns the dotted path of the pass ctx belongs to, such as
// "Order.items[2]". Predicates receive this context.
func ShapePath(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(shapePathKey{}).(string)
	return path, ok
}

// ShapePathExtractor adds the shape path to log records; pass it to
// logger.WithContextExtractors.
func ShapePathExtractor(ctx context.Context) (slog.Attr, bool) {
	path, ok := ShapePath(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.ShapePath(path), true
}
