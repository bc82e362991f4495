package rto

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rtokit/pkg/logger"
)

// FailureHandler decides what a pass with failures returns. A nil error lets
// Run hand back the partially validated subject.
type FailureHandler func(ctx context.Context, shape *Shape, errs []*ValidationError) error

// Option configures a validation pass.
type Option func(*options)

type options struct {
	data              map[string]any
	excludeExtraneous bool
	exposeDefaults    bool
	exposeAsGetter    bool
	onFailures        FailureHandler
	logger            *slog.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{
		excludeExtraneous: true,
		exposeDefaults:    true,
		onFailures:        RaiseFailures,
		logger:            logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithData supplies opaque values available to predicates through
// View.Data and to message renderers through MessageArgs.Data.
func WithData(data map[string]any) Option {
	return func(o *options) { o.data = data }
}

// ExcludeExtraneousValues controls the whitelist policy. When false, payload
// keys without a declared property are copied onto the subject. Default true.
func ExcludeExtraneousValues(exclude bool) Option {
	return func(o *options) { o.excludeExtraneous = exclude }
}

// ExposeDefaultValues controls whether declared defaults fill in missing
// payload values. Default true.
func ExposeDefaultValues(expose bool) Option {
	return func(o *options) { o.exposeDefaults = expose }
}

// ExposeValuesAsGetter attaches exposed values merged onto the subject as
// Getter closures instead of plain values. Default false.
func ExposeValuesAsGetter(asGetter bool) Option {
	return func(o *options) { o.exposeAsGetter = asGetter }
}

// WithFailureHandler replaces how a pass with failures is reported.
// Nil handlers are ignored.
func WithFailureHandler(h FailureHandler) Option {
	return func(o *options) {
		if h != nil {
			o.onFailures = h
		}
	}
}

// WithLogger sets the logger used for pass diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// RaiseFailures is the default FailureHandler: it returns an *AggregateError
// carrying the errors and their formatted document.
func RaiseFailures(_ context.Context, shape *Shape, errs []*ValidationError) error {
	return &AggregateError{Shape: shape.Name, Errors: errs, Document: Format(errs)}
}

// IgnoreFailures accepts the partially validated subject silently.
func IgnoreFailures(context.Context, *Shape, []*ValidationError) error {
	return nil
}

// LogFailures returns a FailureHandler that logs every failed property at
// warn level and accepts the partially validated subject.
func LogFailures(log *slog.Logger) FailureHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx context.Context, shape *Shape, errs []*ValidationError) error {
		for _, ve := range errs {
			log.WarnContext(ctx, "property failed validation",
				logger.Shape(shape.Name),
				logger.Property(ve.Property),
				logger.Constraints(ve.Constraints),
			)
		}
		log.WarnContext(ctx, "validation failed",
			logger.Shape(shape.Name),
			logger.FailureCount(len(errs)),
		)
		return nil
	}
}
