// Package logger provides a small factory around Go's slog package with
// functional options, helper attribute constructors, and injection of values
// stored in context.Context.
//
// New builds a *slog.Logger from Option values:
//
//   - WithFormat – text (default) or json output
//   - WithLevel / WithLevelName – minimum level
//   - WithOutput – destination writer (stderr by default)
//   - WithAttr – static attributes attached to every record
//   - WithContextExtractors – callbacks that pull attributes from the context
//     passed to the *Context logging methods
//
// Attribute helpers such as Shape, Property, Constraints and Error keep key
// names consistent between the rto engine and the applications using it.
// Error and Errors return an empty attribute for nil input, so
//
//	log.Info("validated", logger.Error(err))
//
// needs no nil check.
//
// Discard returns a logger that never writes; the engine uses it when no
// logger was configured.
package logger
