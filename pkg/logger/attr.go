package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Shape records the name of the shape being validated under the key "shape".
func Shape(name string) slog.Attr {
	return slog.String("shape", name)
}

// ShapePath records the dotted path of a nested pass under the key "shape_path".
func ShapePath(path string) slog.Attr {
	return slog.String("shape_path", path)
}

// Property records a property name under the key "property".
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// Constraints records failure messages under the key "constraints".
// If there are none, it returns an empty Attr.
func Constraints(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any("constraints", msgs)
}

// FailureCount records the number of failed properties under the key "failures".
func FailureCount(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
