package rto

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is matched by every *AggregateError.
	ErrValidation = errors.New("rto: validation failed")

	// ErrNilShape is returned when a pass is started without a shape.
	ErrNilShape = errors.New("rto: nil shape")

	// ErrInvalidShape is raised when a shape declaration is malformed.
	ErrInvalidShape = errors.New("rto: invalid shape")

	// ErrInvalidPayload is returned when a payload cannot be read as an object.
	ErrInvalidPayload = errors.New("rto: payload must be an object")

	// ErrDecode is returned when a validated object cannot be decoded into the requested type.
	ErrDecode = errors.New("rto: failed to decode validated object")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("rto: failed to parse environment variables into config")
)

// ValidationError describes every failure of one property within one pass.
type ValidationError struct {
	Property    string
	Constraints []string
	Value       any
	PlainValue  any
	Target      string
	Children    []*ValidationError
}

func (e *ValidationError) Error() string {
	if len(e.Constraints) == 0 {
		if len(e.Children) > 0 {
			return fmt.Sprintf("%s: nested validation failed", e.Property)
		}
		return fmt.Sprintf("%s: invalid value", e.Property)
	}
	return fmt.Sprintf("%s: %s", e.Property, strings.Join(e.Constraints, ", "))
}

// AggregateError is the default failure of a pass. Document holds the
// formatted error tree (see Format).
type AggregateError struct {
	Shape    string
	Errors   []*ValidationError
	Document Document
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		parts = append(parts, ve.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *AggregateError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether property failed at the top level.
func (e *AggregateError) Has(property string) bool {
	for _, ve := range e.Errors {
		if ve.Property == property {
			return true
		}
	}
	return false
}

// Get returns the constraints recorded for property.
func (e *AggregateError) Get(property string) []string {
	var out []string
	for _, ve := range e.Errors {
		if ve.Property == property {
			out = append(out, ve.Constraints...)
		}
	}
	return out
}

// Fields returns failed property names in registration order.
func (e *AggregateError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	seen := make(map[string]bool, len(e.Errors))
	for _, ve := range e.Errors {
		if !seen[ve.Property] {
			fields = append(fields, ve.Property)
			seen[ve.Property] = true
		}
	}
	return fields
}

// ExtractErrors returns the validation errors carried by err, if any.
func ExtractErrors(err error) []*ValidationError {
	var agg *AggregateError
	if errors.As(err, &agg) {
		return agg.Errors
	}
	return nil
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
