package rto

import (
	"maps"
	"reflect"
)

// Object is the subject produced by a pass. A missing key means the
// property is undefined; a nil value is a defined null.
type Object map[string]any

// Getter is stored instead of a plain value when exposed values are attached
// as getters. Object.Get and Object.Resolve call it transparently.
type Getter func() any

// Get returns the value stored under key, calling it if it is a Getter.
func (o Object) Get(key string) (any, bool) {
	v, ok := o[key]
	if !ok {
		return nil, false
	}
	if g, isGetter := v.(Getter); isGetter {
		return g(), true
	}
	return v, true
}

// Has reports whether key is defined.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Resolve returns a copy with every Getter replaced by its value, including
// inside nested objects and arrays.
func (o Object) Resolve() map[string]any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = resolveValue(v)
	}
	return out
}

func resolveValue(v any) any {
	switch t := v.(type) {
	case Getter:
		return resolveValue(t())
	case Object:
		return t.Resolve()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = resolveValue(e)
		}
		return out
	default:
		return v
	}
}

// View is what predicates see: values exposed so far merged with the live
// subject, plus the opaque data supplied with WithData.
type View struct {
	values map[string]any
	data   map[string]any
}

// NewView builds a View. It is mostly useful for testing predicates.
func NewView(values, data map[string]any) View {
	return View{values: maps.Clone(values), data: data}
}

// Get returns a sibling value by property name.
func (v View) Get(name string) (any, bool) {
	val, ok := v.values[name]
	if g, isGetter := val.(Getter); isGetter {
		return g(), ok
	}
	return val, ok
}

// Data returns a value from the pass data.
func (v View) Data(key string) (any, bool) {
	val, ok := v.data[key]
	return val, ok
}

func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case Object:
		return t, true
	case map[string]any:
		return t, true
	default:
		return nil, false
	}
}

func asSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
