package rto

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrymomot/rtokit/pkg/async"
)

// session is the per-pass metadata record. It is created by a pass, threaded
// through every step of it, and dropped when the pass returns. Child passes
// get their own session.
type session struct {
	shape   *Shape
	opts    *options
	payload map[string]any
	path    string
	subject Object

	exposed   map[string]any
	optional  map[string]bool
	slots     map[string]*outcome
	errorKeys []string

	// nested buffers are written from nested rule goroutines
	mu           sync.Mutex
	nestedObj    map[string]any
	nestedErrors map[string][]*ValidationError
}

func newSession(shape *Shape, payload map[string]any, opts *options, path string) *session {
	if payload == nil {
		payload = map[string]any{}
	}
	return &session{
		shape:        shape,
		opts:         opts,
		payload:      payload,
		path:         path,
		subject:      make(Object, len(shape.Properties)),
		exposed:      make(map[string]any),
		optional:     make(map[string]bool),
		slots:        make(map[string]*outcome),
		nestedObj:    make(map[string]any),
		nestedErrors: make(map[string][]*ValidationError),
	}
}

// plain returns the raw payload value of a property.
func (s *session) plain(name string) (any, bool) {
	v, ok := s.payload[name]
	return v, ok
}

func (s *session) markOptional(name string) {
	s.optional[name] = true
}

func (s *session) isOptional(name string) bool {
	return s.optional[name]
}

func (s *session) setExposed(name string, v any) {
	s.exposed[name] = v
}

// view snapshots exposed values overlaid with the live subject.
func (s *session) view() View {
	values := make(map[string]any, len(s.exposed)+len(s.subject))
	maps.Copy(values, s.exposed)
	maps.Copy(values, s.subject)
	return View{values: values, data: s.opts.data}
}

func (s *session) messageArgs(name string, value any) MessageArgs {
	return MessageArgs{Property: name, Value: value, Target: s.shape.Name, Data: s.opts.data}
}

// recordError registers a failure for draft.Property. When check is non-nil
// the failure only counts if check eventually settles false.
func (s *session) recordError(draft *ValidationError, check *async.Future[bool]) {
	r := report{draft: draft, check: check}
	if slot, ok := s.slots[draft.Property]; ok {
		slot.add(r)
		return
	}
	s.slots[draft.Property] = newOutcome(r)
	s.errorKeys = append(s.errorKeys, draft.Property)
}

// errors joins every slot and returns the failures in registration order.
func (s *session) errors(ctx context.Context) ([]*ValidationError, error) {
	var out []*ValidationError
	for _, key := range s.errorKeys {
		ve, err := s.slots[key].join(ctx)
		if err != nil {
			return nil, err
		}
		if ve != nil {
			out = append(out, ve)
		}
	}
	return out, nil
}

func (s *session) setNested(name string, obj any, errs []*ValidationError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// the pass already ended (fault or cancelled ctx)
	if s.nestedObj == nil {
		return
	}
	if obj != nil {
		s.nestedObj[name] = obj
	}
	if len(errs) > 0 {
		s.nestedErrors[name] = errs
	}
}

func (s *session) nested() (map[string]any, map[string][]*ValidationError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.nestedObj), maps.Clone(s.nestedErrors)
}

// flush drops every buffer so nothing outlives the pass.
func (s *session) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = nil
	s.exposed = nil
	s.optional = nil
	s.slots = nil
	s.errorKeys = nil
	s.nestedObj = nil
	s.nestedErrors = nil
}
