package rto

import "fmt"

const requiredMessage = "'%s' must be defined."

// expose registers the working value of p so it takes part in validation
// views and in the final merge. A required property with nothing to expose is
// reported right away, before any predicate runs.
func (s *session) expose(p *Property, w working) {
	if w.defined {
		s.setExposed(p.Name, w.value)
		return
	}
	if s.isOptional(p.Name) {
		return
	}

	plain, _ := s.plain(p.Name)
	s.recordError(&ValidationError{
		Property:    p.Name,
		Constraints: []string{fmt.Sprintf(requiredMessage, p.Name)},
		PlainValue:  plain,
		Target:      s.shape.Name,
	}, nil)
}
