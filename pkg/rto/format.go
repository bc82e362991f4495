package rto

// Document is the user-facing error tree produced by Format. Each value is
// either []Entry (a leaf property) or Branch (a property with nested errors).
type Document map[string]any

// Entry is one leaf failure in a Document.
type Entry struct {
	Constraints []string `json:"constraints"`
	Value       any      `json:"value"`
	PlainValue  any      `json:"plainValue"`
}

// Branch is a property whose nested shape failed.
type Branch struct {
	Message    string   `json:"message"`
	Properties Document `json:"properties"`
}

// Format turns validation errors into a Document. It has no side effects and
// returns an empty Document for no errors.
func Format(errs []*ValidationError) Document {
	doc := make(Document, len(errs))
	for _, ve := range errs {
		if len(ve.Children) > 0 {
			var msg string
			if len(ve.Constraints) > 0 {
				msg = ve.Constraints[0]
			}
			doc[ve.Property] = Branch{Message: msg, Properties: Format(ve.Children)}
			continue
		}

		entries, _ := doc[ve.Property].([]Entry)
		doc[ve.Property] = append(entries, Entry{
			Constraints: ve.Constraints,
			Value:       ve.Value,
			PlainValue:  ve.PlainValue,
		})
	}
	return doc
}
