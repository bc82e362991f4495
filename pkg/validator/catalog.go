package validator

import (
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// Catalog maps rule names to message templates. Templates use named
// placeholders: %{property}, %{value} and %{target} are always available,
// and any key of the pass data (rto.WithData) can be referenced as well.
//
//	is_email: "%{property} does not look like an e-mail address"
//	is_date: "%{property} must be a date"
type Catalog struct {
	messages map[string]string
}

// NewCatalog builds a Catalog from a map of rule name to template.
func NewCatalog(messages map[string]string) *Catalog {
	c := &Catalog{messages: make(map[string]string, len(messages))}
	for k, v := range messages {
		c.messages[k] = v
	}
	return c
}

// LoadCatalog parses a flat YAML document of rule name to template.
func LoadCatalog(data []byte) (*Catalog, error) {
	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(messages) == 0 {
		return nil, ErrEmptyCatalog
	}
	return NewCatalog(messages), nil
}

// Has reports whether the catalog has a template for rule.
func (c *Catalog) Has(rule string) bool {
	_, ok := c.messages[rule]
	return ok
}

// Message returns a renderer for the template registered under rule, or nil
// when there is none.
func (c *Catalog) Message(rule string) rto.MessageFunc {
	tmpl, ok := c.messages[rule]
	if !ok {
		return nil
	}
	return func(args rto.MessageArgs) string {
		return render(tmpl, args)
	}
}

// Localize replaces the message of every rule that has a template in the
// catalog, leaving the others untouched.
func (c *Catalog) Localize(rules ...rto.Rule) []rto.Rule {
	out := make([]rto.Rule, len(rules))
	for i, r := range rules {
		if msg := c.Message(r.Name); msg != nil {
			r.Message = msg
		}
		out[i] = r
	}
	return out
}

// LocalizeShape returns a copy of shape whose rules use the catalog's
// messages. shape itself is left untouched, so passes already running on it
// are unaffected.
func (c *Catalog) LocalizeShape(shape *rto.Shape) *rto.Shape {
	props := make([]rto.Property, len(shape.Properties))
	for i, p := range shape.Properties {
		p.Rules = c.Localize(p.Rules...)
		props[i] = p
	}
	return &rto.Shape{Name: shape.Name, Properties: props}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func render(tmpl string, args rto.MessageArgs) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		switch name {
		case "property":
			return args.Property
		case "target":
			return args.Target
		case "value":
			return fmt.Sprint(args.Value)
		}
		if v, ok := args.Data[name]; ok {
			return fmt.Sprint(v)
		}
		// unknown placeholders are kept verbatim
		return match
	})
}
