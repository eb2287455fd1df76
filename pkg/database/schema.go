package database

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Schema is the set of properties of a database. Names reports them in
// insertion order; the JSON object written by MarshalJSON has its keys sorted,
// since the API treats properties as an unordered map. The zero value is an
// empty schema.
type Schema struct {
	names []string
	props map[string]Property
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{props: map[string]Property{}}
}

// Set adds or replaces the property called name.
func (s *Schema) Set(name string, p Property) error {
	if name == "" {
		return props.Invalidf("Schema.Set", "property name cannot be empty")
	}
	if p == nil {
		return props.Invalidf("Schema.Set", "property %q cannot be nil", name)
	}
	if s.props == nil {
		s.props = map[string]Property{}
	}
	if _, ok := s.props[name]; !ok {
		s.names = append(s.names, name)
	}
	s.props[name] = p
	return nil
}

// Get returns the property called name.
func (s *Schema) Get(name string) (Property, bool) {
	p, ok := s.props[name]
	return p, ok
}

// Delete removes the property called name.
func (s *Schema) Delete(name string) {
	if _, ok := s.props[name]; !ok {
		return
	}
	delete(s.props, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i:i], s.names[i+1:]...)
			break
		}
	}
}

// Names returns property names in insertion order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of properties.
func (s *Schema) Len() int {
	return len(s.names)
}

// Validate checks that the schema has exactly one title property and that
// every option is valid.
func (s *Schema) Validate() error {
	var result *multierror.Error

	titles := 0
	for _, name := range s.names {
		p := s.props[name]
		if p.PropertyType() == "title" {
			titles++
		}
		if sel, ok := p.(*Select); ok {
			for _, o := range sel.options {
				if err := o.Validate(); err != nil {
					result = multierror.Append(result, fmt.Errorf("property %q: %w", name, err))
				}
			}
		}
	}
	if titles != 1 {
		result = multierror.Append(result,
			props.Arityf("Schema", "must have exactly 1 title property, got %d", titles))
	}

	return result.ErrorOrNil()
}

// MarshalJSON implements json.Marshaler. The output is {name: property, ...}
// with keys in sorted order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make(map[string]Property, len(s.props))
	for name, p := range s.props {
		out[name] = p
	}
	return json.Marshal(out)
}
