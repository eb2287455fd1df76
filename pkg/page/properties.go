package page

import (
	"encoding/json"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// TitleProperty is the property name of the title of a page whose parent is
// a page or the workspace.
const TitleProperty = "title"

// Properties is the set of property values of a page. Names reports them in
// insertion order; the JSON object written by MarshalJSON has its keys sorted,
// since the API treats properties as an unordered map. The zero value is an
// empty set.
type Properties struct {
	names  []string
	values map[string]Value
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{values: map[string]Value{}}
}

// TitleOnly returns properties holding only a page title.
func TitleOnly(title string) *Properties {
	p := NewProperties()
	p.values[TitleProperty] = NewTitle(title)
	p.names = append(p.names, TitleProperty)
	return p
}

// Set adds or replaces the value of the property called name.
func (p *Properties) Set(name string, v Value) error {
	if name == "" {
		return props.Invalidf("Properties.Set", "property name cannot be empty")
	}
	if v == nil {
		return props.Invalidf("Properties.Set", "value of %q cannot be nil", name)
	}
	if p.values == nil {
		p.values = map[string]Value{}
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = v
	return nil
}

// Get returns the value of the property called name.
func (p *Properties) Get(name string) (Value, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns property names in insertion order.
func (p *Properties) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// MarshalJSON implements json.Marshaler. The output is {name: value, ...}
// with keys in sorted order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	out := make(map[string]Value, len(p.values))
	for name, v := range p.values {
		out[name] = v
	}
	return json.Marshal(out)
}
