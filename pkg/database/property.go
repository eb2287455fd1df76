package database

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Property is the schema of one database column.
type Property interface {
	json.Marshaler

	// PropertyType returns the property type discriminator, e.g. "select".
	PropertyType() string

	isProperty()
}

var (
	_ Property = (*Select)(nil)
	_ Property = (*Number)(nil)
	_ Property = (*Column)(nil)
)

func marshalProperty(typ string, body interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{typ: body})
}

// Select is a select or multi-select property with an ordered option list.
type Select struct {
	multi   bool
	options []Option
}

// NewSelect returns a single choice select property.
func NewSelect(options ...Option) *Select {
	s := &Select{options: []Option{}}
	s.Extend(options...)
	return s
}

// NewMultiSelect returns a multiple choice select property.
func NewMultiSelect(options ...Option) *Select {
	s := NewSelect(options...)
	s.multi = true
	return s
}

// Append adds an option to the end.
func (s *Select) Append(o Option) {
	s.options = append(s.options, o)
}

// Extend adds options to the end in order.
func (s *Select) Extend(options ...Option) {
	s.options = append(s.options, options...)
}

// Insert places o before position i. i may equal the option count.
func (s *Select) Insert(i int, o Option) error {
	if i < 0 || i > len(s.options) {
		return props.OutOfRange("Select.Insert", i, len(s.options))
	}
	s.options = append(s.options, Option{})
	copy(s.options[i+1:], s.options[i:])
	s.options[i] = o
	return nil
}

// Options returns a copy of the options.
func (s *Select) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// PropertyType returns "select" or "multi_select".
func (s *Select) PropertyType() string {
	if s.multi {
		return "multi_select"
	}
	return "select"
}

func (*Select) isProperty() {}

// MarshalJSON implements json.Marshaler.
func (s *Select) MarshalJSON() ([]byte, error) {
	return marshalProperty(s.PropertyType(), map[string][]Option{"options": s.Options()})
}

// NumberFormat is how a number property is displayed.
type NumberFormat string

const (
	FormatNumber           NumberFormat = "number"
	FormatNumberWithCommas NumberFormat = "number_with_commas"
	FormatPercent          NumberFormat = "percent"
	FormatDollar           NumberFormat = "dollar"
	FormatEuro             NumberFormat = "euro"
	FormatPound            NumberFormat = "pound"
	FormatYen              NumberFormat = "yen"
)

var numberFormats = []NumberFormat{
	"number", "number_with_commas", "percent", "dollar", "canadian_dollar",
	"euro", "pound", "yen", "ruble", "rupee", "won", "yuan", "real", "lira",
	"rupiah", "franc", "hong_kong_dollar", "new_zealand_dollar", "krona",
	"norwegian_krone", "mexican_peso", "rand", "new_taiwan_dollar",
	"danish_krone", "zloty", "baht", "forint", "koruna", "shekel",
	"chilean_peso", "philippine_peso", "dirham", "colombian_peso", "riyal",
	"ringgit", "leu",
}

// ValidNumberFormats returns every supported number format.
func ValidNumberFormats() []NumberFormat {
	out := make([]NumberFormat, len(numberFormats))
	copy(out, numberFormats)
	return out
}

// Validate implements validation.Validatable.
func (f NumberFormat) Validate() error {
	elems := make([]interface{}, len(numberFormats))
	for i, v := range numberFormats {
		elems[i] = string(v)
	}
	return validation.Validate(string(f),
		validation.Required,
		validation.In(elems...).Error("must be a supported number format"),
	)
}

// Number is a number property.
type Number struct {
	format NumberFormat
}

// NewNumber returns a number property with the given format.
func NewNumber(format NumberFormat) (*Number, error) {
	n := &Number{}
	if err := n.SetFormat(format); err != nil {
		return nil, err
	}
	return n, nil
}

// Format returns the display format.
func (n *Number) Format() NumberFormat {
	return n.format
}

// SetFormat changes the display format.
func (n *Number) SetFormat(f NumberFormat) error {
	if err := f.Validate(); err != nil {
		return props.Invalid("Number.SetFormat", err)
	}
	n.format = f
	return nil
}

// PropertyType returns "number".
func (*Number) PropertyType() string { return "number" }
func (*Number) isProperty()          {}

// MarshalJSON implements json.Marshaler.
func (n *Number) MarshalJSON() ([]byte, error) {
	return marshalProperty("number", map[string]NumberFormat{"format": n.format})
}

// Column is a property without configuration.
type Column struct {
	typ string
}

// Title returns the title property. Every database has exactly one.
func Title() *Column { return &Column{typ: "title"} }

// RichText returns a text property.
func RichText() *Column { return &Column{typ: "rich_text"} }

// Checkbox returns a checkbox property.
func Checkbox() *Column { return &Column{typ: "checkbox"} }

// Date returns a date property.
func Date() *Column { return &Column{typ: "date"} }

// URL returns a URL property.
func URL() *Column { return &Column{typ: "url"} }

// PropertyType returns the column type.
func (c *Column) PropertyType() string { return c.typ }
func (*Column) isProperty()            {}

// MarshalJSON implements json.Marshaler.
func (c *Column) MarshalJSON() ([]byte, error) {
	return marshalProperty(c.typ, struct{}{})
}
