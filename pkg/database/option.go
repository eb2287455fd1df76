package database

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// OptionColors lists the colors a select option accepts. Background colors
// are not allowed.
var OptionColors = []props.Color{
	props.ColorDefault, props.ColorGray, props.ColorBrown, props.ColorOrange,
	props.ColorYellow, props.ColorGreen, props.ColorBlue, props.ColorPurple,
	props.ColorPink, props.ColorRed,
}

// Option is one choice of a select or multi-select property.
type Option struct {
	Name  string
	Color props.Color
}

// NewOption returns a validated option.
func NewOption(name string, color props.Color) (Option, error) {
	o := Option{Name: name, Color: color}
	if err := o.Validate(); err != nil {
		return Option{}, err
	}
	return o, nil
}

// MustOption is like NewOption but panics on error.
func MustOption(name string, color props.Color) Option {
	o, err := NewOption(name, color)
	if err != nil {
		panic(fmt.Sprintf("invalid option %q: %v", name, err))
	}
	return o
}

// Validate implements validation.Validatable.
func (o Option) Validate() error {
	colors := make([]interface{}, len(OptionColors))
	for i, c := range OptionColors {
		colors[i] = c
	}
	return props.Invalid("Option", validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required),
		validation.Field(&o.Color, validation.In(colors...).Error("must be a valid option color")),
	))
}

// MarshalJSON implements json.Marshaler.
func (o Option) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]string{
		"name":  o.Name,
		"color": string(o.Color.OrDefault()),
	})
}
