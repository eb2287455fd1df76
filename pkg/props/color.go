package props

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Color is a text or block color.
type Color string

const (
	ColorDefault Color = "default"
	ColorGray    Color = "gray"
	ColorBrown   Color = "brown"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
	ColorRed     Color = "red"

	ColorGrayBackground   Color = "gray_background"
	ColorBrownBackground  Color = "brown_background"
	ColorOrangeBackground Color = "orange_background"
	ColorYellowBackground Color = "yellow_background"
	ColorGreenBackground  Color = "green_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorRedBackground    Color = "red_background"
)

// ValidColors returns every color the API accepts for text and blocks.
func ValidColors() []Color {
	return []Color{
		ColorDefault, ColorGray, ColorBrown, ColorOrange, ColorYellow,
		ColorGreen, ColorBlue, ColorPurple, ColorPink, ColorRed,
		ColorGrayBackground, ColorBrownBackground, ColorOrangeBackground,
		ColorYellowBackground, ColorGreenBackground, ColorBlueBackground,
		ColorPurpleBackground, ColorPinkBackground, ColorRedBackground,
	}
}

var colorRule = func() validation.Rule {
	elems := make([]interface{}, 0, len(ValidColors()))
	for _, c := range ValidColors() {
		elems = append(elems, string(c))
	}
	return validation.In(elems...).Error("must be a valid color")
}()

// Validate implements validation.Validatable. The empty color is valid and
// means ColorDefault.
func (c Color) Validate() error {
	return validation.Validate(string(c), colorRule)
}

// Valid reports whether c is empty or one of ValidColors.
func (c Color) Valid() bool {
	return c.Validate() == nil
}

// OrDefault returns c, or ColorDefault if c is empty.
func (c Color) OrDefault() Color {
	if c == "" {
		return ColorDefault
	}
	return c
}

// String returns the string representation of the color.
func (c Color) String() string {
	return string(c)
}

// Annotations are the styling flags of a text span.
type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

// DefaultAnnotations returns unstyled annotations.
func DefaultAnnotations() Annotations {
	return Annotations{Color: ColorDefault}
}

// Validate implements validation.Validatable.
func (a Annotations) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Color),
	)
}

func (a Annotations) normalized() Annotations {
	a.Color = a.Color.OrDefault()
	return a
}
