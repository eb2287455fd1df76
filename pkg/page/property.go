package page

import (
	"encoding/json"
	"time"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Value is the value of one page property.
type Value interface {
	json.Marshaler

	// ValueType returns the property type discriminator, e.g. "title".
	ValueType() string

	isValue()
}

var (
	_ Value = Title{}
	_ Value = (*RichText)(nil)
	_ Value = Number(0)
	_ Value = Select("")
	_ Value = MultiSelect(nil)
	_ Value = Checkbox(false)
	_ Value = URL("")
	_ Value = Date{}
)

func marshalValue(typ string, v interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{typ: v})
}

// Title is the title of a page.
type Title struct {
	Text string
}

// NewTitle returns a title value.
func NewTitle(text string) Title {
	return Title{Text: text}
}

func (Title) ValueType() string { return "title" }
func (Title) isValue()          {}

// MarshalJSON implements json.Marshaler.
func (t Title) MarshalJSON() ([]byte, error) {
	return marshalValue("title", []props.PlainText{{Content: t.Text}})
}

// RichText is a text property value.
type RichText struct {
	text *props.RichText
}

// NewRichText returns a text property value holding items.
func NewRichText(items ...props.RichTextItem) *RichText {
	return &RichText{text: props.NewRichText(items...)}
}

// RichText returns the underlying text.
func (r *RichText) RichText() *props.RichText {
	return r.text
}

func (*RichText) ValueType() string { return "rich_text" }
func (*RichText) isValue()          {}

// MarshalJSON implements json.Marshaler.
func (r *RichText) MarshalJSON() ([]byte, error) {
	return marshalValue("rich_text", r.text.Texts())
}

// Number is a number property value.
type Number float64

func (Number) ValueType() string { return "number" }
func (Number) isValue()          {}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return marshalValue("number", float64(n))
}

// Select selects the option with the given name.
type Select string

func (Select) ValueType() string { return "select" }
func (Select) isValue()          {}

// MarshalJSON implements json.Marshaler.
func (s Select) MarshalJSON() ([]byte, error) {
	if s == "" {
		return marshalValue("select", nil)
	}
	return marshalValue("select", map[string]string{"name": string(s)})
}

// MultiSelect selects the options with the given names.
type MultiSelect []string

func (MultiSelect) ValueType() string { return "multi_select" }
func (MultiSelect) isValue()          {}

// MarshalJSON implements json.Marshaler.
func (m MultiSelect) MarshalJSON() ([]byte, error) {
	names := make([]map[string]string, 0, len(m))
	for _, n := range m {
		names = append(names, map[string]string{"name": n})
	}
	return marshalValue("multi_select", names)
}

// Checkbox is a checkbox property value.
type Checkbox bool

func (Checkbox) ValueType() string { return "checkbox" }
func (Checkbox) isValue()          {}

// MarshalJSON implements json.Marshaler.
func (c Checkbox) MarshalJSON() ([]byte, error) {
	return marshalValue("checkbox", bool(c))
}

// URL is a URL property value. The empty URL clears the property.
type URL string

func (URL) ValueType() string { return "url" }
func (URL) isValue()          {}

// MarshalJSON implements json.Marshaler.
func (u URL) MarshalJSON() ([]byte, error) {
	if u == "" {
		return marshalValue("url", nil)
	}
	return marshalValue("url", string(u))
}

// Date is a date or date range property value.
type Date struct {
	Start time.Time
	End   time.Time

	// IncludeTime formats the dates as RFC 3339 timestamps instead of
	// calendar dates.
	IncludeTime bool
}

func (Date) ValueType() string { return "date" }
func (Date) isValue()          {}

func (d Date) format(t time.Time) string {
	if d.IncludeTime {
		return t.Format(time.RFC3339)
	}
	return t.Format("2006-01-02")
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Start.IsZero() {
		return marshalValue("date", nil)
	}
	body := map[string]interface{}{
		"start": d.format(d.Start),
		"end":   nil,
	}
	if !d.End.IsZero() {
		if d.End.Before(d.Start) {
			return nil, props.Invalidf("Date", "end %s is before start %s", d.format(d.End), d.format(d.Start))
		}
		body["end"] = d.format(d.End)
	}
	return marshalValue("date", body)
}
