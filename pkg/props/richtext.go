package props

import (
	"encoding/json"
	"strings"
)

// DefaultRichTextKey is the property key a RichText is bound to unless
// changed.
const DefaultRichTextKey = "rich_text"

// RichTextItem is accepted wherever rich text is expected. Only Text and
// *RichText implement it.
type RichTextItem interface {
	isRichTextItem()
}

// RichText is an ordered sequence of Text spans bound to one property key.
//
// The zero value is not usable; construct with NewRichText.
type RichText struct {
	key   string
	texts []Text
}

// NewRichText returns a RichText bound to DefaultRichTextKey. Nested
// RichText items are flattened into their spans.
func NewRichText(items ...RichTextItem) *RichText {
	return NewKeyedRichText(DefaultRichTextKey, items...)
}

// NewKeyedRichText returns a RichText bound to key.
func NewKeyedRichText(key string, items ...RichTextItem) *RichText {
	r := &RichText{key: key, texts: []Text{}}
	r.Extend(items...)
	return r
}

func (*RichText) isRichTextItem() {}

// Key returns the property key.
func (r *RichText) Key() string {
	return r.key
}

// SetKey rebinds the spans to a new property key.
func (r *RichText) SetKey(key string) error {
	if key == "" {
		return Invalidf("RichText.SetKey", "key cannot be empty")
	}
	r.key = key
	return nil
}

// Append adds item to the end.
func (r *RichText) Append(item RichTextItem) {
	r.texts = append(r.texts, flatten(item)...)
}

// Extend adds items to the end in order.
func (r *RichText) Extend(items ...RichTextItem) {
	for _, item := range items {
		r.Append(item)
	}
}

// Insert places item before position i. i may equal Len.
func (r *RichText) Insert(i int, item RichTextItem) error {
	if i < 0 || i > len(r.texts) {
		return OutOfRange("RichText.Insert", i, len(r.texts))
	}
	spans := flatten(item)
	texts := make([]Text, 0, len(r.texts)+len(spans))
	texts = append(texts, r.texts[:i]...)
	texts = append(texts, spans...)
	texts = append(texts, r.texts[i:]...)
	r.texts = texts
	return nil
}

// Pop removes and returns the span at position i.
func (r *RichText) Pop(i int) (Text, error) {
	if i < 0 || i >= len(r.texts) {
		return Text{}, OutOfRange("RichText.Pop", i, len(r.texts))
	}
	t := r.texts[i]
	r.texts = append(r.texts[:i:i], r.texts[i+1:]...)
	return t, nil
}

// Len returns the number of spans.
func (r *RichText) Len() int {
	if r == nil {
		return 0
	}
	return len(r.texts)
}

// Texts returns a copy of the spans.
func (r *RichText) Texts() []Text {
	if r == nil {
		return []Text{}
	}
	out := make([]Text, len(r.texts))
	copy(out, r.texts)
	return out
}

// PlainText concatenates the span contents.
func (r *RichText) PlainText() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, t := range r.texts {
		b.WriteString(t.Content)
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler. The output is {key: [spans...]}.
func (r *RichText) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Text{r.key: r.Texts()})
}

func flatten(item RichTextItem) []Text {
	switch v := item.(type) {
	case Text:
		return []Text{v}
	case *RichText:
		return v.Texts()
	default:
		return nil
	}
}
