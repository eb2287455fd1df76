package props

import (
	"encoding/json"
)

// Text is a single styled span of rich text.
type Text struct {
	Content     string
	Link        string
	Annotations Annotations
}

// TextOption configures a Text.
type TextOption func(*Text)

// NewText returns an unstyled span with the given content.
func NewText(content string, opts ...TextOption) Text {
	t := Text{
		Content:     content,
		Annotations: DefaultAnnotations(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// WithLink makes the span a hyperlink.
func WithLink(url string) TextOption {
	return func(t *Text) { t.Link = url }
}

// Bold sets the bold annotation.
func Bold() TextOption {
	return func(t *Text) { t.Annotations.Bold = true }
}

// Italic sets the italic annotation.
func Italic() TextOption {
	return func(t *Text) { t.Annotations.Italic = true }
}

// Strikethrough sets the strikethrough annotation.
func Strikethrough() TextOption {
	return func(t *Text) { t.Annotations.Strikethrough = true }
}

// Underline sets the underline annotation.
func Underline() TextOption {
	return func(t *Text) { t.Annotations.Underline = true }
}

// Code sets the inline code annotation.
func Code() TextOption {
	return func(t *Text) { t.Annotations.Code = true }
}

// WithColor sets the span color.
func WithColor(c Color) TextOption {
	return func(t *Text) { t.Annotations.Color = c }
}

// Validate implements validation.Validatable.
func (t Text) Validate() error {
	return Invalid("Text", t.Annotations.Validate())
}

func (Text) isRichTextItem() {}

type textLink struct {
	URL string `json:"url"`
}

type textContent struct {
	Content string    `json:"content"`
	Link    *textLink `json:"link"`
}

func newTextContent(content, link string) textContent {
	tc := textContent{Content: content}
	if link != "" {
		tc.Link = &textLink{URL: link}
	}
	return tc
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Type        string      `json:"type"`
		Text        textContent `json:"text"`
		Annotations Annotations `json:"annotations"`
	}{
		Type:        "text",
		Text:        newTextContent(t.Content, t.Link),
		Annotations: t.Annotations.normalized(),
	})
}

// PlainText is a span without annotations, as used in page titles.
type PlainText struct {
	Content string
	Link    string
}

// MarshalJSON implements json.Marshaler.
func (p PlainText) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string      `json:"type"`
		Text textContent `json:"text"`
	}{
		Type: "text",
		Text: newTextContent(p.Content, p.Link),
	})
}
