package block

import (
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// textBlock holds the fields shared by blocks whose body is rich text.
type textBlock struct {
	text     *props.RichText
	color    props.Color
	children *Children
}

func newTextBlock(items []props.RichTextItem) textBlock {
	return textBlock{
		text:     props.NewRichText(items...),
		color:    props.ColorDefault,
		children: NewChildren(),
	}
}

// RichText returns the block text. Changes to it are reflected in the block.
func (b *textBlock) RichText() *props.RichText {
	return b.text
}

// SetRichText replaces the block text. rt must be bound to the "rich_text"
// key.
func (b *textBlock) SetRichText(rt *props.RichText) error {
	if err := keyed("SetRichText", rt, props.DefaultRichTextKey); err != nil {
		return err
	}
	b.text = rt
	return nil
}

// Color returns the block color.
func (b *textBlock) Color() props.Color {
	return b.color
}

// SetColor sets the block color.
func (b *textBlock) SetColor(c props.Color) error {
	if err := c.Validate(); err != nil {
		return props.Invalid("SetColor", err)
	}
	b.color = c.OrDefault()
	return nil
}

// Children returns the nested blocks. Changes to it are reflected in the
// block.
func (b *textBlock) Children() *Children {
	return b.children
}

func (b *textBlock) payload() payload {
	p := payload{
		props.DefaultRichTextKey: b.text.Texts(),
		"color":                  b.color.OrDefault(),
	}
	if b.children.Len() > 0 {
		p["children"] = b.children.Blocks()
	}
	return p
}

// Paragraph is a paragraph block.
type Paragraph struct {
	textBlock
}

// NewParagraph returns a paragraph holding items.
func NewParagraph(items ...props.RichTextItem) *Paragraph {
	return &Paragraph{textBlock: newTextBlock(items)}
}

func (*Paragraph) Type() Type { return TypeParagraph }
func (*Paragraph) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Paragraph) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// Heading is a level 1, 2 or 3 heading.
type Heading struct {
	textBlock
	level int

	// Toggleable makes the heading collapse its children. Only toggleable
	// headings may have children.
	Toggleable bool
}

// NewHeading1 returns a level 1 heading.
func NewHeading1(items ...props.RichTextItem) *Heading {
	return &Heading{textBlock: newTextBlock(items), level: 1}
}

// NewHeading2 returns a level 2 heading.
func NewHeading2(items ...props.RichTextItem) *Heading {
	return &Heading{textBlock: newTextBlock(items), level: 2}
}

// NewHeading3 returns a level 3 heading.
func NewHeading3(items ...props.RichTextItem) *Heading {
	return &Heading{textBlock: newTextBlock(items), level: 3}
}

// Level returns 1, 2 or 3.
func (b *Heading) Level() int {
	return b.level
}

func (b *Heading) Type() Type {
	switch b.level {
	case 2:
		return TypeHeading2
	case 3:
		return TypeHeading3
	default:
		return TypeHeading1
	}
}

func (*Heading) isBlock() {}

// MarshalJSON implements json.Marshaler.
func (b *Heading) MarshalJSON() ([]byte, error) {
	if !b.Toggleable && b.children.Len() > 0 {
		return nil, props.Invalidf("Heading", "only toggleable headings can have children")
	}
	p := b.payload()
	p["is_toggleable"] = b.Toggleable
	return marshalBlock(b.Type(), p)
}

// BulletedListItem is one item of a bulleted list.
type BulletedListItem struct {
	textBlock
}

// NewBulletedListItem returns a bulleted list item holding items.
func NewBulletedListItem(items ...props.RichTextItem) *BulletedListItem {
	return &BulletedListItem{textBlock: newTextBlock(items)}
}

func (*BulletedListItem) Type() Type { return TypeBulletedListItem }
func (*BulletedListItem) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *BulletedListItem) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// NumberedListItem is one item of a numbered list.
type NumberedListItem struct {
	textBlock
}

// NewNumberedListItem returns a numbered list item holding items.
func NewNumberedListItem(items ...props.RichTextItem) *NumberedListItem {
	return &NumberedListItem{textBlock: newTextBlock(items)}
}

func (*NumberedListItem) Type() Type { return TypeNumberedListItem }
func (*NumberedListItem) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *NumberedListItem) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// ToDo is a checkbox item.
type ToDo struct {
	textBlock
	Checked bool
}

// NewToDo returns an unchecked to-do item holding items.
func NewToDo(items ...props.RichTextItem) *ToDo {
	return &ToDo{textBlock: newTextBlock(items)}
}

func (*ToDo) Type() Type { return TypeToDo }
func (*ToDo) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *ToDo) MarshalJSON() ([]byte, error) {
	p := b.payload()
	p["checked"] = b.Checked
	return marshalBlock(b.Type(), p)
}

// Toggle is a collapsible block.
type Toggle struct {
	textBlock
}

// NewToggle returns a toggle holding items.
func NewToggle(items ...props.RichTextItem) *Toggle {
	return &Toggle{textBlock: newTextBlock(items)}
}

func (*Toggle) Type() Type { return TypeToggle }
func (*Toggle) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Toggle) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// Quote is a quote block.
type Quote struct {
	textBlock
}

// NewQuote returns a quote holding items.
func NewQuote(items ...props.RichTextItem) *Quote {
	return &Quote{textBlock: newTextBlock(items)}
}

func (*Quote) Type() Type { return TypeQuote }
func (*Quote) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Quote) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// Callout is highlighted text with an icon.
type Callout struct {
	textBlock
	icon props.Icon
}

// NewCallout returns a callout with the given icon holding items.
func NewCallout(icon props.Icon, items ...props.RichTextItem) *Callout {
	return &Callout{textBlock: newTextBlock(items), icon: icon}
}

// Icon returns the callout icon.
func (b *Callout) Icon() props.Icon {
	return b.icon
}

// SetIcon replaces the callout icon.
func (b *Callout) SetIcon(icon props.Icon) {
	b.icon = icon
}

func (*Callout) Type() Type { return TypeCallout }
func (*Callout) isBlock()   {}

// MarshalJSON implements json.Marshaler. An unset icon is omitted and the
// API applies its default.
func (b *Callout) MarshalJSON() ([]byte, error) {
	p := b.payload()
	if !b.icon.IsZero() {
		p["icon"] = b.icon
	}
	return marshalBlock(b.Type(), p)
}

// NewTextBlock builds a plain text block of type t. Only the types whose
// content is a single rich text are accepted.
func NewTextBlock(t Type, items ...props.RichTextItem) (Block, error) {
	switch t {
	case TypeParagraph:
		return NewParagraph(items...), nil
	case TypeHeading1:
		return NewHeading1(items...), nil
	case TypeHeading2:
		return NewHeading2(items...), nil
	case TypeHeading3:
		return NewHeading3(items...), nil
	case TypeBulletedListItem:
		return NewBulletedListItem(items...), nil
	case TypeNumberedListItem:
		return NewNumberedListItem(items...), nil
	case TypeToDo:
		return NewToDo(items...), nil
	case TypeToggle:
		return NewToggle(items...), nil
	case TypeQuote:
		return NewQuote(items...), nil
	default:
		return nil, props.Invalidf("NewTextBlock", "%q is not a text block type", t)
	}
}
