package block

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Divider is a horizontal rule.
type Divider struct{}

// NewDivider returns a divider.
func NewDivider() *Divider { return &Divider{} }

func (*Divider) Type() Type { return TypeDivider }
func (*Divider) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Divider) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{})
}

// Breadcrumb shows the path to the current page.
type Breadcrumb struct{}

// NewBreadcrumb returns a breadcrumb.
func NewBreadcrumb() *Breadcrumb { return &Breadcrumb{} }

func (*Breadcrumb) Type() Type { return TypeBreadcrumb }
func (*Breadcrumb) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Breadcrumb) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{})
}

// TableOfContents lists the headings of the page.
type TableOfContents struct {
	color props.Color
}

// NewTableOfContents returns a table of contents.
func NewTableOfContents() *TableOfContents {
	return &TableOfContents{color: props.ColorDefault}
}

// SetColor sets the block color.
func (b *TableOfContents) SetColor(c props.Color) error {
	if err := c.Validate(); err != nil {
		return props.Invalid("TableOfContents.SetColor", err)
	}
	b.color = c.OrDefault()
	return nil
}

func (*TableOfContents) Type() Type { return TypeTableOfContents }
func (*TableOfContents) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *TableOfContents) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{"color": b.color.OrDefault()})
}

// Embed embeds an external URL.
type Embed struct {
	URL string
}

// NewEmbed returns an embed block.
func NewEmbed(url string) (*Embed, error) {
	if err := validation.Validate(url, validation.Required); err != nil {
		return nil, props.Invalid("Embed", err)
	}
	return &Embed{URL: url}, nil
}

func (*Embed) Type() Type { return TypeEmbed }
func (*Embed) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Embed) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{"url": b.URL})
}

// Bookmark is a web bookmark with an optional caption.
type Bookmark struct {
	URL     string
	caption *props.RichText
}

// NewBookmark returns a bookmark block.
func NewBookmark(url string, caption ...props.RichTextItem) (*Bookmark, error) {
	if err := validation.Validate(url, validation.Required); err != nil {
		return nil, props.Invalid("Bookmark", err)
	}
	return &Bookmark{URL: url, caption: props.NewKeyedRichText("caption", caption...)}, nil
}

// Caption returns the caption.
func (b *Bookmark) Caption() *props.RichText {
	return b.caption
}

// SetCaption replaces the caption. rt must be bound to "caption".
func (b *Bookmark) SetCaption(rt *props.RichText) error {
	if err := keyed("Bookmark.SetCaption", rt, "caption"); err != nil {
		return err
	}
	b.caption = rt
	return nil
}

func (*Bookmark) Type() Type { return TypeBookmark }
func (*Bookmark) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Bookmark) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{
		"url":     b.URL,
		"caption": b.caption.Texts(),
	})
}

// LinkToPage links to a page or database.
type LinkToPage struct {
	kind notionid.Kind
	id   string
}

// NewLinkToPage returns a link to a page or database. id may be a URL.
func NewLinkToPage(kind notionid.Kind, id string) (*LinkToPage, error) {
	if kind != notionid.KindPage && kind != notionid.KindDatabase {
		return nil, props.Invalidf("LinkToPage", "kind must be page or database, got %q", kind)
	}
	parsed, err := notionid.Parse(id, kind)
	if err != nil {
		return nil, props.Invalid("LinkToPage", err)
	}
	return &LinkToPage{kind: kind, id: parsed}, nil
}

// Target returns the kind and ID of the linked object.
func (b *LinkToPage) Target() (notionid.Kind, string) {
	return b.kind, b.id
}

func (*LinkToPage) Type() Type { return TypeLinkToPage }
func (*LinkToPage) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *LinkToPage) MarshalJSON() ([]byte, error) {
	key := string(b.kind) + "_id"
	return marshalBlock(b.Type(), payload{
		"type": key,
		key:    b.id,
	})
}
