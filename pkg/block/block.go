package block

import (
	"encoding/json"

	"github.com/iancoleman/strcase"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Type is the block type discriminator.
type Type string

const (
	TypeParagraph        Type = "paragraph"
	TypeHeading1         Type = "heading_1"
	TypeHeading2         Type = "heading_2"
	TypeHeading3         Type = "heading_3"
	TypeBulletedListItem Type = "bulleted_list_item"
	TypeNumberedListItem Type = "numbered_list_item"
	TypeToDo             Type = "to_do"
	TypeToggle           Type = "toggle"
	TypeQuote            Type = "quote"
	TypeCallout          Type = "callout"
	TypeCode             Type = "code"
	TypeEquation         Type = "equation"
	TypeDivider          Type = "divider"
	TypeBreadcrumb       Type = "breadcrumb"
	TypeTableOfContents  Type = "table_of_contents"
	TypeEmbed            Type = "embed"
	TypeBookmark         Type = "bookmark"
	TypeImage            Type = "image"
	TypeVideo            Type = "video"
	TypeFile             Type = "file"
	TypePDF              Type = "pdf"
	TypeLinkToPage       Type = "link_to_page"
	TypeSyncedBlock      Type = "synced_block"
	TypeColumn           Type = "column"
	TypeColumnList       Type = "column_list"
	TypeTable            Type = "table"
	TypeTableRow         Type = "table_row"
)

// ValidTypes returns all block types this package can build.
func ValidTypes() []Type {
	return []Type{
		TypeParagraph, TypeHeading1, TypeHeading2, TypeHeading3,
		TypeBulletedListItem, TypeNumberedListItem, TypeToDo, TypeToggle,
		TypeQuote, TypeCallout, TypeCode, TypeEquation, TypeDivider,
		TypeBreadcrumb, TypeTableOfContents, TypeEmbed, TypeBookmark,
		TypeImage, TypeVideo, TypeFile, TypePDF, TypeLinkToPage,
		TypeSyncedBlock, TypeColumn, TypeColumnList, TypeTable, TypeTableRow,
	}
}

// IsValid returns true if this is a recognized block type.
func (t Type) IsValid() bool {
	for _, v := range ValidTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// ParseType converts a loosely written name ("Heading1", "to-do",
// "TableOfContents") to a block type.
func ParseType(name string) (Type, error) {
	t := Type(strcase.ToSnake(name))
	if !t.IsValid() {
		return "", props.Invalidf("ParseType", "unknown block type %q", name)
	}
	return t, nil
}

// Block is a single Notion block.
type Block interface {
	json.Marshaler

	// Type returns the block type discriminator.
	Type() Type

	isBlock()
}

// Compile-time checks that every block kind implements Block.
var (
	_ Block = (*Paragraph)(nil)
	_ Block = (*Heading)(nil)
	_ Block = (*BulletedListItem)(nil)
	_ Block = (*NumberedListItem)(nil)
	_ Block = (*ToDo)(nil)
	_ Block = (*Toggle)(nil)
	_ Block = (*Quote)(nil)
	_ Block = (*Callout)(nil)
	_ Block = (*Code)(nil)
	_ Block = (*Equation)(nil)
	_ Block = (*Divider)(nil)
	_ Block = (*Breadcrumb)(nil)
	_ Block = (*TableOfContents)(nil)
	_ Block = (*Embed)(nil)
	_ Block = (*Bookmark)(nil)
	_ Block = (*Image)(nil)
	_ Block = (*Video)(nil)
	_ Block = (*File)(nil)
	_ Block = (*PDF)(nil)
	_ Block = (*LinkToPage)(nil)
	_ Block = (*SyncedBlock)(nil)
	_ Block = (*Column)(nil)
	_ Block = (*ColumnList)(nil)
	_ Block = (*Table)(nil)
	_ Block = (*TableRow)(nil)
)

// payload is the type-specific body of a block.
type payload map[string]interface{}

func marshalBlock(t Type, p payload) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"object":  "block",
		"type":    t,
		string(t): p,
	})
}

// keyed checks that rt is bound to key, for setters that replace a block's
// rich text.
func keyed(op string, rt *props.RichText, key string) error {
	if rt == nil {
		return props.Invalidf(op, "rich text cannot be nil")
	}
	if rt.Key() != key {
		return props.Invalidf(op, "rich text key must be %q, got %q", key, rt.Key())
	}
	return nil
}
