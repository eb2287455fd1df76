package block

import (
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Column is one column of a column list.
type Column struct {
	blocks []Block
}

// NewColumn returns a column holding blocks. At least one block is required.
func NewColumn(blocks ...Block) (*Column, error) {
	c := NewChildren(blocks...)
	if c.Len() < 1 {
		return nil, props.Arityf("Column", "must have at least 1 block")
	}
	return &Column{blocks: c.Blocks()}, nil
}

// Blocks returns a copy of the column content.
func (b *Column) Blocks() []Block {
	out := make([]Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

func (*Column) Type() Type { return TypeColumn }
func (*Column) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Column) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{"children": b.Blocks()})
}

// ColumnList lays out columns side by side.
type ColumnList struct {
	columns []*Column
}

// NewColumnList returns a column list. At least two columns are required.
func NewColumnList(columns ...*Column) (*ColumnList, error) {
	kept := make([]*Column, 0, len(columns))
	for _, c := range columns {
		if c != nil {
			kept = append(kept, c)
		}
	}
	if len(kept) < 2 {
		return nil, props.Arityf("ColumnList", "must have at least 2 columns, got %d", len(kept))
	}
	return &ColumnList{columns: kept}, nil
}

// Columns returns a copy of the columns.
func (b *ColumnList) Columns() []*Column {
	out := make([]*Column, len(b.columns))
	copy(out, b.columns)
	return out
}

func (*ColumnList) Type() Type { return TypeColumnList }
func (*ColumnList) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *ColumnList) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{"children": b.columns})
}
