package block

import (
	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// TableRow is one row of a table. Each cell is a rich text sequence.
type TableRow struct {
	cells []*props.RichText
}

// NewTableRow returns a row with the given cells. Nil cells are empty.
func NewTableRow(cells ...*props.RichText) *TableRow {
	r := &TableRow{cells: make([]*props.RichText, len(cells))}
	for i, c := range cells {
		if c == nil {
			c = props.NewRichText()
		}
		r.cells[i] = c
	}
	return r
}

// TextRow is a shorthand for a row of unstyled cells.
func TextRow(cells ...string) *TableRow {
	rts := make([]*props.RichText, len(cells))
	for i, c := range cells {
		rts[i] = props.NewRichText(props.NewText(c))
	}
	return NewTableRow(rts...)
}

// Width returns the number of cells.
func (b *TableRow) Width() int {
	return len(b.cells)
}

// Cells returns a copy of the cells.
func (b *TableRow) Cells() []*props.RichText {
	out := make([]*props.RichText, len(b.cells))
	copy(out, b.cells)
	return out
}

func (*TableRow) Type() Type { return TypeTableRow }
func (*TableRow) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *TableRow) MarshalJSON() ([]byte, error) {
	cells := make([][]props.Text, len(b.cells))
	for i, c := range b.cells {
		cells[i] = c.Texts()
	}
	return marshalBlock(b.Type(), payload{"cells": cells})
}

// Table is a simple table. It is created with at least one row.
type Table struct {
	width           int
	rows            []*TableRow
	HasColumnHeader bool
	HasRowHeader    bool
}

// NewTable returns a table of the given width. At least one row is required
// and every row must have exactly width cells; all offending rows are
// reported together.
func NewTable(width int, rows ...*TableRow) (*Table, error) {
	if width < 1 {
		return nil, props.Arityf("Table", "width must be at least 1, got %d", width)
	}

	var result *multierror.Error
	kept := make([]*TableRow, 0, len(rows))
	for i, r := range rows {
		if r == nil {
			continue
		}
		if r.Width() != width {
			result = multierror.Append(result,
				props.Arityf("Table", "row %d has %d cells, want %d", i, r.Width(), width))
			continue
		}
		kept = append(kept, r)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(kept) == 0 {
		return nil, props.Arityf("Table", "must have at least 1 row")
	}

	return &Table{width: width, rows: kept}, nil
}

// Width returns the number of columns.
func (b *Table) Width() int {
	return b.width
}

// Rows returns a copy of the rows.
func (b *Table) Rows() []*TableRow {
	out := make([]*TableRow, len(b.rows))
	copy(out, b.rows)
	return out
}

// AppendRow adds a row with exactly Width cells.
func (b *Table) AppendRow(r *TableRow) error {
	if r == nil || r.Width() != b.width {
		got := 0
		if r != nil {
			got = r.Width()
		}
		return props.Arityf("Table.AppendRow", "row has %d cells, want %d", got, b.width)
	}
	b.rows = append(b.rows, r)
	return nil
}

func (*Table) Type() Type { return TypeTable }
func (*Table) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Table) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{
		"table_width":       b.width,
		"has_column_header": b.HasColumnHeader,
		"has_row_header":    b.HasRowHeader,
		"children":          b.rows,
	})
}
