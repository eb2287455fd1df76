package block

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

func TestNewTable(t *testing.T) {
	t.Run("matching rows", func(t *testing.T) {
		table, err := NewTable(2, TextRow("h1", "h2"), TextRow("a", "b"))
		require.NoError(t, err)
		table.HasColumnHeader = true
		assert.Equal(t, 2, table.Width())
		assert.Len(t, table.Rows(), 2)

		out := marshal(t, table)
		assert.Contains(t, out, `"table_width":2`)
		assert.Contains(t, out, `"has_column_header":true`)
		assert.Contains(t, out, `"has_row_header":false`)
		assert.Contains(t, out, `"type":"table_row"`)
	})

	t.Run("row too wide", func(t *testing.T) {
		_, err := NewTable(2, TextRow("a", "b", "c"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, props.ErrArity))
		assert.Contains(t, err.Error(), "row 0 has 3 cells, want 2")
	})

	t.Run("every bad row is reported", func(t *testing.T) {
		_, err := NewTable(3, TextRow("a"), TextRow("a", "b", "c"), TextRow("a", "b"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 0 has 1 cells, want 3")
		assert.Contains(t, err.Error(), "row 2 has 2 cells, want 3")
		assert.NotContains(t, err.Error(), "row 1")
	})

	t.Run("no rows", func(t *testing.T) {
		for _, rows := range [][]*TableRow{nil, {nil}} {
			_, err := NewTable(3, rows...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, props.ErrArity))
			assert.Contains(t, err.Error(), "must have at least 1 row")
		}
	})

	t.Run("zero width", func(t *testing.T) {
		_, err := NewTable(0)
		assert.True(t, errors.Is(err, props.ErrArity))
	})

	t.Run("append row", func(t *testing.T) {
		table, err := NewTable(1, TextRow("a"))
		require.NoError(t, err)
		assert.True(t, errors.Is(table.AppendRow(TextRow("a", "b")), props.ErrArity))
		assert.Error(t, table.AppendRow(nil))
		require.NoError(t, table.AppendRow(TextRow("b")))
		assert.Len(t, table.Rows(), 2)
	})
}

func TestTableRow(t *testing.T) {
	row := NewTableRow(props.NewRichText(props.NewText("x")), nil)
	assert.Equal(t, 2, row.Width())
	assert.Equal(t, 0, row.Cells()[1].Len())
	assert.JSONEq(t,
		`{"object":"block","type":"table_row","table_row":{"cells":[[{"type":"text","text":{"content":"x","link":null},"annotations":{"bold":false,"italic":false,"strikethrough":false,"underline":false,"code":false,"color":"default"}}],[]]}}`,
		marshal(t, row))
}
