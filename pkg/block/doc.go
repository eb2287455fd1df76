// Package block builds Notion block objects.
//
// Block is a closed set: every block kind the API supports has its own type
// in this package, and no other package can add one. Each block serializes to
//
//	{"object": "block", "type": "<type>", "<type>": {...payload}}
//
// # Text blocks
//
// Paragraph, the headings, list items, ToDo, Toggle, Quote and Callout hold a
// RichText bound to the "rich_text" key, a color, and optional children:
//
//	p := block.NewParagraph(props.NewText("Hello "), props.NewText("world", props.Bold()))
//	p.Children().Append(block.NewQuote(props.NewText("nested")))
//
// # Structural blocks
//
// Column, ColumnList and Table validate their shape on construction. A
// column needs at least one block, a column list at least two columns, and
// every table row must have exactly table-width cells.
package block
