package block

import (
	"encoding/json"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Children is an ordered list of blocks nested under a parent.
type Children struct {
	blocks []Block
}

// NewChildren returns a list holding blocks. Nil blocks are skipped.
func NewChildren(blocks ...Block) *Children {
	c := &Children{blocks: []Block{}}
	c.Extend(blocks...)
	return c
}

// Append adds b to the end.
func (c *Children) Append(b Block) {
	if b == nil {
		return
	}
	c.blocks = append(c.blocks, b)
}

// Extend adds blocks to the end in order.
func (c *Children) Extend(blocks ...Block) {
	for _, b := range blocks {
		c.Append(b)
	}
}

// Insert places b before position i. i may equal Len.
func (c *Children) Insert(i int, b Block) error {
	if i < 0 || i > len(c.blocks) {
		return props.OutOfRange("Children.Insert", i, len(c.blocks))
	}
	if b == nil {
		return props.Invalidf("Children.Insert", "block cannot be nil")
	}
	c.blocks = append(c.blocks, nil)
	copy(c.blocks[i+1:], c.blocks[i:])
	c.blocks[i] = b
	return nil
}

// Pop removes and returns the block at position i.
func (c *Children) Pop(i int) (Block, error) {
	if i < 0 || i >= len(c.blocks) {
		return nil, props.OutOfRange("Children.Pop", i, len(c.blocks))
	}
	b := c.blocks[i]
	c.blocks = append(c.blocks[:i:i], c.blocks[i+1:]...)
	return b, nil
}

// Len returns the number of blocks.
func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return len(c.blocks)
}

// Blocks returns a copy of the list.
func (c *Children) Blocks() []Block {
	if c == nil {
		return []Block{}
	}
	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// MarshalJSON implements json.Marshaler. The output is {"children": [...]},
// which is also the request body for appending children.
func (c *Children) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Block{"children": c.Blocks()})
}

// BulletedList groups list items into children.
func BulletedList(items ...*BulletedListItem) *Children {
	c := NewChildren()
	for _, item := range items {
		if item != nil {
			c.Append(item)
		}
	}
	return c
}

// NumberedList groups list items into children.
func NumberedList(items ...*NumberedListItem) *Children {
	c := NewChildren()
	for _, item := range items {
		if item != nil {
			c.Append(item)
		}
	}
	return c
}

// ToDoList groups to-do items into children.
func ToDoList(items ...*ToDo) *Children {
	c := NewChildren()
	for _, item := range items {
		if item != nil {
			c.Append(item)
		}
	}
	return c
}
