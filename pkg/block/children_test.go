package block

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// serializedTypes decodes the serialized children and returns their types.
func serializedTypes(t *testing.T, c *Children) []string {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded struct {
		Children []struct {
			Type string `json:"type"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	out := []string{}
	for _, b := range decoded.Children {
		out = append(out, b.Type)
	}
	return out
}

func types(c *Children) []string {
	out := []string{}
	for _, b := range c.Blocks() {
		out = append(out, b.Type().String())
	}
	return out
}

func TestChildren_StaysSynchronized(t *testing.T) {
	c := NewChildren(NewParagraph(), nil)
	assert.Equal(t, []string{"paragraph"}, serializedTypes(t, c))

	c.Append(NewDivider())
	c.Extend(NewQuote(), NewToggle())
	assert.Equal(t, []string{"paragraph", "divider", "quote", "toggle"}, types(c))
	assert.Equal(t, types(c), serializedTypes(t, c))

	require.NoError(t, c.Insert(1, NewBreadcrumb()))
	assert.Equal(t, []string{"paragraph", "breadcrumb", "divider", "quote", "toggle"}, types(c))
	assert.Equal(t, types(c), serializedTypes(t, c))

	popped, err := c.Pop(0)
	require.NoError(t, err)
	assert.Equal(t, TypeParagraph, popped.Type())
	assert.Equal(t, types(c), serializedTypes(t, c))

	_, err = c.Pop(10)
	assert.True(t, errors.Is(err, props.ErrIndexOutOfRange))
	assert.True(t, errors.Is(c.Insert(-1, NewDivider()), props.ErrIndexOutOfRange))
	assert.True(t, errors.Is(c.Insert(0, nil), props.ErrInvalidValue))
	assert.Equal(t, 4, c.Len())
}

func TestChildren_Empty(t *testing.T) {
	data, err := json.Marshal(NewChildren())
	require.NoError(t, err)
	assert.JSONEq(t, `{"children":[]}`, string(data))

	var nilChildren *Children
	assert.Equal(t, 0, nilChildren.Len())
}

func TestListHelpers(t *testing.T) {
	bullets := BulletedList(
		NewBulletedListItem(props.NewText("one")),
		nil,
		NewBulletedListItem(props.NewText("two")),
	)
	assert.Equal(t, []string{"bulleted_list_item", "bulleted_list_item"}, serializedTypes(t, bullets))

	numbers := NumberedList(NewNumberedListItem(props.NewText("one")))
	assert.Equal(t, []string{"numbered_list_item"}, serializedTypes(t, numbers))

	done := NewToDo(props.NewText("done"))
	done.Checked = true
	todos := ToDoList(NewToDo(props.NewText("open")), done)
	assert.Equal(t, []string{"to_do", "to_do"}, serializedTypes(t, todos))

	data, err := json.Marshal(todos)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"checked":true`)
	assert.Contains(t, string(data), `"checked":false`)
}
