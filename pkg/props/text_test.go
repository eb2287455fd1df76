package props

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_MarshalJSON(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		data, err := json.Marshal(NewText("hello"))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "text",
			"text": {"content": "hello", "link": null},
			"annotations": {
				"bold": false, "italic": false, "strikethrough": false,
				"underline": false, "code": false, "color": "default"
			}
		}`, string(data))
	})

	t.Run("styled with link", func(t *testing.T) {
		text := NewText("docs",
			Bold(), Italic(), Strikethrough(), Underline(), Code(),
			WithColor(ColorBlueBackground),
			WithLink("https://example.com"),
		)
		data, err := json.Marshal(text)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "text",
			"text": {"content": "docs", "link": {"url": "https://example.com"}},
			"annotations": {
				"bold": true, "italic": true, "strikethrough": true,
				"underline": true, "code": true, "color": "blue_background"
			}
		}`, string(data))
	})

	t.Run("zero value uses default color", func(t *testing.T) {
		data, err := json.Marshal(Text{Content: "x"})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"color":"default"`)
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := json.Marshal(NewText("x", WithColor("teal")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidValue))
		assert.Contains(t, err.Error(), "must be a valid color")
	})
}

func TestPlainText_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(PlainText{Content: "Title"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":{"content":"Title","link":null}}`, string(data))
}

func TestColor(t *testing.T) {
	for _, c := range ValidColors() {
		assert.True(t, c.Valid(), c.String())
	}
	assert.True(t, Color("").Valid())
	assert.False(t, Color("teal").Valid())
	assert.Equal(t, ColorDefault, Color("").OrDefault())
	assert.Equal(t, ColorRed, ColorRed.OrDefault())
}
