package props

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contents decodes the serialized spans and returns their contents.
func contents(t *testing.T, r *RichText) []string {
	t.Helper()
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string][]struct {
		Text struct {
			Content string `json:"content"`
		} `json:"text"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	spans, ok := decoded[r.Key()]
	require.True(t, ok, "serialized key should be %q", r.Key())

	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.Text.Content)
	}
	return out
}

func texts(r *RichText) []string {
	out := []string{}
	for _, t := range r.Texts() {
		out = append(out, t.Content)
	}
	return out
}

func TestRichText_StaysSynchronized(t *testing.T) {
	r := NewRichText(NewText("a"))
	assert.Equal(t, []string{"a"}, contents(t, r))

	r.Append(NewText("b"))
	assert.Equal(t, []string{"a", "b"}, texts(r))
	assert.Equal(t, texts(r), contents(t, r))

	r.Extend(NewText("c"), NewRichText(NewText("d"), NewText("e")))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, texts(r))
	assert.Equal(t, texts(r), contents(t, r))

	require.NoError(t, r.Insert(0, NewText("start")))
	require.NoError(t, r.Insert(r.Len(), NewText("end")))
	assert.Equal(t, []string{"start", "a", "b", "c", "d", "e", "end"}, texts(r))
	assert.Equal(t, texts(r), contents(t, r))

	popped, err := r.Pop(2)
	require.NoError(t, err)
	assert.Equal(t, "b", popped.Content)
	assert.Equal(t, []string{"start", "a", "c", "d", "e", "end"}, texts(r))
	assert.Equal(t, texts(r), contents(t, r))

	popped, err = r.Pop(r.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, "end", popped.Content)
	assert.Equal(t, texts(r), contents(t, r))
	assert.Equal(t, "startacde", r.PlainText())
}

func TestRichText_Bounds(t *testing.T) {
	r := NewRichText(NewText("only"))

	err := r.Insert(5, NewText("x"))
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = r.Pop(1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = r.Pop(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	assert.Equal(t, 1, r.Len())
}

func TestRichText_Key(t *testing.T) {
	r := NewRichText(NewText("cap"))
	assert.Equal(t, DefaultRichTextKey, r.Key())

	require.NoError(t, r.SetKey("caption"))
	assert.Equal(t, "caption", r.Key())
	assert.Equal(t, []string{"cap"}, contents(t, r))

	assert.Error(t, r.SetKey(""))
	assert.Equal(t, "caption", r.Key())

	k := NewKeyedRichText("title", NewText("T"))
	assert.Equal(t, "title", k.Key())
}

func TestRichText_TextsIsCopy(t *testing.T) {
	r := NewRichText(NewText("a"))
	spans := r.Texts()
	spans[0].Content = "changed"
	assert.Equal(t, "a", r.Texts()[0].Content)
}

func TestRichText_Empty(t *testing.T) {
	data, err := json.Marshal(NewRichText())
	require.NoError(t, err)
	assert.JSONEq(t, `{"rich_text":[]}`, string(data))

	var nilRT *RichText
	assert.Equal(t, 0, nilRT.Len())
	assert.Equal(t, "", nilRT.PlainText())
	assert.Empty(t, nilRT.Texts())
}
