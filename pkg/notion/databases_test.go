package notion

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/notion-extensions/pkg/database"
	"github.com/hashicorp-forge/notion-extensions/pkg/page"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

const testDatabaseID = "0a1b2c3d4e5f40718293a4b5c6d7e8f9"

func testSchema(t *testing.T) *database.Schema {
	t.Helper()
	s := database.NewSchema()
	require.NoError(t, s.Set("Name", database.Title()))
	require.NoError(t, s.Set("Done", database.Checkbox()))
	return s
}

func TestGetDatabase_URL(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK, `{"object":"database"}`)
	c := newTestClient(t, server.URL, nil)

	_, err := c.GetDatabase(context.Background(),
		"https://www.notion.so/acme/"+testDatabaseID+"?v=ffff0000ffff0000ffff0000ffff0000")
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodGet, (*reqs)[0].Method)
	assert.Equal(t, "/databases/"+testDatabaseID, (*reqs)[0].Path)
}

func TestCreateDatabase(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK, `{"object":"database","id":"db"}`)
	c := newTestClient(t, server.URL, nil)

	parent, err := page.NewParent(page.ParentPage, testPageID)
	require.NoError(t, err)

	resp, err := c.CreateDatabase(context.Background(), CreateDatabaseRequest{
		Parent:     parent,
		Title:      props.NewRichText(props.NewText("Tasks")),
		Properties: testSchema(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "db", resp.ID())

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodPost, (*reqs)[0].Method)
	assert.Equal(t, "/databases", (*reqs)[0].Path)
	assert.JSONEq(t, `{
		"parent": {"type": "page_id", "page_id": "`+testPageID+`"},
		"title": [{
			"type": "text",
			"text": {"content": "Tasks", "link": null},
			"annotations": {
				"bold": false, "italic": false, "strikethrough": false,
				"underline": false, "code": false, "color": "default"
			}
		}],
		"properties": {
			"Name": {"title": {}},
			"Done": {"checkbox": {}}
		},
		"is_inline": false
	}`, string((*reqs)[0].Body))
}

func TestCreateDatabase_Invalid(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, server.URL, nil)

	noTitle := database.NewSchema()
	require.NoError(t, noTitle.Set("Done", database.Checkbox()))

	tests := []struct {
		name     string
		req      CreateDatabaseRequest
		errorMsg string
	}{
		{
			name:     "missing parent",
			req:      CreateDatabaseRequest{Properties: testSchema(t)},
			errorMsg: "Parent: is required",
		},
		{
			name:     "workspace parent",
			req:      CreateDatabaseRequest{Parent: page.WorkspaceParent(), Properties: testSchema(t)},
			errorMsg: `must be a page, got "workspace"`,
		},
		{
			name:     "missing schema",
			req:      CreateDatabaseRequest{Parent: page.WorkspaceParent()},
			errorMsg: "Properties: cannot be blank",
		},
		{
			name:     "schema without title",
			req:      CreateDatabaseRequest{Parent: page.WorkspaceParent(), Properties: noTitle},
			errorMsg: "must have exactly 1 title property, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateDatabase(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
	assert.Empty(t, *reqs)
}

func TestQueryDatabase(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK,
		`{"object":"list","results":[{"id":"row"}],"has_more":true,"next_cursor":"next"}`)
	c := newTestClient(t, server.URL, nil)

	resp, err := c.QueryDatabase(context.Background(), testDatabaseID, QueryOptions{
		ListOptions: ListOptions{PageSize: 500, StartCursor: "cur"},
		Filter: map[string]interface{}{
			"property": "Done",
			"checkbox": map[string]interface{}{"equals": true},
		},
		Sorts: []map[string]interface{}{
			{"property": "Name", "direction": "ascending"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "next", resp.NextCursor())
	require.Len(t, resp.Results(), 1)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodPost, (*reqs)[0].Method)
	assert.Equal(t, "/databases/"+testDatabaseID+"/query", (*reqs)[0].Path)
	assert.JSONEq(t, `{
		"page_size": 100,
		"start_cursor": "cur",
		"filter": {"property": "Done", "checkbox": {"equals": true}},
		"sorts": [{"property": "Name", "direction": "ascending"}]
	}`, string((*reqs)[0].Body))
}

func TestQueryDatabase_InvalidPageSize(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, server.URL, nil)

	_, err := c.QueryDatabase(context.Background(), testDatabaseID, QueryOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	assert.Empty(t, *reqs)
}

func TestUpdateDatabase_NotImplemented(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, server.URL, nil)

	resp, err := c.UpdateDatabase(context.Background(), testDatabaseID, testSchema(t))
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Empty(t, *reqs)
}
