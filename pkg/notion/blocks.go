package notion

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hashicorp-forge/notion-extensions/pkg/block"
	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
)

// ===================================================================
// Blocks
// ===================================================================

// ListOptions selects one page of a list endpoint.
type ListOptions struct {
	// PageSize must be positive. Values above MaxPageSize are clamped.
	PageSize int

	// StartCursor is the next_cursor of the previous page.
	StartCursor string
}

// DefaultListOptions returns options for the first page at the maximum size.
func DefaultListOptions() ListOptions {
	return ListOptions{PageSize: MaxPageSize}
}

// GetBlock retrieves a block. id may be a block URL.
func (c *Client) GetBlock(ctx context.Context, id string) (*Response, error) {
	blockID, err := resolveID("GetBlock", id, notionid.KindBlock)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, http.MethodGet, "/blocks/"+blockID, nil, nil)
}

// UpdateBlock replaces the content of a block with b. The block type must
// match the existing block.
func (c *Client) UpdateBlock(ctx context.Context, id string, b block.Block) (*Response, error) {
	blockID, err := resolveID("UpdateBlock", id, notionid.KindBlock)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, invalidRequest("UpdateBlock", "block cannot be nil")
	}
	return c.doRequest(ctx, http.MethodPatch, "/blocks/"+blockID, nil, b)
}

// DeleteBlock archives a block.
func (c *Client) DeleteBlock(ctx context.Context, id string) (*Response, error) {
	blockID, err := resolveID("DeleteBlock", id, notionid.KindBlock)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, http.MethodDelete, "/blocks/"+blockID, nil, nil)
}

// ListBlockChildren returns one page of the children of a block or page.
// id may be a page URL, or a block URL with the block id after "#".
func (c *Client) ListBlockChildren(ctx context.Context, id string, opts ListOptions) (*Response, error) {
	blockID, err := resolveID("ListBlockChildren", id, notionid.KindBlock)
	if err != nil {
		return nil, err
	}
	size, err := c.pageSize("ListBlockChildren", opts.PageSize)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("page_size", strconv.Itoa(size))
	if opts.StartCursor != "" {
		query.Set("start_cursor", opts.StartCursor)
	}

	return c.doRequest(ctx, http.MethodGet, "/blocks/"+blockID+"/children", query, nil)
}

// AppendBlockChildren adds children after the last child of a block or page.
func (c *Client) AppendBlockChildren(ctx context.Context, id string, children *block.Children) (*Response, error) {
	blockID, err := resolveID("AppendBlockChildren", id, notionid.KindBlock)
	if err != nil {
		return nil, err
	}
	if children.Len() == 0 {
		return nil, invalidRequest("AppendBlockChildren", "children cannot be empty")
	}
	return c.doRequest(ctx, http.MethodPatch, "/blocks/"+blockID+"/children", nil, children)
}
