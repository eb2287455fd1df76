package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/notion-extensions/pkg/block"
	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
	"github.com/hashicorp-forge/notion-extensions/pkg/page"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// ===================================================================
// Pages
// ===================================================================

// CreatePageRequest is the body of a create page call.
type CreatePageRequest struct {
	Parent     page.Parent
	Properties *page.Properties
	Children   *block.Children
	Icon       *props.Icon
	Cover      *props.FileObject
}

// Validate implements validation.Validatable.
func (r CreatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Parent, validation.By(requireParent)),
		validation.Field(&r.Properties, validation.Required),
	)
}

func requireParent(value interface{}) error {
	if p, _ := value.(page.Parent); p.IsZero() {
		return errors.New("is required")
	}
	return nil
}

func (r CreatePageRequest) body() map[string]interface{} {
	body := map[string]interface{}{
		"parent":     r.Parent,
		"properties": r.Properties,
	}
	if r.Children.Len() > 0 {
		body["children"] = r.Children.Blocks()
	}
	if r.Icon != nil && !r.Icon.IsZero() {
		body["icon"] = *r.Icon
	}
	if r.Cover != nil {
		body["cover"] = *r.Cover
	}
	return body
}

// UpdatePageRequest holds the fields to change on a page. Nil fields are left
// unchanged.
type UpdatePageRequest struct {
	Properties *page.Properties
	Icon       *props.Icon
	Cover      *props.FileObject
	Archived   *bool
}

func (r UpdatePageRequest) body() map[string]interface{} {
	body := map[string]interface{}{}
	if r.Properties.Len() > 0 {
		body["properties"] = r.Properties
	}
	if r.Icon != nil && !r.Icon.IsZero() {
		body["icon"] = *r.Icon
	}
	if r.Cover != nil {
		body["cover"] = *r.Cover
	}
	if r.Archived != nil {
		body["archived"] = *r.Archived
	}
	return body
}

// GetPage retrieves a page. id may be a page URL.
func (c *Client) GetPage(ctx context.Context, id string) (*Response, error) {
	pageID, err := resolveID("GetPage", id, notionid.KindPage)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, http.MethodGet, "/pages/"+pageID, nil, nil)
}

// CreatePage creates a page under a page, database or the workspace.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("CreatePage: %w: %v", ErrInvalidRequest, err)
	}
	return c.doRequest(ctx, http.MethodPost, "/pages", nil, req.body())
}

// UpdatePage changes the properties, icon, cover or archived state of a page.
func (c *Client) UpdatePage(ctx context.Context, id string, req UpdatePageRequest) (*Response, error) {
	pageID, err := resolveID("UpdatePage", id, notionid.KindPage)
	if err != nil {
		return nil, err
	}
	body := req.body()
	if len(body) == 0 {
		return nil, invalidRequest("UpdatePage", "no fields to update")
	}
	return c.doRequest(ctx, http.MethodPatch, "/pages/"+pageID, nil, body)
}

// DeletePage archives a page. The API has no hard delete.
func (c *Client) DeletePage(ctx context.Context, id string) (*Response, error) {
	archived := true
	return c.UpdatePage(ctx, id, UpdatePageRequest{Archived: &archived})
}
