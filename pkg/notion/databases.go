package notion

import (
	"context"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/notion-extensions/pkg/database"
	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
	"github.com/hashicorp-forge/notion-extensions/pkg/page"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// ===================================================================
// Databases
// ===================================================================

// CreateDatabaseRequest is the body of a create database call.
type CreateDatabaseRequest struct {
	// Parent must be a page.
	Parent     page.Parent
	Title      *props.RichText
	Properties *database.Schema
	Icon       *props.Icon
	Cover      *props.FileObject
	IsInline   bool
}

// Validate implements validation.Validatable.
func (r CreateDatabaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Parent, validation.By(requireParent), validation.By(requirePageParent)),
		validation.Field(&r.Properties, validation.Required),
	)
}

func requirePageParent(value interface{}) error {
	if p, _ := value.(page.Parent); p.Kind() != page.ParentPage {
		return fmt.Errorf("must be a page, got %q", p.Kind())
	}
	return nil
}

func (r CreateDatabaseRequest) body() map[string]interface{} {
	body := map[string]interface{}{
		"parent":     r.Parent,
		"title":      r.Title.Texts(),
		"properties": r.Properties,
		"is_inline":  r.IsInline,
	}
	if r.Icon != nil && !r.Icon.IsZero() {
		body["icon"] = *r.Icon
	}
	if r.Cover != nil {
		body["cover"] = *r.Cover
	}
	return body
}

// QueryOptions filters, sorts and pages a database query.
type QueryOptions struct {
	ListOptions

	// Filter is passed through as the "filter" object.
	Filter map[string]interface{}

	// Sorts is passed through as the "sorts" array.
	Sorts []map[string]interface{}
}

// GetDatabase retrieves a database. id may be a database URL.
func (c *Client) GetDatabase(ctx context.Context, id string) (*Response, error) {
	dbID, err := resolveID("GetDatabase", id, notionid.KindDatabase)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, http.MethodGet, "/databases/"+dbID, nil, nil)
}

// CreateDatabase creates a database as a child of a page.
func (c *Client) CreateDatabase(ctx context.Context, req CreateDatabaseRequest) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("CreateDatabase: %w: %v", ErrInvalidRequest, err)
	}
	return c.doRequest(ctx, http.MethodPost, "/databases", nil, req.body())
}

// QueryDatabase returns one page of the rows of a database.
func (c *Client) QueryDatabase(ctx context.Context, id string, opts QueryOptions) (*Response, error) {
	dbID, err := resolveID("QueryDatabase", id, notionid.KindDatabase)
	if err != nil {
		return nil, err
	}
	size, err := c.pageSize("QueryDatabase", opts.PageSize)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"page_size": size}
	if opts.StartCursor != "" {
		body["start_cursor"] = opts.StartCursor
	}
	if len(opts.Filter) > 0 {
		body["filter"] = opts.Filter
	}
	if len(opts.Sorts) > 0 {
		body["sorts"] = opts.Sorts
	}

	return c.doRequest(ctx, http.MethodPost, "/databases/"+dbID+"/query", nil, body)
}

// UpdateDatabase is not supported and always returns ErrNotImplemented.
// TODO: send the schema diff once database.Schema can express removed and
// renamed properties.
func (c *Client) UpdateDatabase(ctx context.Context, id string, schema *database.Schema) (*Response, error) {
	return nil, fmt.Errorf("UpdateDatabase: %w", ErrNotImplemented)
}
