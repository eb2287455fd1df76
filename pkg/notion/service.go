package notion

import (
	"context"

	"github.com/hashicorp-forge/notion-extensions/pkg/block"
	"github.com/hashicorp-forge/notion-extensions/pkg/database"
)

// PageService is the page endpoint group.
type PageService interface {
	GetPage(ctx context.Context, id string) (*Response, error)
	CreatePage(ctx context.Context, req CreatePageRequest) (*Response, error)
	UpdatePage(ctx context.Context, id string, req UpdatePageRequest) (*Response, error)
	DeletePage(ctx context.Context, id string) (*Response, error)
}

// BlockService is the block endpoint group.
type BlockService interface {
	GetBlock(ctx context.Context, id string) (*Response, error)
	UpdateBlock(ctx context.Context, id string, b block.Block) (*Response, error)
	DeleteBlock(ctx context.Context, id string) (*Response, error)
	ListBlockChildren(ctx context.Context, id string, opts ListOptions) (*Response, error)
	AppendBlockChildren(ctx context.Context, id string, children *block.Children) (*Response, error)
}

// DatabaseService is the database endpoint group.
type DatabaseService interface {
	GetDatabase(ctx context.Context, id string) (*Response, error)
	CreateDatabase(ctx context.Context, req CreateDatabaseRequest) (*Response, error)
	QueryDatabase(ctx context.Context, id string, opts QueryOptions) (*Response, error)
	UpdateDatabase(ctx context.Context, id string, schema *database.Schema) (*Response, error)
}
