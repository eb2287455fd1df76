package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
)

// Client issues requests against the Notion API. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	config *Config
	key    string
	client *http.Client
	logger hclog.Logger
}

// Compile-time checks
var (
	_ PageService     = (*Client)(nil)
	_ BlockService    = (*Client)(nil)
	_ DatabaseService = (*Client)(nil)
)

// NewClient creates a client. It fails with ErrMissingKey when neither
// cfg.APIKey nor the cfg.KeyEnv environment variable is set. Defaults are
// applied to a copy of cfg.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	copied := *cfg
	cfg = &copied
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid notion client config: %w", err)
	}

	key, err := cfg.ResolveKey()
	if err != nil {
		return nil, err
	}

	return &Client{
		config: cfg,
		key:    key,
		client: cfg.NewHTTPClient(),
		logger: cfg.Logger.Named("notion"),
	}, nil
}

// headers returns the headers sent with every request.
func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.key)
	h.Set("Notion-Version", APIVersion)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return h
}

// doRequest sends one request and returns the response regardless of its
// status code.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.headers()

	c.logger.Debug("sending request", "method", method, "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("received response", "method", method, "path", path, "status", resp.StatusCode)

	result := &Response{StatusCode: resp.StatusCode, Raw: raw}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &result.Body); err != nil {
			return result, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
		}
	}

	return result, nil
}

// resolveID normalizes a user supplied identifier for op.
func resolveID(op, raw string, kind notionid.Kind) (string, error) {
	id, err := notionid.Parse(raw, kind)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, ErrInvalidRequest, err)
	}
	return url.PathEscape(id), nil
}

// pageSize validates n and clamps it to MaxPageSize.
func (c *Client) pageSize(op string, n int) (int, error) {
	if n <= 0 {
		return 0, invalidRequest(op, "page size must be positive, got %d", n)
	}
	if n > MaxPageSize {
		c.logger.Warn("page size exceeds maximum, clamping",
			"op", op, "page_size", n, "max", MaxPageSize)
		return MaxPageSize, nil
	}
	return n, nil
}
