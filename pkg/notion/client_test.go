package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is a request captured by the mock server.
type recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// newMockServer returns a server that records each request and replies with
// status and body.
func newMockServer(t *testing.T, status int, body string) (*httptest.Server, *[]recorded) {
	t.Helper()
	var reqs []recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		reqs = append(reqs, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   data,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &reqs
}

func newTestClient(t *testing.T, baseURL string, logger hclog.Logger) *Client {
	t.Helper()
	c, err := NewClient(&Config{
		APIKey:  "secret_test",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Logger:  logger,
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_Key(t *testing.T) {
	t.Run("explicit key", func(t *testing.T) {
		c, err := NewClient(&Config{APIKey: "secret_explicit"})
		require.NoError(t, err)
		assert.Equal(t, "secret_explicit", c.key)
	})

	t.Run("key from default environment variable", func(t *testing.T) {
		t.Setenv(DefaultKeyEnv, "secret_env")
		c, err := NewClient(nil)
		require.NoError(t, err)
		assert.Equal(t, "secret_env", c.key)
	})

	t.Run("key from named environment variable", func(t *testing.T) {
		t.Setenv("MY_NOTION_TOKEN", "secret_named")
		c, err := NewClient(&Config{KeyEnv: "MY_NOTION_TOKEN"})
		require.NoError(t, err)
		assert.Equal(t, "secret_named", c.key)
	})

	t.Run("no key anywhere", func(t *testing.T) {
		t.Setenv("MISSING_NOTION_TOKEN", "")
		_, err := NewClient(&Config{KeyEnv: "MISSING_NOTION_TOKEN"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingKey))
		assert.Contains(t, err.Error(), "MISSING_NOTION_TOKEN")
	})
}

func TestNewClient_Defaults(t *testing.T) {
	cfg := &Config{APIKey: "k"}
	c, err := NewClient(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.config.BaseURL)
	assert.Equal(t, DefaultKeyEnv, c.config.KeyEnv)
	assert.Equal(t, 30*time.Second, c.client.Timeout)
	require.NotNil(t, c.config.TLSVerify)
	assert.True(t, *c.config.TLSVerify)
}

func TestNewClient_LeavesConfigUntouched(t *testing.T) {
	cfg := &Config{APIKey: "k"}
	_, err := NewClient(cfg)
	require.NoError(t, err)
	assert.Equal(t, &Config{APIKey: "k"}, cfg)
}

func TestClient_Headers(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK, `{"object":"page","id":"p1"}`)
	c := newTestClient(t, server.URL, nil)

	resp, err := c.GetPage(context.Background(), "4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "p1", resp.ID())

	require.Len(t, *reqs, 1)
	h := (*reqs)[0].Header
	assert.Equal(t, "Bearer secret_test", h.Get("Authorization"))
	assert.Equal(t, APIVersion, h.Get("Notion-Version"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "application/json", h.Get("Accept"))
}

func TestClient_NonSuccessIsReturned(t *testing.T) {
	server, _ := newMockServer(t, http.StatusNotFound,
		`{"object":"error","status":404,"code":"object_not_found","message":"Could not find page"}`)
	c := newTestClient(t, server.URL, nil)

	resp, err := c.GetPage(context.Background(), "4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.Equal(t, "object_not_found", resp.Body["code"])

	var apiErr *APIError
	require.True(t, errors.As(resp.Err(), &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "object_not_found", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "Could not find page")
}

func TestClient_UndecodableBody(t *testing.T) {
	server, _ := newMockServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)
	c := newTestClient(t, server.URL, nil)

	resp, err := c.GetPage(context.Background(), "4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, resp.Err().Error(), "bad gateway")
}

func TestClient_TransportError(t *testing.T) {
	server, _ := newMockServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, server.URL, nil)
	server.Close()

	resp, err := c.GetPage(context.Background(), "4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_ContextCanceled(t *testing.T) {
	server, reqs := newMockServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetPage(ctx, "4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, *reqs)
}

func TestClient_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Debug})

	server, _ := newMockServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, server.URL, logger)

	_, err := c.GetBlock(context.Background(), "b1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "notion: received response")
	assert.Contains(t, buf.String(), "status=200")
}

func TestResponse_Helpers(t *testing.T) {
	raw := []byte(`{"results":[{"id":"a"},{"id":"b"},"junk"],"has_more":true,"next_cursor":"c2"}`)
	resp := &Response{StatusCode: 200, Raw: raw}
	require.NoError(t, json.Unmarshal(raw, &resp.Body))

	assert.NoError(t, resp.Err())
	assert.Equal(t, "c2", resp.NextCursor())
	results := resp.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[1]["id"])

	var decoded struct {
		HasMore bool `json:"has_more"`
	}
	require.NoError(t, resp.Decode(&decoded))
	assert.True(t, decoded.HasMore)

	last := &Response{StatusCode: 200, Body: map[string]interface{}{"has_more": false, "next_cursor": nil}}
	assert.Equal(t, "", last.NextCursor())
	assert.Error(t, last.Decode(&decoded))
}
