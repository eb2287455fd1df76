package notion

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
)

const (
	// APIVersion is sent as the Notion-Version header. The builders in this
	// module produce bodies for this version.
	APIVersion = "2022-06-28"

	// DefaultBaseURL is the public API endpoint.
	DefaultBaseURL = "https://api.notion.com/v1"

	// DefaultKeyEnv is the environment variable read when no key is given.
	DefaultKeyEnv = "NOTION_KEY"

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100
)

// Config contains configuration for the client.
type Config struct {
	// APIKey is the integration token. Takes precedence over KeyEnv.
	APIKey string `json:"-"`

	// KeyEnv names the environment variable holding the integration token.
	// Default: NOTION_KEY
	KeyEnv string `json:"keyEnv,omitempty"`

	// BaseURL is the API endpoint, overridable for testing.
	// Default: https://api.notion.com/v1
	BaseURL string `json:"baseUrl"`

	// TLSVerify controls TLS certificate verification.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for each request.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives request logs and warnings. Default: null logger.
	Logger hclog.Logger `json:"-"`

	// HTTPClient replaces the client built from TLSVerify and Timeout.
	HTTPClient *http.Client `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		KeyEnv:    DefaultKeyEnv,
		BaseURL:   DefaultBaseURL,
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.KeyEnv == "" {
		c.KeyEnv = defaults.KeyEnv
	}
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL, validation.By(httpScheme)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func httpScheme(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	return nil
}

// ResolveKey returns APIKey, or the value of the KeyEnv environment variable.
func (c *Config) ResolveKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	name := c.KeyEnv
	if name == "" {
		name = DefaultKeyEnv
	}
	if key := os.Getenv(name); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("%w: no key given and environment variable %s is not set", ErrMissingKey, name)
}

// NewHTTPClient creates a configured HTTP client
func (c *Config) NewHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
