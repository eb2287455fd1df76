package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/notion-extensions/pkg/notion"
)

// DefaultLogLevel is used when the config file does not set log_level.
const DefaultLogLevel = "info"

// Config is the CLI configuration file.
type Config struct {
	// Notion configures the API client.
	Notion *Notion `hcl:"notion,block"`

	// LogLevel is one of trace, debug, info, warn or error.
	LogLevel string `hcl:"log_level,optional"`
}

// Notion is the "notion" block of the configuration file.
type Notion struct {
	// KeyEnv names the environment variable holding the integration token.
	// The token itself is never read from the file.
	KeyEnv string `hcl:"key_env,optional"`

	BaseURL   string `hcl:"base_url,optional"`
	Timeout   string `hcl:"timeout,optional"` // e.g., "30s"
	TLSVerify *bool  `hcl:"tls_verify,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the HCL file at path from fs. An empty path returns Default().
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error checking configuration file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("configuration file not found: %s", path)
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := notion.DefaultConfig()

	if c.Notion == nil {
		c.Notion = &Notion{}
	}
	if c.Notion.KeyEnv == "" {
		c.Notion.KeyEnv = defaults.KeyEnv
	}
	if c.Notion.BaseURL == "" {
		c.Notion.BaseURL = defaults.BaseURL
	}
	if c.Notion.Timeout == "" {
		c.Notion.Timeout = defaults.Timeout.String()
	}
	if c.Notion.TLSVerify == nil {
		c.Notion.TLSVerify = defaults.TLSVerify
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error")),
		validation.Field(&c.Notion, validation.Required),
	)
}

// Validate checks the notion block.
func (n Notion) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.KeyEnv, validation.Required),
		validation.Field(&n.Timeout, validation.By(positiveDuration)),
	)
}

func positiveDuration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration such as \"30s\"")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// NotionConfig converts the notion block into a client configuration.
func (c *Config) NotionConfig(logger hclog.Logger) (*notion.Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(c.Notion.Timeout)
	if err != nil {
		return nil, fmt.Errorf("error parsing notion timeout: %w", err)
	}

	tlsVerify := true
	if c.Notion.TLSVerify != nil {
		tlsVerify = *c.Notion.TLSVerify
	}
	cfg := &notion.Config{
		KeyEnv:    c.Notion.KeyEnv,
		BaseURL:   c.Notion.BaseURL,
		TLSVerify: &tlsVerify,
		Timeout:   timeout,
		Logger:    logger,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid notion block: %w", err)
	}
	return cfg, nil
}
