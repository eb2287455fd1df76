package base

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/notion-extensions/internal/config"
	"github.com/hashicorp-forge/notion-extensions/pkg/notion"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Command holds what every subcommand needs.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is the filesystem config files are read from. Nil means the OS
	// filesystem.
	FS afero.Fs
}

// NewCommand returns a Command writing logs to log and output to ui.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{Log: log, UI: ui, FS: afero.NewOsFs()}
}

// LoadConfig reads the config file at path and applies its log level.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	fs := c.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg, err := config.Load(fs, path)
	if err != nil {
		return nil, err
	}
	c.Log.SetLevel(cfg.Level())
	props.SetLogger(c.Log.Named("props"))

	return cfg, nil
}

// NotionClient builds an API client from the config file at path.
func (c *Command) NotionClient(path string) (*notion.Client, error) {
	cfg, err := c.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	nc, err := cfg.NotionConfig(c.Log)
	if err != nil {
		return nil, err
	}

	client, err := notion.NewClient(nc)
	if err != nil {
		return nil, fmt.Errorf("error creating notion client: %w", err)
	}
	return client, nil
}

// PrintResponse writes the indented response body and returns the exit code:
// 0 for 2xx responses, 1 otherwise.
func (c *Command) PrintResponse(resp *notion.Response) int {
	var buf bytes.Buffer
	if err := json.Indent(&buf, resp.Raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(resp.Raw)
	}
	if buf.Len() > 0 {
		c.UI.Output(buf.String())
	}

	if err := resp.Err(); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
