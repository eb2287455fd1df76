package open

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
)

const pageURL = "https://www.notion.so/4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d"

func newCommand(t *testing.T, opener func(string) error) (*Command, *cli.MockUi) {
	t.Helper()
	orig := openURL
	openURL = opener
	t.Cleanup(func() { openURL = orig })

	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{Log: hclog.NewNullLogger(), UI: ui}}, ui
}

func TestOpen(t *testing.T) {
	var opened []string
	c, _ := newCommand(t, func(url string) error {
		opened = append(opened, url)
		return nil
	})

	code := c.Run([]string{"https://www.notion.so/acme/Roadmap-4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d"})
	require.Equal(t, 0, code)
	assert.Equal(t, []string{pageURL}, opened)
}

func TestOpen_Print(t *testing.T) {
	c, ui := newCommand(t, func(string) error {
		t.Fatal("browser should not be opened")
		return nil
	})

	require.Equal(t, 0, c.Run([]string{"-print", "4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d"}))
	assert.Equal(t, pageURL+"\n", ui.OutputWriter.String())
}

func TestOpen_Errors(t *testing.T) {
	t.Run("browser failure", func(t *testing.T) {
		c, ui := newCommand(t, func(string) error { return errors.New("no display") })

		assert.Equal(t, 1, c.Run([]string{"4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d"}))
		assert.Contains(t, ui.ErrorWriter.String(), "no display")
		assert.Contains(t, ui.OutputWriter.String(), pageURL)
	})

	t.Run("not a page id", func(t *testing.T) {
		c, ui := newCommand(t, func(string) error { return nil })

		assert.Equal(t, 1, c.Run([]string{"https://www.notion.so/acme/Roadmap"}))
		assert.Contains(t, ui.ErrorWriter.String(), "error parsing page id")
	})

	t.Run("no argument", func(t *testing.T) {
		c, ui := newCommand(t, func(string) error { return nil })

		assert.Equal(t, 1, c.Run(nil))
		assert.Contains(t, ui.ErrorWriter.String(), "a page id or URL is required")
	})
}
