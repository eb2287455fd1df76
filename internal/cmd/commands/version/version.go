package version

import (
	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	"github.com/hashicorp-forge/notion-extensions/internal/version"
	"github.com/hashicorp-forge/notion-extensions/pkg/notion"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: notion-ext version

  Prints the CLI version and the Notion API version it sends.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("notion-ext " + version.Version)
	c.UI.Output("Notion API " + notion.APIVersion)
	return 0
}
