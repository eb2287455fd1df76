package block

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Read, append and delete blocks"
}

func (c *Command) Help() string {
	return `Usage: notion-ext block <subcommand> [options] [args]

  This command groups subcommands for working with Notion blocks. Block ids
  may be given as a URL with the block id after "#".`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
