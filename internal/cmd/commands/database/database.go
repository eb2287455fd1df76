package database

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Read and query databases"
}

func (c *Command) Help() string {
	return `Usage: notion-ext database <subcommand> [options] [args]

  This command groups subcommands for working with Notion databases.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
