package block

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command

	flagConfig string
}

func (c *DeleteCommand) Synopsis() string {
	return "Archive a block"
}

func (c *DeleteCommand) Help() string {
	return `Usage: notion-ext block delete [options] <block id or URL>` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("block delete", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the config file",
	)

	return f
}

func (c *DeleteCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("a block id or URL is required")
		return 1
	}

	client, err := c.NotionClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.DeleteBlock(context.Background(), flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error deleting block: %v", err))
		return 1
	}
	return c.PrintResponse(resp)
}
