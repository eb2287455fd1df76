package block

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
)

type GetCommand struct {
	*base.Command

	flagConfig string
}

func (c *GetCommand) Synopsis() string {
	return "Print a block"
}

func (c *GetCommand) Help() string {
	return `Usage: notion-ext block get [options] <block id or URL>

  Retrieves a block and prints the response body.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("block get", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the config file",
	)

	return f
}

func (c *GetCommand) Run(args []string) int {
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

	resp, err := client.GetBlock(context.Background(), flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error getting block: %v", err))
		return 1
	}
	return c.PrintResponse(resp)
}
