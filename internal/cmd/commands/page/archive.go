package page

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
)

type ArchiveCommand struct {
	*base.Command

	flagConfig string
}

func (c *ArchiveCommand) Synopsis() string {
	return "Archive a page"
}

func (c *ArchiveCommand) Help() string {
	return `Usage: notion-ext page archive [options] <page id or URL>

  Moves a page to the trash. Notion has no hard delete; archived pages can
  be restored from the UI.` +
		c.Flags().Help()
}

func (c *ArchiveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("page archive", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the config file",
	)

	return f
}

func (c *ArchiveCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("a page id or URL is required")
		return 1
	}

	client, err := c.NotionClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.DeletePage(context.Background(), flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error archiving page: %v", err))
		return 1
	}
	return c.PrintResponse(resp)
}
