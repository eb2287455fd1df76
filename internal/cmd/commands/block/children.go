package block

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	"github.com/hashicorp-forge/notion-extensions/pkg/notion"
)

type ChildrenCommand struct {
	*base.Command

	flagConfig   string
	flagPageSize int
	flagCursor   string
	flagAll      bool
}

func (c *ChildrenCommand) Synopsis() string {
	return "List the children of a block or page"
}

func (c *ChildrenCommand) Help() string {
	return `Usage: notion-ext block children [options] <block or page id or URL>

  Lists child blocks. Without -all only one page of results is printed and
  the cursor for the next page is reported.` +
		c.Flags().Help()
}

func (c *ChildrenCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("block children", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the config file",
	)
	f.IntVar(
		&c.flagPageSize, "page-size", notion.MaxPageSize,
		"Number of blocks per request. Values above 100 are clamped.",
	)
	f.StringVar(
		&c.flagCursor, "cursor", "", "Cursor returned by a previous call",
	)
	f.BoolVar(
		&c.flagAll, "all", false, "Follow cursors until every child is printed",
	)

	return f
}

func (c *ChildrenCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("a block or page id or URL is required")
		return 1
	}

	client, err := c.NotionClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	opts := notion.ListOptions{PageSize: c.flagPageSize, StartCursor: c.flagCursor}
	for {
		resp, err := client.ListBlockChildren(ctx, flags.Arg(0), opts)
		if err != nil {
			ui.Error(fmt.Sprintf("error listing children: %v", err))
			return 1
		}
		if code := c.PrintResponse(resp); code != 0 {
			return code
		}

		next := resp.NextCursor()
		if next == "" {
			return 0
		}
		if !c.flagAll {
			ui.Info(fmt.Sprintf("More results available, continue with -cursor %s", next))
			return 0
		}
		opts.StartCursor = next
	}
}
