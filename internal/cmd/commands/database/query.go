package database

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	"github.com/hashicorp-forge/notion-extensions/pkg/notion"
)

type QueryCommand struct {
	*base.Command

	flagConfig   string
	flagPageSize int
	flagCursor   string
	flagFilter   string
	flagSorts    string
}

func (c *QueryCommand) Synopsis() string {
	return "Query the rows of a database"
}

func (c *QueryCommand) Help() string {
	return `Usage: notion-ext database query [options] <database id or URL>

  Queries a database. -filter and -sorts take JSON in the shape the API
  expects, for example:

      -filter '{"property":"Done","checkbox":{"equals":false}}'
      -sorts '[{"property":"Name","direction":"ascending"}]'` +
		c.Flags().Help()
}

func (c *QueryCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("database query", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the config file",
	)
	f.IntVar(
		&c.flagPageSize, "page-size", notion.MaxPageSize,
		"Number of rows to return. Values above 100 are clamped.",
	)
	f.StringVar(
		&c.flagCursor, "cursor", "", "Cursor returned by a previous call",
	)
	f.StringVar(
		&c.flagFilter, "filter", "", "Filter object as JSON",
	)
	f.StringVar(
		&c.flagSorts, "sorts", "", "Sorts array as JSON",
	)

	return f
}

func (c *QueryCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("a database id or URL is required")
		return 1
	}

	opts := notion.QueryOptions{
		ListOptions: notion.ListOptions{PageSize: c.flagPageSize, StartCursor: c.flagCursor},
	}
	if c.flagFilter != "" {
		if err := json.Unmarshal([]byte(c.flagFilter), &opts.Filter); err != nil {
			ui.Error(fmt.Sprintf("error parsing filter: %v", err))
			return 1
		}
	}
	if c.flagSorts != "" {
		if err := json.Unmarshal([]byte(c.flagSorts), &opts.Sorts); err != nil {
			ui.Error(fmt.Sprintf("error parsing sorts: %v", err))
			return 1
		}
	}

	client, err := c.NotionClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.QueryDatabase(context.Background(), flags.Arg(0), opts)
	if err != nil {
		ui.Error(fmt.Sprintf("error querying database: %v", err))
		return 1
	}
	code := c.PrintResponse(resp)
	if next := resp.NextCursor(); code == 0 && next != "" {
		ui.Info(fmt.Sprintf("More results available, continue with -cursor %s", next))
	}
	return code
}
