package id

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
)

type Command struct {
	*base.Command

	flagKind    string
	flagCompact bool
}

func (c *Command) Synopsis() string {
	return "Extract an object id from a Notion URL"
}

func (c *Command) Help() string {
	return `Usage: notion-ext id [options] <URL or id>

  Prints the id the API expects for a URL copied from the Notion UI.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("id", flag.ContinueOnError))

	f.StringVar(
		&c.flagKind, "kind", string(notionid.KindPage),
		"One of page, database or block.",
	)
	f.BoolVar(
		&c.flagCompact, "compact", false, "Print the id without dashes",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("a URL or id is required")
		return 1
	}

	kind := notionid.Kind(c.flagKind)
	raw, err := notionid.Parse(flags.Arg(0), kind)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing id: %v", err))
		return 1
	}

	// Ids that are not UUIDs are printed as extracted.
	id, err := notionid.ParseID(raw)
	if err != nil {
		c.Log.Debug("id is not a UUID", "id", raw, "error", err)
		ui.Output(raw)
		return 0
	}

	if c.flagCompact {
		ui.Output(id.Compact())
	} else {
		ui.Output(id.String())
	}
	return 0
}
