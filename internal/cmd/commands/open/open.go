package open

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
)

// openURL is replaced in tests.
var openURL = browser.OpenURL

type Command struct {
	*base.Command

	flagPrint bool
}

func (c *Command) Synopsis() string {
	return "Open a page in the browser"
}

func (c *Command) Help() string {
	return `Usage: notion-ext open [options] <page id or URL>

  Opens a page in the default browser.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))

	f.BoolVar(
		&c.flagPrint, "print", false, "Print the URL instead of opening it",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("a page id or URL is required")
		return 1
	}

	id, err := notionid.NewID(flags.Arg(0), notionid.KindPage)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing page id: %v", err))
		return 1
	}
	url := notionid.PageURL(id)

	if c.flagPrint {
		ui.Output(url)
		return 0
	}

	logger.Info("opening page", "url", url)
	if err := openURL(url); err != nil {
		ui.Error(fmt.Sprintf("error opening browser: %v", err))
		ui.Output(url)
		return 1
	}
	return 0
}
