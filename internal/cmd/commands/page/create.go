package page

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	"github.com/hashicorp-forge/notion-extensions/pkg/block"
	"github.com/hashicorp-forge/notion-extensions/pkg/notion"
	"github.com/hashicorp-forge/notion-extensions/pkg/page"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

type CreateCommand struct {
	*base.Command

	flagConfig        string
	flagParent        string
	flagParentType    string
	flagTitle         string
	flagTitleProperty string
	flagEmoji         string
	flagCover         string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a page"
}

func (c *CreateCommand) Help() string {
	return `Usage: notion-ext page create [options] [paragraph ...]

  Creates a page with the given title. Each remaining argument becomes a
  paragraph of the page body.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("page create", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the config file",
	)
	f.StringVar(
		&c.flagParent, "parent", "",
		"Parent page or database id or URL. Required unless -parent-type is workspace.",
	)
	f.StringVar(
		&c.flagParentType, "parent-type", string(page.ParentPage),
		"One of page, database or workspace.",
	)
	f.StringVar(
		&c.flagTitle, "title", "", "(Required) Page title",
	)
	f.StringVar(
		&c.flagTitleProperty, "title-property", page.TitleProperty,
		"Name of the title property. Database parents usually call it \"Name\".",
	)
	f.StringVar(
		&c.flagEmoji, "emoji", "", "Emoji icon",
	)
	f.StringVar(
		&c.flagCover, "cover", "", "Cover image URL",
	)

	return f
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagTitle == "" {
		ui.Error("title flag is required")
		return 1
	}

	req, err := c.request(flags.Args())
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	client, err := c.NotionClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.CreatePage(context.Background(), req)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating page: %v", err))
		return 1
	}
	return c.PrintResponse(resp)
}

func (c *CreateCommand) request(paragraphs []string) (notion.CreatePageRequest, error) {
	var req notion.CreatePageRequest

	kind := page.ParentKind(strings.ToLower(c.flagParentType))
	if kind == page.ParentWorkspace {
		req.Parent = page.WorkspaceParent()
	} else {
		if c.flagParent == "" {
			return req, fmt.Errorf("parent flag is required for %s parents", kind)
		}
		parent, err := page.NewParent(kind, c.flagParent)
		if err != nil {
			return req, fmt.Errorf("error parsing parent: %w", err)
		}
		req.Parent = parent
	}

	properties := page.NewProperties()
	if err := properties.Set(c.flagTitleProperty, page.NewTitle(c.flagTitle)); err != nil {
		return req, err
	}
	req.Properties = properties

	if len(paragraphs) > 0 {
		children := block.NewChildren()
		for _, p := range paragraphs {
			children.Append(block.NewParagraph(props.NewText(p)))
		}
		req.Children = children
	}

	if c.flagEmoji != "" {
		icon := props.EmojiIcon(c.flagEmoji)
		req.Icon = &icon
	}
	if c.flagCover != "" {
		cover := props.Cover(c.flagCover)
		req.Cover = &cover
	}

	return req, nil
}
