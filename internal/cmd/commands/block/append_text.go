package block

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	"github.com/hashicorp-forge/notion-extensions/pkg/block"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

type AppendTextCommand struct {
	*base.Command

	flagConfig string
	flagType   string
	flagColor  string
	flagBold   bool
	flagCode   bool
}

func (c *AppendTextCommand) Synopsis() string {
	return "Append text blocks to a block or page"
}

func (c *AppendTextCommand) Help() string {
	return `Usage: notion-ext block append-text [options] <block or page id or URL> <text> [text ...]

  Appends one text block per argument. The block type may be written in any
  case, e.g. "Heading1", "heading-1" or "to_do".` +
		c.Flags().Help()
}

func (c *AppendTextCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("block append-text", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the config file",
	)
	f.StringVar(
		&c.flagType, "type", string(block.TypeParagraph), "Block type",
	)
	f.StringVar(
		&c.flagColor, "color", "", "Text color, e.g. red or blue_background",
	)
	f.BoolVar(
		&c.flagBold, "bold", false, "Render the text bold",
	)
	f.BoolVar(
		&c.flagCode, "code", false, "Render the text as inline code",
	)

	return f
}

func (c *AppendTextCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() < 2 {
		ui.Error("a block or page id and at least one text argument are required")
		return 1
	}

	children, err := c.children(flags.Args()[1:])
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	client, err := c.NotionClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.AppendBlockChildren(context.Background(), flags.Arg(0), children)
	if err != nil {
		ui.Error(fmt.Sprintf("error appending blocks: %v", err))
		return 1
	}
	return c.PrintResponse(resp)
}

func (c *AppendTextCommand) children(texts []string) (*block.Children, error) {
	typ, err := block.ParseType(c.flagType)
	if err != nil {
		return nil, err
	}

	var opts []props.TextOption
	if c.flagBold {
		opts = append(opts, props.Bold())
	}
	if c.flagCode {
		opts = append(opts, props.Code())
	}
	if c.flagColor != "" {
		color := props.Color(c.flagColor)
		if err := color.Validate(); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", c.flagColor, err)
		}
		opts = append(opts, props.WithColor(color))
	}

	children := block.NewChildren()
	for _, text := range texts {
		b, err := block.NewTextBlock(typ, props.NewText(text, opts...))
		if err != nil {
			return nil, err
		}
		children.Append(b)
	}
	return children, nil
}
