package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/notion-extensions/internal/cmd/base"
	blockcmd "github.com/hashicorp-forge/notion-extensions/internal/cmd/commands/block"
	databasecmd "github.com/hashicorp-forge/notion-extensions/internal/cmd/commands/database"
	idcmd "github.com/hashicorp-forge/notion-extensions/internal/cmd/commands/id"
	opencmd "github.com/hashicorp-forge/notion-extensions/internal/cmd/commands/open"
	pagecmd "github.com/hashicorp-forge/notion-extensions/internal/cmd/commands/page"
	versioncmd "github.com/hashicorp-forge/notion-extensions/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	Commands = NewCommands(base.NewCommand(log, ui))
}

// NewCommands returns the command factories, all sharing b.
func NewCommands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"page": func() (cli.Command, error) {
			return &pagecmd.Command{Command: b}, nil
		},
		"page get": func() (cli.Command, error) {
			return &pagecmd.GetCommand{Command: b}, nil
		},
		"page create": func() (cli.Command, error) {
			return &pagecmd.CreateCommand{Command: b}, nil
		},
		"page archive": func() (cli.Command, error) {
			return &pagecmd.ArchiveCommand{Command: b}, nil
		},
		"block": func() (cli.Command, error) {
			return &blockcmd.Command{Command: b}, nil
		},
		"block get": func() (cli.Command, error) {
			return &blockcmd.GetCommand{Command: b}, nil
		},
		"block children": func() (cli.Command, error) {
			return &blockcmd.ChildrenCommand{Command: b}, nil
		},
		"block delete": func() (cli.Command, error) {
			return &blockcmd.DeleteCommand{Command: b}, nil
		},
		"block append-text": func() (cli.Command, error) {
			return &blockcmd.AppendTextCommand{Command: b}, nil
		},
		"database": func() (cli.Command, error) {
			return &databasecmd.Command{Command: b}, nil
		},
		"database get": func() (cli.Command, error) {
			return &databasecmd.GetCommand{Command: b}, nil
		},
		"database query": func() (cli.Command, error) {
			return &databasecmd.QueryCommand{Command: b}, nil
		},
		"id": func() (cli.Command, error) {
			return &idcmd.Command{Command: b}, nil
		},
		"open": func() (cli.Command, error) {
			return &opencmd.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
