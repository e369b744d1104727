package cli

import (
	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/mheijink/pennywise/config"
	"github.com/mheijink/pennywise/journal"
)

// DumpCmd prints the decoded journal file, useful for debugging a
// journal that hydrates with warnings.
type DumpCmd struct{}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}

	path := globals.File
	if path == "" {
		path = cfg.Journal
	}

	f, err := journal.Load(path)
	if err != nil {
		return err
	}

	repr.New(ctx.Stdout, repr.Indent("  ")).Println(f)
	return nil
}
