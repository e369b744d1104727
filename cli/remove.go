package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type RemoveCmd struct {
	ID  string `help:"Transaction id (full or unique prefix)." arg:""`
	Yes bool   `help:"Remove without confirmation." short:"y"`
}

func (cmd *RemoveCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	txn, err := resolveID(s.manager.Store(), cmd.ID)
	if err != nil {
		return err
	}

	if !cmd.Yes && isTerminal() {
		confirmed, err := promptYesNo(fmt.Sprintf("Remove %s?", txn.Label()))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "kept %s", txn.Label())
			return nil
		}
	}

	if !s.manager.Store().Remove(txn.ID()) {
		return fmt.Errorf("no transaction with id %q", txn.ID())
	}
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Removed "+txn.Label())

	return nil
}
