package cli

import (
	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/mheijink/pennywise/finance"
)

type AddCmd struct {
	Amount   decimal.Decimal `help:"Amount as a positive number." arg:""`
	Category string          `help:"Category the transaction belongs to." arg:""`
	Expense  bool            `help:"Record an expense instead of income." short:"e"`
	Note     string          `help:"Free-form description." short:"n"`
	On       *finance.Date   `help:"Transaction date (YYYY-MM-DD, defaults to today)."`
	Every    string          `help:"Make the transaction recurring (daily, weekly, monthly or yearly)."`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	kind := finance.Income
	if cmd.Expense {
		kind = finance.Expense
	}

	var opts []finance.Option
	if cmd.Note != "" {
		opts = append(opts, finance.WithDescription(cmd.Note))
	}
	if cmd.On != nil {
		opts = append(opts, finance.WithDate(*cmd.On))
	}

	var txn *finance.Transaction
	if cmd.Every != "" {
		interval, err := finance.ParseInterval(cmd.Every)
		if err != nil {
			return err
		}
		txn, err = finance.NewRecurring(kind, cmd.Amount, cmd.Category, interval, opts...)
		if err != nil {
			return err
		}
	} else {
		txn, err = finance.NewTransaction(kind, cmd.Amount, cmd.Category, opts...)
		if err != nil {
			return err
		}
	}

	id := s.manager.Store().Add(txn)
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Recorded "+txn.Label())
	printInfof(ctx.Stdout, "id %s", shortID(id))

	return nil
}
