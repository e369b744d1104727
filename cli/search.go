package cli

import (
	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/mheijink/pennywise/finance"
)

type SearchCmd struct {
	Category string           `help:"Match transactions in this category (case-insensitive)." short:"c"`
	Text     string           `help:"Match transactions whose description contains this text." short:"t"`
	From     *finance.Date    `help:"Only match transactions on or after this date (YYYY-MM-DD)."`
	To       *finance.Date    `help:"Only match transactions on or before this date (YYYY-MM-DD)."`
	Min      *decimal.Decimal `help:"Only match transactions with at least this amount."`
	Max      *decimal.Decimal `help:"Only match transactions with at most this amount."`
	Income   bool             `help:"Only match income." xor:"kind"`
	Expense  bool             `help:"Only match expenses." xor:"kind"`
}

func (cmd *SearchCmd) criteria() finance.Criteria {
	criteria := finance.Criteria{
		Category:    cmd.Category,
		Description: cmd.Text,
		From:        cmd.From,
		To:          cmd.To,
		MinAmount:   cmd.Min,
		MaxAmount:   cmd.Max,
	}

	if cmd.Income {
		kind := finance.Income
		criteria.Kind = &kind
	}
	if cmd.Expense {
		kind := finance.Expense
		criteria.Kind = &kind
	}

	return criteria
}

func (cmd *SearchCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	matches := s.manager.Search(cmd.criteria())
	if len(matches) == 0 {
		printInfof(ctx.Stdout, "no matching transactions")
		return nil
	}

	renderTransactions(ctx, s, matches)
	printInfof(ctx.Stdout, "%d of %d transaction(s) matched", len(matches), s.manager.Store().Len())

	return nil
}
