package cli

import (
	"github.com/alecthomas/kong"

	"github.com/mheijink/pennywise/finance"
	"github.com/mheijink/pennywise/output"
)

type ListCmd struct {
	Category string `help:"Only show transactions in this category." short:"c"`
}

func (cmd *ListCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	transactions := s.manager.Store().All()
	if cmd.Category != "" {
		transactions = s.manager.Search(finance.Criteria{Category: cmd.Category})
	}

	if len(transactions) == 0 {
		printInfof(ctx.Stdout, "no transactions recorded")
		return nil
	}

	renderTransactions(ctx, s, transactions)
	return nil
}

// renderTransactions writes a transaction table, shared with search.
func renderTransactions(ctx *kong.Context, s *session, transactions []*finance.Transaction) {
	styles := output.NewStyles(ctx.Stdout)

	table := output.NewTable(
		output.Column{Title: "ID"},
		output.Column{Title: "DATE"},
		output.Column{Title: "AMOUNT", AlignRight: true},
		output.Column{Title: "CATEGORY"},
		output.Column{Title: "DESCRIPTION"},
	)
	if width := terminalWidth(); width > 0 {
		table.WithMaxWidth(width)
	}

	for _, txn := range transactions {
		amount := s.money(txn.Signed())
		if txn.IsExpense() {
			amount = styles.Expense(amount)
		} else {
			amount = styles.Income(amount)
		}

		// The description column can be truncated, so it stays unstyled.
		description := txn.Description()
		if txn.IsRecurring() {
			if description != "" {
				description += " "
			}
			description += "[" + txn.Interval().String() + "]"
		}

		table.AddRow(
			styles.Dim(shortID(txn.ID())),
			txn.Date().String(),
			amount,
			styles.Category(txn.Category()),
			description,
		)
	}

	if err := table.Render(ctx.Stdout); err != nil {
		printError(ctx.Stderr, err.Error())
	}
}
