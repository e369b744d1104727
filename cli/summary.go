package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/mheijink/pennywise/output"
)

type SummaryCmd struct{}

func (cmd *SummaryCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	return renderSummary(ctx.Stdout, s)
}

var percent = decimal.NewFromInt(100)

// renderSummary writes the financial summary, shared with watch.
func renderSummary(w io.Writer, s *session) error {
	styles := output.NewStyles(w)

	lines := []struct {
		label string
		value string
	}{
		{"Income", styles.Income(s.money(s.manager.TotalIncome()))},
		{"Expenses", styles.Expense(s.money(s.manager.TotalExpense().Neg()))},
		{"Balance", styles.Keyword(s.money(s.manager.Balance()))},
		{"Savings rate", s.manager.SavingsRate().Mul(percent).StringFixed(1) + "%"},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-14s%s\n", line.label, line.value); err != nil {
			return err
		}
	}

	byCategory := s.manager.CategoryTotals()
	if len(byCategory) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	categories := output.NewTable(
		output.Column{Title: "CATEGORY"},
		output.Column{Title: "NET", AlignRight: true},
	)
	for _, category := range slices.Sorted(maps.Keys(byCategory)) {
		total := byCategory[category]
		cell := s.money(total)
		if total.Sign() < 0 {
			cell = styles.Expense(cell)
		} else {
			cell = styles.Income(cell)
		}
		categories.AddRow(styles.Category(category), cell)
	}

	return categories.Render(w)
}
