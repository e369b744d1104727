package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/mheijink/pennywise/finance"
	"github.com/mheijink/pennywise/output"
)

type BudgetCmd struct {
	Set    BudgetSetCmd    `cmd:"" help:"Set a spending limit for a category."`
	Status BudgetStatusCmd `cmd:"" help:"Show spending against the configured limits."`
}

type BudgetSetCmd struct {
	Category string          `help:"Category to limit." arg:""`
	Limit    decimal.Decimal `help:"Spending limit as a positive number." arg:""`
}

func (cmd *BudgetSetCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	if err := s.budgets.SetBudget(cmd.Category, cmd.Limit); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Budget for %s set to %s", cmd.Category, s.money(cmd.Limit)))

	status := s.budgets.Check(cmd.Category, s.manager)
	if status.OverBudget {
		printWarning(ctx.Stdout, fmt.Sprintf("already over budget, %s spent", s.money(status.Spent)))
	}

	return nil
}

type BudgetStatusCmd struct{}

// Utilization levels at which a budget is flagged as nearing its limit.
var (
	warnUtilization  = decimal.RequireFromString("0.7")
	alarmUtilization = decimal.RequireFromString("0.9")
)

func (cmd *BudgetStatusCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	return renderBudgetStatus(ctx.Stdout, s)
}

// renderBudgetStatus writes the utilization report, shared with the
// interactive menu so it reflects the live session rather than a fresh
// read from disk.
func renderBudgetStatus(w io.Writer, s *session) error {
	statuses := s.budgets.CheckAll(s.manager)
	if len(statuses) == 0 {
		printInfof(w, "no budgets configured")
		return nil
	}

	styles := output.NewStyles(w)

	table := output.NewTable(
		output.Column{Title: "CATEGORY"},
		output.Column{Title: "LIMIT", AlignRight: true},
		output.Column{Title: "SPENT", AlignRight: true},
		output.Column{Title: "REMAINING", AlignRight: true},
		output.Column{Title: "USED", AlignRight: true},
	)

	over := 0
	for _, status := range statuses {
		table.AddRow(
			styles.Category(status.Category),
			s.money(status.Limit),
			renderSpent(styles, s, status),
			s.money(status.Remaining),
			status.Utilization.Mul(percent).StringFixed(0)+"%",
		)
		if status.OverBudget {
			over++
		}
	}

	if err := table.Render(w); err != nil {
		return err
	}
	if over > 0 {
		_, _ = fmt.Fprintln(w)
		printWarning(w, fmt.Sprintf("%d budget(s) exceeded", over))
	}

	return nil
}

func renderSpent(styles *output.Styles, s *session, status finance.Status) string {
	cell := s.money(status.Spent)
	switch {
	case status.OverBudget || status.Utilization.GreaterThanOrEqual(alarmUtilization):
		return styles.Expense(cell)
	case status.Utilization.GreaterThanOrEqual(warnUtilization):
		return styles.Warning(cell)
	default:
		return cell
	}
}
