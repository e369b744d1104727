package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BudgetTracker holds monthly spending limits per expense category.
// Limits are strictly positive; setting a limit for an existing category
// overwrites it. Categories without a limit are unbounded until one is
// set explicitly.
type BudgetTracker struct {
	order  []string
	limits map[string]decimal.Decimal
}

// Status is the result of checking one category's spending against its
// budget. When no limit is set for the category, NoLimit is true and only
// Category and Spent are populated.
type Status struct {
	Category    string
	Limit       decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	Utilization decimal.Decimal
	OverBudget  bool
	NoLimit     bool
}

// NewBudgetTracker creates a tracker with no limits set.
func NewBudgetTracker() *BudgetTracker {
	return &BudgetTracker{
		limits: make(map[string]decimal.Decimal),
	}
}

// SetBudget sets the monthly limit for a category, overwriting any
// existing limit. The limit must be strictly positive and the category
// non-empty after trimming.
func (b *BudgetTracker) SetBudget(category string, limit decimal.Decimal) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return &EmptyCategoryError{}
	}
	if limit.Sign() <= 0 {
		return &InvalidLimitError{Category: category, Limit: limit}
	}

	if _, ok := b.limits[category]; !ok {
		b.order = append(b.order, category)
	}
	b.limits[category] = limit

	return nil
}

// Budget returns the limit for a category and whether one is set.
func (b *BudgetTracker) Budget(category string) (decimal.Decimal, bool) {
	limit, ok := b.limits[category]
	return limit, ok
}

// Categories returns the budgeted categories in the order their limits
// were first set.
func (b *BudgetTracker) Categories() []string {
	categories := make([]string, len(b.order))
	copy(categories, b.order)
	return categories
}

// Check compares a category's actual spending against its limit. An
// unbudgeted category yields a Status flagged NoLimit rather than an
// error.
func (b *BudgetTracker) Check(category string, m *Manager) Status {
	spent := m.CategoryExpense(category)

	limit, ok := b.Budget(category)
	if !ok {
		return Status{
			Category: category,
			Spent:    spent,
			NoLimit:  true,
		}
	}

	return Status{
		Category:    category,
		Limit:       limit,
		Spent:       spent,
		Remaining:   limit.Sub(spent),
		Utilization: spent.Div(limit),
		OverBudget:  spent.GreaterThan(limit),
	}
}

// CheckAll returns one status per budgeted category, in the order budgets
// were set.
func (b *BudgetTracker) CheckAll(m *Manager) []Status {
	statuses := make([]Status, 0, len(b.order))
	for _, category := range b.order {
		statuses = append(statuses, b.Check(category, m))
	}
	return statuses
}
