package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Manager derives financial aggregates from a single shared store. It
// holds no state of its own; every method is a pure fold over the current
// transactions and returns a neutral value on an empty store.
type Manager struct {
	store *Store
}

// NewManager creates a manager over the given store. A nil store is
// replaced with an empty one.
func NewManager(store *Store) *Manager {
	if store == nil {
		store = NewStore()
	}
	return &Manager{store: store}
}

// Store returns the underlying transaction store.
func (m *Manager) Store() *Store {
	return m.store
}

// TotalIncome returns the summed magnitude of all income transactions.
func (m *Manager) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, t := range m.store.All() {
		if t.IsIncome() {
			total = total.Add(t.amount)
		}
	}
	return total
}

// TotalExpense returns the summed magnitude of all expense transactions.
func (m *Manager) TotalExpense() decimal.Decimal {
	total := decimal.Zero
	for _, t := range m.store.All() {
		if t.IsExpense() {
			total = total.Add(t.amount)
		}
	}
	return total
}

// Balance returns total income minus total expenses.
func (m *Manager) Balance() decimal.Decimal {
	return m.TotalIncome().Sub(m.TotalExpense())
}

// SavingsRate returns the fraction of income retained, balance divided by
// total income. It is exactly zero when there is no income; it never
// divides by zero.
func (m *Manager) SavingsRate() decimal.Decimal {
	income := m.TotalIncome()
	if income.Sign() <= 0 {
		return decimal.Zero
	}
	return m.Balance().Div(income)
}

// CategoryTotals returns the net signed sum per category: income counts
// positive, expenses negative. Categories without transactions are absent
// from the map.
func (m *Manager) CategoryTotals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range m.store.All() {
		totals[t.category] = totals[t.category].Add(t.Signed())
	}
	return totals
}

// CategoryExpense returns the summed expense magnitude for a category,
// matched case-insensitively. This is the "spent" figure budget checks
// compare against their limits.
func (m *Manager) CategoryExpense(category string) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range m.store.All() {
		if t.IsExpense() && strings.EqualFold(t.category, category) {
			spent = spent.Add(t.amount)
		}
	}
	return spent
}

// Search returns the transactions matching all supplied criteria, in
// insertion order. An empty result is a valid outcome, not an error.
func (m *Manager) Search(criteria Criteria) []*Transaction {
	return m.store.Filter(criteria.Matches)
}
