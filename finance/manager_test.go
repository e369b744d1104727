package finance

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestManagerTotals(t *testing.T) {
	t.Run("empty store yields zeros", func(t *testing.T) {
		m := NewManager(NewStore())
		assertDecimal(t, "0", m.TotalIncome())
		assertDecimal(t, "0", m.TotalExpense())
		assertDecimal(t, "0", m.Balance())
		assertDecimal(t, "0", m.SavingsRate())
	})

	t.Run("balance equals income minus expenses", func(t *testing.T) {
		s := NewStore()
		s.Add(mustTransaction(t, Income, "1000", "Salary"))
		s.Add(mustTransaction(t, Expense, "200", "Food"))
		s.Add(mustTransaction(t, Expense, "300.50", "Rent"))
		m := NewManager(s)

		assertDecimal(t, "1000", m.TotalIncome())
		assertDecimal(t, "500.50", m.TotalExpense())
		assertDecimal(t, "499.50", m.Balance())
		assert.True(t, m.Balance().Equal(m.TotalIncome().Sub(m.TotalExpense())))
	})

	t.Run("nil store behaves as empty", func(t *testing.T) {
		m := NewManager(nil)
		assertDecimal(t, "0", m.Balance())
		assert.Equal(t, 0, m.Store().Len())
	})
}

func TestManagerSavingsRate(t *testing.T) {
	t.Run("fraction of income retained", func(t *testing.T) {
		s := NewStore()
		s.Add(mustTransaction(t, Income, "1000", "Salary"))
		s.Add(mustTransaction(t, Expense, "200", "Food"))
		m := NewManager(s)

		assertDecimal(t, "0.8", m.SavingsRate())
	})

	t.Run("zero when there is no income", func(t *testing.T) {
		s := NewStore()
		s.Add(mustTransaction(t, Expense, "200", "Food"))
		m := NewManager(s)

		assertDecimal(t, "0", m.SavingsRate())
	})
}

func TestManagerCategoryTotals(t *testing.T) {
	s := NewStore()
	s.Add(mustTransaction(t, Income, "100", "Salary"))
	s.Add(mustTransaction(t, Expense, "40", "Food"))
	s.Add(mustTransaction(t, Expense, "10", "Food"))
	m := NewManager(s)

	totals := m.CategoryTotals()
	assert.Equal(t, 2, len(totals))
	assertDecimal(t, "100", totals["Salary"])
	assertDecimal(t, "-50", totals["Food"])

	_, ok := totals["Rent"]
	assert.False(t, ok, "untouched categories must be absent")
}

func TestManagerCategoryExpense(t *testing.T) {
	s := NewStore()
	s.Add(mustTransaction(t, Expense, "40", "Food"))
	s.Add(mustTransaction(t, Expense, "10", "food"))
	s.Add(mustTransaction(t, Income, "5", "Food")) // refunds don't count as spend
	s.Add(mustTransaction(t, Expense, "99", "Rent"))
	m := NewManager(s)

	assertDecimal(t, "50", m.CategoryExpense("FOOD"))
	assertDecimal(t, "0", m.CategoryExpense("Travel"))
}

func newSearchFixture(t *testing.T) *Manager {
	t.Helper()
	s := NewStore()
	s.Add(mustTransaction(t, Income, "1000", "Salary",
		WithDescription("January pay"), WithDate(NewDate(2024, time.January, 31))))
	s.Add(mustTransaction(t, Expense, "40", "Food",
		WithDescription("weekly groceries"), WithDate(NewDate(2024, time.February, 2))))
	s.Add(mustTransaction(t, Expense, "12", "food",
		WithDescription("lunch out"), WithDate(NewDate(2024, time.February, 5))))
	s.Add(mustTransaction(t, Expense, "800", "Rent",
		WithDate(NewDate(2024, time.February, 1))))
	s.Add(mustTransaction(t, Expense, "25", "Travel",
		WithDescription("train to Groningen"), WithDate(NewDate(2024, time.March, 10))))
	s.Add(mustTransaction(t, Income, "50", "Food",
		WithDescription("lunch reimbursed"), WithDate(NewDate(2024, time.March, 12))))
	return NewManager(s)
}

func TestManagerSearch(t *testing.T) {
	m := newSearchFixture(t)

	t.Run("category is case-insensitive and ordered", func(t *testing.T) {
		got := m.Search(Criteria{Category: "Food"})
		assert.Equal(t, 3, len(got))
		assert.Equal(t, "weekly groceries", got[0].Description())
		assert.Equal(t, "lunch out", got[1].Description())
		assert.Equal(t, "lunch reimbursed", got[2].Description())
	})

	t.Run("description substring is case-insensitive", func(t *testing.T) {
		got := m.Search(Criteria{Description: "LUNCH"})
		assert.Equal(t, 2, len(got))
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		from := NewDate(2024, time.February, 1)
		to := NewDate(2024, time.February, 5)
		got := m.Search(Criteria{From: &from, To: &to})
		assert.Equal(t, 3, len(got))
	})

	t.Run("amount range is inclusive", func(t *testing.T) {
		min := decimal.NewFromInt(25)
		max := decimal.NewFromInt(50)
		got := m.Search(Criteria{MinAmount: &min, MaxAmount: &max})
		assert.Equal(t, 3, len(got)) // 40, 25 and 50
	})

	t.Run("kind restriction", func(t *testing.T) {
		kind := Income
		got := m.Search(Criteria{Kind: &kind})
		assert.Equal(t, 2, len(got))
	})

	t.Run("criteria are AND-combined", func(t *testing.T) {
		kind := Expense
		got := m.Search(Criteria{Category: "food", Description: "lunch", Kind: &kind})
		assert.Equal(t, 1, len(got))
		assert.Equal(t, "lunch out", got[0].Description())
	})

	t.Run("empty criteria match everything", func(t *testing.T) {
		assert.Equal(t, 6, len(m.Search(Criteria{})))
	})

	t.Run("no matches is a valid empty result", func(t *testing.T) {
		assert.Zero(t, m.Search(Criteria{Category: "Utilities"}))
	})
}
