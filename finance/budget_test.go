package finance

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestSetBudget(t *testing.T) {
	t.Run("valid limit", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(200)))

		limit, ok := b.Budget("Food")
		assert.True(t, ok)
		assertDecimal(t, "200", limit)
	})

	t.Run("overwrite keeps first-set order", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(200)))
		assert.NoError(t, b.SetBudget("Rent", decimal.NewFromInt(900)))
		assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(250)))

		assert.Equal(t, []string{"Food", "Rent"}, b.Categories())
		limit, _ := b.Budget("Food")
		assertDecimal(t, "250", limit)
	})

	t.Run("error: zero limit", func(t *testing.T) {
		b := NewBudgetTracker()
		err := b.SetBudget("Food", decimal.Zero)
		assert.Error(t, err)
		assert.True(t, IsValidation(err))

		_, ok := b.Budget("Food")
		assert.False(t, ok, "no limit may be stored on failure")
	})

	t.Run("error: negative limit", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.Error(t, b.SetBudget("Food", decimal.NewFromInt(-1)))
	})

	t.Run("error: blank category", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.Error(t, b.SetBudget("   ", decimal.NewFromInt(100)))
	})
}

func TestCheckBudget(t *testing.T) {
	newManager := func(t *testing.T, spent string) *Manager {
		t.Helper()
		s := NewStore()
		s.Add(mustTransaction(t, Expense, spent, "Food"))
		return NewManager(s)
	}

	t.Run("over budget", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(200)))

		status := b.Check("Food", newManager(t, "250"))
		assert.True(t, status.OverBudget)
		assert.False(t, status.NoLimit)
		assertDecimal(t, "200", status.Limit)
		assertDecimal(t, "250", status.Spent)
		assertDecimal(t, "-50", status.Remaining)
		assertDecimal(t, "1.25", status.Utilization)
	})

	t.Run("within budget", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(200)))

		status := b.Check("Food", newManager(t, "150"))
		assert.False(t, status.OverBudget)
		assertDecimal(t, "50", status.Remaining)
		assertDecimal(t, "0.75", status.Utilization)
	})

	t.Run("spending the exact limit is not over budget", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(200)))

		status := b.Check("Food", newManager(t, "200"))
		assert.False(t, status.OverBudget)
		assertDecimal(t, "0", status.Remaining)
	})

	t.Run("unbudgeted category reports no limit", func(t *testing.T) {
		b := NewBudgetTracker()

		status := b.Check("Travel", NewManager(NewStore()))
		assert.True(t, status.NoLimit)
		assert.False(t, status.OverBudget)
		assertDecimal(t, "0", status.Spent)
	})

	t.Run("spend matches categories case-insensitively", func(t *testing.T) {
		b := NewBudgetTracker()
		assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(100)))

		s := NewStore()
		s.Add(mustTransaction(t, Expense, "30", "food"))
		s.Add(mustTransaction(t, Expense, "30", "FOOD"))

		status := b.Check("Food", NewManager(s))
		assertDecimal(t, "60", status.Spent)
	})
}

func TestCheckAll(t *testing.T) {
	b := NewBudgetTracker()
	assert.NoError(t, b.SetBudget("Food", decimal.NewFromInt(200)))
	assert.NoError(t, b.SetBudget("Rent", decimal.NewFromInt(900)))
	assert.NoError(t, b.SetBudget("Travel", decimal.NewFromInt(50)))

	s := NewStore()
	s.Add(mustTransaction(t, Expense, "250", "Food"))
	s.Add(mustTransaction(t, Expense, "900", "Rent"))
	m := NewManager(s)

	statuses := b.CheckAll(m)
	assert.Equal(t, 3, len(statuses))
	assert.Equal(t, "Food", statuses[0].Category)
	assert.Equal(t, "Rent", statuses[1].Category)
	assert.Equal(t, "Travel", statuses[2].Category)

	assert.True(t, statuses[0].OverBudget)
	assert.False(t, statuses[1].OverBudget)
	assertDecimal(t, "0", statuses[2].Spent)
}
