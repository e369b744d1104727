package journal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/mheijink/pennywise/finance"
)

func validFile() *File {
	return &File{
		Transactions: []Record{
			{ID: "txn-1", Kind: "income", Amount: "1000.00", Category: "Salary", Description: "January pay", Date: "2024-01-31"},
			{ID: "txn-2", Kind: "expense", Amount: "40.50", Category: "Food", Date: "2024-02-02"},
			{ID: "txn-3", Kind: "expense", Amount: "15.00", Category: "Entertainment", Description: "streaming", Date: "2024-01-15", Interval: "monthly"},
		},
		Budgets: []BudgetRecord{
			{Category: "Food", Limit: "200"},
			{Category: "Entertainment", Limit: "50"},
		},
	}
}

func TestHydrate(t *testing.T) {
	t.Run("valid records populate store and budgets", func(t *testing.T) {
		store, budgets, errs := Hydrate(validFile())
		assert.Zero(t, errs)
		assert.Equal(t, 3, store.Len())

		txn := store.Get("txn-1")
		assert.NotZero(t, txn)
		assert.True(t, txn.IsIncome())
		assert.Equal(t, "January pay", txn.Description())
		assert.Equal(t, "2024-01-31", txn.Date().String())

		recurring := store.Get("txn-3")
		assert.True(t, recurring.IsRecurring())
		assert.Equal(t, finance.Monthly, recurring.Interval())

		assert.Equal(t, []string{"Food", "Entertainment"}, budgets.Categories())
		limit, ok := budgets.Budget("Food")
		assert.True(t, ok)
		assert.True(t, limit.Equal(decimal.NewFromInt(200)))
	})

	t.Run("bad records are collected, good ones survive", func(t *testing.T) {
		f := &File{
			Transactions: []Record{
				{ID: "txn-1", Kind: "income", Amount: "100", Category: "Salary", Date: "2024-01-01"},
				{ID: "txn-2", Kind: "expense", Amount: "0", Category: "Food", Date: "2024-01-02"},
				{ID: "txn-3", Kind: "transfer", Amount: "10", Category: "Food", Date: "2024-01-03"},
				{ID: "txn-4", Kind: "expense", Amount: "ten", Category: "Food", Date: "2024-01-04"},
				{ID: "txn-5", Kind: "expense", Amount: "10", Category: "", Date: "2024-01-05"},
				{ID: "txn-6", Kind: "expense", Amount: "25", Category: "Travel", Date: "2024-01-06"},
			},
		}

		store, _, errs := Hydrate(f)
		assert.Equal(t, 2, store.Len())
		assert.Equal(t, 4, len(errs))
		assert.Equal(t, 1, errs[0].Index)
		assert.Equal(t, 2, errs[1].Index)
		assert.Equal(t, 3, errs[2].Index)
		assert.Equal(t, 4, errs[3].Index)
		assert.Equal(t, "transaction", errs[0].Section)
	})

	t.Run("duplicate ids are record errors", func(t *testing.T) {
		f := &File{
			Transactions: []Record{
				{ID: "txn-1", Kind: "income", Amount: "100", Category: "Salary", Date: "2024-01-01"},
				{ID: "txn-1", Kind: "expense", Amount: "40", Category: "Food", Date: "2024-01-02"},
			},
		}

		store, _, errs := Hydrate(f)
		assert.Equal(t, 1, store.Len())
		assert.Equal(t, 1, len(errs))
		assert.Contains(t, errs[0].Error(), "duplicate transaction id")
	})

	t.Run("invalid budget limits are record errors", func(t *testing.T) {
		f := &File{
			Budgets: []BudgetRecord{
				{Category: "Food", Limit: "200"},
				{Category: "Rent", Limit: "-5"},
				{Category: "Travel", Limit: "lots"},
			},
		}

		_, budgets, errs := Hydrate(f)
		assert.Equal(t, []string{"Food"}, budgets.Categories())
		assert.Equal(t, 2, len(errs))
		assert.Equal(t, "budget", errs[0].Section)
	})

	t.Run("missing date defaults to today", func(t *testing.T) {
		f := &File{
			Transactions: []Record{
				{Kind: "income", Amount: "100", Category: "Salary"},
			},
		}

		store, _, errs := Hydrate(f)
		assert.Zero(t, errs)
		assert.Equal(t, finance.Today().String(), store.All()[0].Date().String())
	})
}

func TestRoundTrip(t *testing.T) {
	original := validFile()

	store, budgets, errs := Hydrate(original)
	assert.Zero(t, errs)

	restored := Dehydrate(store, budgets)
	assert.Equal(t, original.Transactions, restored.Transactions)
	assert.Equal(t, original.Budgets, restored.Budgets)
}

func TestRoundTripPreservesAmountScale(t *testing.T) {
	// Trailing zeros must survive a load/save cycle; decimal trims them
	// when rendered naively.
	tests := []struct {
		amount string
	}{
		{"1000.00"},
		{"40.50"},
		{"0.10"},
		{"200"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			f := &File{
				Transactions: []Record{
					{ID: "txn-1", Kind: "expense", Amount: tt.amount, Category: "Food", Date: "2024-01-02"},
				},
				Budgets: []BudgetRecord{
					{Category: "Food", Limit: tt.amount},
				},
			}

			store, budgets, errs := Hydrate(f)
			assert.Zero(t, errs)

			restored := Dehydrate(store, budgets)
			assert.Equal(t, tt.amount, restored.Transactions[0].Amount)
			assert.Equal(t, tt.amount, restored.Budgets[0].Limit)
		})
	}
}

func TestReadWrite(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, validFile()))

	parsed, err := Read(&buf)
	assert.NoError(t, err)
	assert.Equal(t, validFile(), parsed)
}

func TestLoadSave(t *testing.T) {
	t.Run("save and load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.json")
		assert.NoError(t, Save(path, validFile()))

		loaded, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, validFile(), loaded)

		info, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("missing file is an empty journal", func(t *testing.T) {
		loaded, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.NoError(t, err)
		assert.Equal(t, 0, len(loaded.Transactions))
	})

	t.Run("save creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "journal.json")
		assert.NoError(t, Save(path, &File{}))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.json")
		assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
