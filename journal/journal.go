// Package journal persists the transaction store and budget limits as a
// single JSON document. Loading is best-effort: every record is validated
// through the finance constructors, and malformed records are collected as
// per-record errors instead of aborting the whole load, so one corrupted
// entry never loses the rest of the journal.
//
// Record fields are kept as strings so a bad value in one record cannot
// fail the document decode; parsing and validation happen per record
// during hydration. The journal performs no console I/O and leaves
// reporting of record errors to its caller.
package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/mheijink/pennywise/finance"
)

// Record is the serialized form of a single transaction. Amounts are
// decimal strings (preserving their exact representation); dates are
// ISO 8601. A non-empty interval marks the record as recurring.
type Record struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Interval    string `json:"interval,omitempty"`
}

// BudgetRecord is the serialized form of one category limit.
type BudgetRecord struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

// File is the on-disk journal document.
type File struct {
	Transactions []Record       `json:"transactions"`
	Budgets      []BudgetRecord `json:"budgets,omitempty"`
}

// RecordError reports a single record that failed to hydrate. Index is
// the record's position within its section of the journal file.
type RecordError struct {
	Section string // "transaction" or "budget"
	Index   int
	Err     error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s record %d: %v", e.Section, e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Hydrate reconstructs entities from a parsed journal file. Valid records
// populate the returned store and budget tracker; invalid ones are
// reported in the returned slice so the caller can warn without losing
// the rest of the data. Insertion order follows file order.
func Hydrate(f *File) (*finance.Store, *finance.BudgetTracker, []*RecordError) {
	store := finance.NewStore()
	budgets := finance.NewBudgetTracker()
	var errs []*RecordError

	for i, r := range f.Transactions {
		txn, err := hydrateRecord(store, r)
		if err != nil {
			errs = append(errs, &RecordError{Section: "transaction", Index: i, Err: err})
			continue
		}
		store.Add(txn)
	}

	for i, b := range f.Budgets {
		if err := hydrateBudget(budgets, b); err != nil {
			errs = append(errs, &RecordError{Section: "budget", Index: i, Err: err})
		}
	}

	return store, budgets, errs
}

func hydrateRecord(store *finance.Store, r Record) (*finance.Transaction, error) {
	if r.ID != "" && store.Get(r.ID) != nil {
		return nil, fmt.Errorf("duplicate transaction id %q", r.ID)
	}

	kind, err := finance.ParseKind(r.Kind)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}

	opts := []finance.Option{finance.WithID(r.ID)}
	if r.Description != "" {
		opts = append(opts, finance.WithDescription(r.Description))
	}
	if r.Date != "" {
		date, err := finance.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		opts = append(opts, finance.WithDate(date))
	}

	if r.Interval != "" {
		interval, err := finance.ParseInterval(r.Interval)
		if err != nil {
			return nil, err
		}
		return finance.NewRecurring(kind, amount, r.Category, interval, opts...)
	}

	return finance.NewTransaction(kind, amount, r.Category, opts...)
}

func hydrateBudget(budgets *finance.BudgetTracker, b BudgetRecord) error {
	limit, err := decimal.NewFromString(b.Limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", b.Limit, err)
	}
	return budgets.SetBudget(b.Category, limit)
}

// Dehydrate renders the current store and budget limits back into a
// journal file, preserving insertion order in both sections.
func Dehydrate(store *finance.Store, budgets *finance.BudgetTracker) *File {
	f := &File{
		Transactions: make([]Record, 0, store.Len()),
	}

	for _, txn := range store.All() {
		f.Transactions = append(f.Transactions, Record{
			ID:          txn.ID(),
			Kind:        txn.Kind().String(),
			Amount:      amountString(txn.Amount()),
			Category:    txn.Category(),
			Description: txn.Description(),
			Date:        txn.Date().String(),
			Interval:    txn.Interval().String(),
		})
	}

	if budgets != nil {
		for _, category := range budgets.Categories() {
			limit, _ := budgets.Budget(category)
			f.Budgets = append(f.Budgets, BudgetRecord{Category: category, Limit: amountString(limit)})
		}
	}

	return f
}

// amountString renders a decimal preserving its scale. Decimal's String
// trims trailing zeros, which would rewrite a stored "40.50" as "40.5"
// on the next save; re-serializing must reproduce the record exactly.
func amountString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Read parses a journal document from r.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse journal: %w", err)
	}

	return &f, nil
}

// Write renders the journal document to w as indented JSON.
func Write(w io.Writer, f *File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	return nil
}

// Load reads the journal at path. A missing file is not an error: it
// yields an empty journal, matching a first run.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &f, nil
}

// Save writes the journal document to path, creating parent directories
// as needed. The file is owner-readable only.
func Save(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
