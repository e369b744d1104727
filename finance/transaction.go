// Package finance implements the core domain of a single-user personal
// finance tracker: immutable income/expense transactions with an optional
// recurrence interval, an insertion-ordered store that owns them, a manager
// deriving aggregates (balance, category totals, savings rate) and a budget
// tracker comparing monthly per-category limits against actual spending.
//
// Amounts are unsigned decimal magnitudes paired with a Kind; the signed
// value of a transaction is derived, never stored. All monetary arithmetic
// uses decimal.Decimal to avoid floating point drift.
//
// The package performs no I/O. Entities are validated once, at
// construction, and are immutable afterwards; every computation is a pure
// function of current state and degrades to neutral values (zero, empty
// map, empty slice) on empty data.
package finance

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is one recorded financial event. Fields are private and only
// reachable through accessors; construction via NewTransaction or
// NewRecurring is the single validation gate.
//
// A recurring transaction is the same entity carrying a non-None interval
// tag; Label and Occurrences dispatch on the tag.
type Transaction struct {
	id          string
	kind        Kind
	amount      decimal.Decimal
	category    string
	description string
	date        Date
	interval    Interval
}

// Option configures optional transaction fields at construction time.
type Option func(*Transaction)

// WithDescription sets the optional free-text description.
func WithDescription(description string) Option {
	return func(t *Transaction) {
		t.description = description
	}
}

// WithDate sets the transaction date. Without it the transaction is dated
// on the day it is created.
func WithDate(date Date) Option {
	return func(t *Transaction) {
		t.date = date
	}
}

// WithID sets an explicit id, used when rehydrating persisted records.
// New transactions are assigned an id by the store instead.
func WithID(id string) Option {
	return func(t *Transaction) {
		t.id = id
	}
}

// NewTransaction creates a validated one-off transaction. The amount is an
// unsigned magnitude and must be greater than zero; the category must be
// non-empty after trimming whitespace.
func NewTransaction(kind Kind, amount decimal.Decimal, category string, opts ...Option) (*Transaction, error) {
	t := &Transaction{
		kind:     kind,
		amount:   amount,
		category: strings.TrimSpace(category),
		date:     Today(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// NewRecurring creates a validated recurring transaction. On top of the
// NewTransaction rules, the interval must be one of the enumerated
// recurrence values.
func NewRecurring(kind Kind, amount decimal.Decimal, category string, interval Interval, opts ...Option) (*Transaction, error) {
	if interval <= IntervalNone || interval > Yearly {
		return nil, &UnknownIntervalError{Interval: interval.String()}
	}

	t, err := NewTransaction(kind, amount, category, opts...)
	if err != nil {
		return nil, err
	}

	t.interval = interval
	return t, nil
}

// validate checks all construction invariants. It runs after options have
// been applied so rehydrated fields are covered too.
func (t *Transaction) validate() error {
	if t.kind != Income && t.kind != Expense {
		return &UnknownKindError{Kind: t.kind.String()}
	}
	if t.amount.Sign() <= 0 {
		return &InvalidAmountError{Amount: t.amount}
	}
	if t.category == "" {
		return &EmptyCategoryError{}
	}
	return nil
}

// ID returns the opaque unique identifier, or the empty string until the
// transaction has been added to a store.
func (t *Transaction) ID() string { return t.id }

// Kind returns whether the transaction is income or an expense.
func (t *Transaction) Kind() Kind { return t.kind }

// Amount returns the unsigned magnitude.
func (t *Transaction) Amount() decimal.Decimal { return t.amount }

// Category returns the trimmed category label.
func (t *Transaction) Category() string { return t.category }

// Description returns the optional description, possibly empty.
func (t *Transaction) Description() string { return t.description }

// Date returns the transaction date.
func (t *Transaction) Date() Date { return t.date }

// Interval returns the recurrence tag, IntervalNone for one-off
// transactions.
func (t *Transaction) Interval() Interval { return t.interval }

// IsIncome reports whether the transaction adds to the balance.
func (t *Transaction) IsIncome() bool { return t.kind == Income }

// IsExpense reports whether the transaction subtracts from the balance.
func (t *Transaction) IsExpense() bool { return t.kind == Expense }

// IsRecurring reports whether the transaction repeats at an interval.
func (t *Transaction) IsRecurring() bool { return t.interval != IntervalNone }

// Signed returns the amount with its sign applied: positive for income,
// negative for expenses.
func (t *Transaction) Signed() decimal.Decimal {
	if t.kind == Expense {
		return t.amount.Neg()
	}
	return t.amount
}

// Label renders a human-readable one-line representation. Recurring
// transactions append their interval, so the same call site produces
// variant-specific output.
func (t *Transaction) Label() string {
	sign := "+"
	if t.kind == Expense {
		sign = "-"
	}

	label := fmt.Sprintf("%s %s%s %s", t.date, sign, t.amount.StringFixed(2), t.category)
	if t.description != "" {
		label += fmt.Sprintf(" (%s)", t.description)
	}
	if t.interval != IntervalNone {
		label += fmt.Sprintf(" [%s]", t.interval)
	}

	return label
}

// Occurrences projects the recurrence dates of the transaction from its
// date up to and including until. The sequence is a pure function of the
// stored state and can be ranged over multiple times. It is empty for
// one-off transactions and when until precedes the transaction date.
func (t *Transaction) Occurrences(until Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if t.interval == IntervalNone {
			return
		}
		for d := t.date; !d.After(until.Time); d = t.interval.Next(d) {
			if !yield(d) {
				return
			}
		}
	}
}
