package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation errors are returned by constructors and budget mutators for
// invariant violations. They are always caller-recoverable: the attempted
// entity or limit is never created and no state is touched.

// ValidationError is implemented by all validation error types.
type ValidationError interface {
	error
	validation()
}

// IsValidation reports whether err, or any error it wraps, is a
// validation error.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// InvalidAmountError is returned when a transaction amount is zero or negative.
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("transaction amount must be greater than zero, got %s", e.Amount)
}

func (e *InvalidAmountError) validation() {}

// EmptyCategoryError is returned when a category is empty or whitespace-only.
type EmptyCategoryError struct{}

func (e *EmptyCategoryError) Error() string {
	return "category must not be empty"
}

func (e *EmptyCategoryError) validation() {}

// UnknownKindError is returned when a transaction kind is not recognized.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf(`unknown transaction kind %q (expected "income" or "expense")`, e.Kind)
}

func (e *UnknownKindError) validation() {}

// UnknownIntervalError is returned when a recurrence interval is not recognized.
type UnknownIntervalError struct {
	Interval string
}

func (e *UnknownIntervalError) Error() string {
	return fmt.Sprintf(`unknown interval %q (expected "daily", "weekly", "monthly" or "yearly")`, e.Interval)
}

func (e *UnknownIntervalError) validation() {}

// InvalidLimitError is returned when a budget limit is zero or negative.
type InvalidLimitError struct {
	Category string
	Limit    decimal.Decimal
}

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("budget limit for %q must be greater than zero, got %s", e.Category, e.Limit)
}

func (e *InvalidLimitError) validation() {}
