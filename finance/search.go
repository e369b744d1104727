package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Criteria is a structured transaction filter. All supplied fields are
// AND-combined; zero-valued fields impose no restriction.
type Criteria struct {
	// Category matches the transaction category exactly, case-insensitively.
	Category string
	// Description matches transactions whose description contains this
	// text, case-insensitively.
	Description string
	// From and To bound the transaction date, both inclusive.
	From *Date
	To   *Date
	// MinAmount and MaxAmount bound the unsigned magnitude, both inclusive.
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	// Kind restricts to income or expense transactions.
	Kind *Kind
}

// Matches reports whether the transaction satisfies every supplied
// criterion.
func (c Criteria) Matches(t *Transaction) bool {
	if c.Category != "" && !strings.EqualFold(c.Category, t.category) {
		return false
	}
	if c.Description != "" && !strings.Contains(strings.ToLower(t.description), strings.ToLower(c.Description)) {
		return false
	}
	if c.From != nil && t.date.Before(c.From.Time) {
		return false
	}
	if c.To != nil && t.date.After(c.To.Time) {
		return false
	}
	if c.MinAmount != nil && t.amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && t.amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	if c.Kind != nil && t.kind != *c.Kind {
		return false
	}
	return true
}
