package finance

import (
	"fmt"
	"strings"
	"time"
)

// Kind classifies a transaction as money coming in or going out.
// Amounts are stored as unsigned magnitudes; the kind carries the sign.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a textual kind ("income" or "expense", case-insensitive)
// to its enumerated value.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, &UnknownKindError{Kind: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Interval is the recurrence tag on a transaction. A one-off transaction
// carries IntervalNone; any other value marks the transaction as recurring.
type Interval int

const (
	IntervalNone Interval = iota
	Daily
	Weekly
	Monthly
	Yearly
)

func (i Interval) String() string {
	switch i {
	case IntervalNone:
		return ""
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("Interval(%d)", int(i))
	}
}

// ParseInterval converts a textual interval ("daily", "weekly", "monthly"
// or "yearly", case-insensitive) to its enumerated value. The empty string
// is not a valid interval; one-off transactions simply carry no interval.
func ParseInterval(s string) (Interval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	default:
		return IntervalNone, &UnknownIntervalError{Interval: s}
	}
}

// MarshalText implements encoding.TextMarshaler. IntervalNone marshals to
// the empty string so serializers can omit it.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interval) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*i = IntervalNone
		return nil
	}
	parsed, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Next returns the occurrence date that follows d at this interval.
// Month and year steps are normalized by the calendar, so a monthly
// recurrence anchored on Jan 31 lands in early March rather than failing.
func (i Interval) Next(d Date) Date {
	switch i {
	case Daily:
		return Date{d.AddDate(0, 0, 1)}
	case Weekly:
		return Date{d.AddDate(0, 0, 7)}
	case Monthly:
		return Date{d.AddDate(0, 1, 0)}
	case Yearly:
		return Date{d.AddDate(1, 0, 0)}
	default:
		return d
	}
}

// Date represents a calendar date in ISO 8601 format (YYYY-MM-DD) without
// a time component. Transactions are dated, never timestamped.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	year, month, day := time.Now().Date()
	return NewDate(year, month, day)
}

// ParseDate parses a date in ISO 8601 format (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date: %s", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalJSON overrides the embedded time.Time marshaling to emit plain
// YYYY-MM-DD strings.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. This also lets kong
// decode date flags directly.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
