package billing

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month. It is the sole grouping key of the
// resolver: a billing period belongs to the month its start date falls in,
// regardless of the day.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the key of the month t falls in.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses a key in "2006-01" form.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// String renders the key in "2006-01" form.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Start returns midnight UTC on the first day of the month.
func (k MonthKey) Start() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following month.
func (k MonthKey) Next() MonthKey {
	return MonthOf(k.Start().AddDate(0, 1, 0))
}

// Before reports whether k is strictly earlier than other.
func (k MonthKey) Before(other MonthKey) bool {
	return k.index() < other.index()
}

// MonthsSince returns the number of whole calendar months from other to k.
// Negative when k precedes other.
func (k MonthKey) MonthsSince(other MonthKey) int {
	return k.index() - other.index()
}

func (k MonthKey) index() int {
	return k.Year*12 + int(k.Month) - 1
}
