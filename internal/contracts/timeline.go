package contracts

import "time"

// MonthKey identifies a calendar month. Keys are comparable and can be used
// directly as map keys; arithmetic normalizes month overflow into the
// following year, so (2024, 13) is the same month as (2025, 1).
type MonthKey struct {
	Year  int
	Month int
}

// MonthKeyOf returns the key of the calendar month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: int(t.Month())}
}

// Normalize folds month values outside 1..12 into the adjacent years.
func (k MonthKey) Normalize() MonthKey {
	y, m := k.Year, k.Month
	y += (m - 1) / 12
	m = (m-1)%12 + 1
	if m < 1 {
		m += 12
		y--
	}
	return MonthKey{Year: y, Month: m}
}

// AddMonths returns the key n months after k (n may be negative).
func (k MonthKey) AddMonths(n int) MonthKey {
	return MonthKey{Year: k.Year, Month: k.Month + n}.Normalize()
}

// Before reports whether k is an earlier month than other.
func (k MonthKey) Before(other MonthKey) bool {
	a, b := k.Normalize(), other.Normalize()
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	return a.Month < b.Month
}

// MonthsUntil returns the number of months from k to other; positive when
// other is later.
func (k MonthKey) MonthsUntil(other MonthKey) int {
	a, b := k.Normalize(), other.Normalize()
	return (b.Year-a.Year)*12 + (b.Month - a.Month)
}

// Timeline is a dense, calendar-aligned status sequence. Index 0 is the
// earliest month, the last index is the current month, and every index holds
// exactly one Status (StatusNoData when no record exists for that month).
type Timeline []Status
