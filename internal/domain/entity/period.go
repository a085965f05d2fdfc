package entity

import (
	"fmt"
	"time"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
)

// periodLayout is the storage encoding of a Period ("yyyy-MM")
const periodLayout = "2006-01"

// Period identifies one calendar month. The in-memory representation stays
// structured; the "yyyy-MM" string only exists at the storage boundary.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing t
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod decodes a "yyyy-MM" string into a Period
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: invalid period %q", errs.ErrInvalidInput, s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// String encodes the period as "yyyy-MM"
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns midnight UTC on the first day of the month
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC on the last day of the month
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// IsZero reports whether the period is unset
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}
