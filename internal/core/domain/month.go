package domain

import (
	"fmt"
	"regexp"
	"time"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month identifies a calendar month as "YYYY-MM".
type Month string

// ParseMonth validates and returns a Month from its string form.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	m := Month(s)
	if _, err := time.Parse("2006-01", s); err != nil {
		return "", fmt.Errorf("invalid month %q: %w", s, err)
	}
	return m, nil
}

// MonthOf returns the Month containing the given instant.
func MonthOf(t time.Time) Month {
	return Month(t.Format("2006-01"))
}

func (m Month) String() string {
	return string(m)
}

// Start returns the first instant of the month in UTC.
func (m Month) Start() time.Time {
	t, _ := time.Parse("2006-01", string(m))
	return t
}

// End returns the last instant of the month (23:59:59 on its final day).
func (m Month) End() time.Time {
	return m.Next().Start().Add(-time.Second)
}

// Next returns the following calendar month, rolling over the year.
func (m Month) Next() Month {
	return MonthOf(m.Start().AddDate(0, 1, 0))
}

// Previous returns the preceding calendar month.
func (m Month) Previous() Month {
	return MonthOf(m.Start().AddDate(0, -1, 0))
}
