package helper_util

import (
	"fmt"
	"time"
)

const (
	// DueDateLayout is the LocalDateTime form the backend expects for due dates.
	DueDateLayout = "2006-01-02T00:00:00"
	DateLayout    = "2006-01-02"
)

// ParseDate accepts a plain date, a backend LocalDateTime or RFC3339.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{DateLayout, "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func FirstOfNextMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, 0)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// OnDayOfMonth returns the date in t's month on day, clamped to the last day
// of that month.
func OnDayOfMonth(t time.Time, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := DaysInMonth(t.Year(), t.Month()); day > last {
		day = last
	}
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location())
}

func FormatDueDate(t time.Time) string {
	return t.Format(DueDateLayout)
}

// MonthlyRentDescription is the default description of generated dues.
func MonthlyRentDescription(month time.Time) string {
	return fmt.Sprintf("Monthly Rent - %s %d", month.Month().String(), month.Year())
}

// AddMonthsClamped adds n months to t, keeping the day of month but clamping
// it to the last day of the target month (Jan 31 + 1 month is Feb 28/29).
func AddMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	day := t.Day()
	if last := DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return target.AddDate(0, 0, day-1)
}

// PreviewDueDates walks month by month from start while the walked date is
// not after end and yields one due date per month on dayOfMonth.
func PreviewDueDates(start, end time.Time, dayOfMonth int) []time.Time {
	var dates []time.Time
	for i := 0; ; i++ {
		current := AddMonthsClamped(start, i)
		if current.After(end) {
			return dates
		}
		dates = append(dates, OnDayOfMonth(current, dayOfMonth))
	}
}
