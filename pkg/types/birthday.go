package types

import (
	"fmt"
	"time"
)

// BirthdayLayout is the textual form of a birthday (YYYY-MM-DD).
const BirthdayLayout = "2006-01-02"

// Birthday is a calendar date without a time of day.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw with BirthdayLayout.
// Returns an error wrapping ErrInvalidDate on any parse failure, including
// impossible dates such as 2024-02-30.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Birthday{date: t}, nil
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

// Month returns the birthday's month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the birthday's day of month.
func (b Birthday) Day() int { return b.date.Day() }

// DaysUntilNext returns the number of whole days from today until the next
// occurrence of the birthday's month and day. Zero means today. Only the
// calendar date of today is considered.
//
// A Feb 29 birthday falls on Mar 1 in years without Feb 29.
func (b Birthday) DaysUntilNext(today time.Time) int {
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(from.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(from) {
		next = time.Date(from.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(from).Hours() / 24)
}
