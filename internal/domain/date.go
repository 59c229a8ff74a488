package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
type Date struct {
	value time.Time
}

func DateFromString(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return Date{value: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()

	return Date{value: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return d.value.Format(dateLayout)
}

func (d Date) Next() Date {
	return Date{value: d.value.AddDate(0, 0, 1)}
}

func (d Date) Before(other Date) bool {
	return d.value.Before(other.value)
}

func (d Date) After(other Date) bool {
	return d.value.After(other.value)
}

func (d Date) Equal(other Date) bool {
	return d.value.Equal(other.value)
}

func (d Date) IsZero() bool {
	return d.value.IsZero()
}

func (d Date) Time() time.Time {
	return d.value
}

// EndOfDay returns the last instant of the date, the deadline semantics used
// when a due date is compared against a timestamp.
func (d Date) EndOfDay() time.Time {
	return d.value.Add(24*time.Hour - time.Nanosecond)
}
