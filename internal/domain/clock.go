package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerDay = 24 * 60

	// MinTaskMinutes is the floor applied to computed task durations so a
	// degenerate zero-length entry never reaches the calendar.
	MinTaskMinutes = 5
)

// ParseHHMM converts a zero-padded 24-hour "HH:MM" string into a minute
// offset in [0, 1440).
func ParseHHMM(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hour*60 + minute, nil
}

// FormatHHMM renders a minute offset as "HH:MM". Offsets are reduced modulo
// 1440 for display; day-rollover bookkeeping stays with the caller.
func FormatHHMM(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}

	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SpanMinutes computes end minus start, wrapping at midnight when the naive
// difference is negative, clamped to MinTaskMinutes.
func SpanMinutes(start, end string) (int, error) {
	s, err := ParseHHMM(start)
	if err != nil {
		return 0, err
	}

	e, err := ParseHHMM(end)
	if err != nil {
		return 0, err
	}

	span := e - s
	if span < 0 {
		span += MinutesPerDay
	}

	if span < MinTaskMinutes {
		span = MinTaskMinutes
	}

	return span, nil
}
