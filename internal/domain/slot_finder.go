package domain

import "sort"

// Window bounds the daily slot search in minutes from midnight.
type Window struct {
	Start int
	End   int
}

// DefaultWindow is the evening search range, 18:00 to 24:00.
var DefaultWindow = Window{Start: 18 * 60, End: 24 * 60}

func NewWindow(start, end string) (Window, error) {
	s, err := ParseHHMM(start)
	if err != nil {
		return Window{}, err
	}

	var e int
	if end == "24:00" {
		e = MinutesPerDay
	} else {
		e, err = ParseHHMM(end)
		if err != nil {
			return Window{}, err
		}
	}

	if s >= e {
		return Window{}, ErrInvalidWindow
	}

	return Window{Start: s, End: e}, nil
}

// Slot is a free [Start, End) minute range found for a single date.
type Slot struct {
	Start int
	End   int
}

func (s Slot) StartString() string {
	return FormatHHMM(s.Start)
}

func (s Slot) EndString() string {
	return FormatHHMM(s.End)
}

// FindSlot runs a first-fit sweep over the day's busy intervals and returns
// the earliest free range of the requested duration inside the window, or
// false when the day has no room.
//
// The sweep sorts intervals ascending by start, appends a sentinel at the
// window end so the boundary is always considered, and walks a cursor
// forward: the first gap that fits wins.
func FindSlot(busy []Interval, durationMinutes int, window Window) (Slot, bool) {
	if durationMinutes <= 0 || window.Start+durationMinutes > window.End {
		return Slot{}, false
	}

	intervals := make([]Interval, len(busy), len(busy)+1)
	copy(intervals, busy)
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})

	intervals = append(intervals, Interval{Start: window.End, End: window.End})

	cursor := window.Start
	for _, iv := range intervals {
		if cursor+durationMinutes <= iv.Start {
			return Slot{Start: cursor, End: cursor + durationMinutes}, true
		}

		// An interval ending at or before its start spans past midnight;
		// within this day it occupies through the window end.
		end := iv.End
		if end <= iv.Start {
			end += MinutesPerDay
		}

		if end > cursor {
			cursor = end
		}
	}

	return Slot{}, false
}
