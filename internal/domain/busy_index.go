package domain

// Interval is an occupied [Start, End) minute range within a single day.
type Interval struct {
	Start int
	End   int
}

// BusyIndex holds, per calendar date, the intervals occupied by existing
// tasks. Intervals are stored as given: sorting and overlap handling belong
// to the slot finder, not here.
type BusyIndex struct {
	byDate map[string][]Interval
}

// BuildBusyIndex transforms a task snapshot into per-date occupancy. A task
// with a malformed time fails the build; nothing is silently defaulted.
func BuildBusyIndex(tasks []*Task) (*BusyIndex, error) {
	idx := &BusyIndex{byDate: make(map[string][]Interval, len(tasks))}

	for _, t := range tasks {
		start, err := ParseHHMM(t.Start())
		if err != nil {
			return nil, err
		}

		end, err := ParseHHMM(t.End())
		if err != nil {
			return nil, err
		}

		key := t.Date().String()
		idx.byDate[key] = append(idx.byDate[key], Interval{Start: start, End: end})
	}

	return idx, nil
}

// On returns the intervals recorded for the date.
func (b *BusyIndex) On(date Date) []Interval {
	return b.byDate[date.String()]
}

// Add records a newly consumed interval so later queries within the same
// scheduling run observe it.
func (b *BusyIndex) Add(date Date, iv Interval) {
	key := date.String()
	b.byDate[key] = append(b.byDate[key], iv)
}
