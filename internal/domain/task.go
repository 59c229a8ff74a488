package domain

import (
	"time"
)

// Task is a concrete occupant of the weekly calendar. Start and end are
// "HH:MM" strings; an end numerically before its start spans past midnight.
type Task struct {
	id        TaskID
	userID    UserID
	name      string
	category  Category
	date      Date
	start     string
	end       string
	createdAt time.Time
	updatedAt time.Time
}

func NewTask(
	userID UserID,
	name string,
	category Category,
	date Date,
	start string,
	end string,
) (*Task, error) {
	if name == "" {
		return nil, ErrEmptyTaskName
	}

	// Reject malformed times up front; the span itself is clamped, not rejected.
	if _, err := SpanMinutes(start, end); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Task{
		id:        NewTaskID(),
		userID:    userID,
		name:      name,
		category:  category,
		date:      date,
		start:     start,
		end:       end,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteTask(
	id TaskID,
	userID UserID,
	name string,
	category Category,
	date Date,
	start string,
	end string,
	createdAt time.Time,
	updatedAt time.Time,
) *Task {
	return &Task{
		id:        id,
		userID:    userID,
		name:      name,
		category:  category,
		date:      date,
		start:     start,
		end:       end,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Relocate moves the task to a new date and time range in place, preserving
// identity. Used for drag-relocation and by the auto-scheduler when it
// re-places an already linked task.
func (t *Task) Relocate(date Date, start, end string) error {
	if _, err := SpanMinutes(start, end); err != nil {
		return err
	}

	t.date = date
	t.start = start
	t.end = end
	t.updatedAt = time.Now()

	return nil
}

// DurationMinutes is the wrap-aware span of the task, clamped to MinTaskMinutes.
func (t *Task) DurationMinutes() (int, error) {
	return SpanMinutes(t.start, t.end)
}

func (t *Task) ID() TaskID {
	return t.id
}

func (t *Task) UserID() UserID {
	return t.userID
}

func (t *Task) Name() string {
	return t.name
}

func (t *Task) Category() Category {
	return t.category
}

func (t *Task) Date() Date {
	return t.date
}

func (t *Task) Start() string {
	return t.start
}

func (t *Task) End() string {
	return t.end
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}
