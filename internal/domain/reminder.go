package domain

import (
	"time"
)

// Reminder is a due-dated, estimated to-do. A reminder with no due date or
// no estimate is a plain checklist item and never auto-scheduled.
type Reminder struct {
	id              ReminderID
	title           string
	userID          UserID
	groupID         GroupID
	source          Source
	dueDate         Date
	estimateMinutes int
	priority        Priority
	completed       bool
	finishedAt      *time.Time
	eventLink       TaskID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReminder(
	title string,
	userID UserID,
	dueDate Date,
	estimateMinutes int,
	priority Priority,
) (*Reminder, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now()

	return &Reminder{
		id:              NewReminderID(),
		title:           title,
		userID:          userID,
		source:          SourcePersonal,
		dueDate:         dueDate,
		estimateMinutes: estimateMinutes,
		priority:        priority,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// NewGroupReminder builds the canonical record kept under the group.
// Per-member copies are derived from it with FanOut.
func NewGroupReminder(
	title string,
	creator UserID,
	groupID GroupID,
	dueDate Date,
	estimateMinutes int,
	priority Priority,
) (*Reminder, error) {
	r, err := NewReminder(title, creator, dueDate, estimateMinutes, priority)
	if err != nil {
		return nil, err
	}

	r.groupID = groupID
	r.source = SourceGroupCanonical

	return r, nil
}

// FanOut derives an independent per-member copy of a group reminder. The
// copy has its own identity and its own event link.
func (r *Reminder) FanOut(member UserID) *Reminder {
	now := time.Now()

	return &Reminder{
		id:              NewReminderID(),
		title:           r.title,
		userID:          member,
		groupID:         r.groupID,
		source:          SourceGroup,
		dueDate:         r.dueDate,
		estimateMinutes: r.estimateMinutes,
		priority:        r.priority,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstituteReminder(
	id ReminderID,
	title string,
	userID UserID,
	groupID GroupID,
	source Source,
	dueDate Date,
	estimateMinutes int,
	priority Priority,
	completed bool,
	finishedAt *time.Time,
	eventLink TaskID,
	createdAt time.Time,
	updatedAt time.Time,
) *Reminder {
	return &Reminder{
		id:              id,
		title:           title,
		userID:          userID,
		groupID:         groupID,
		source:          source,
		dueDate:         dueDate,
		estimateMinutes: estimateMinutes,
		priority:        priority,
		completed:       completed,
		finishedAt:      finishedAt,
		eventLink:       eventLink,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Schedulable reports whether the reminder is eligible for automatic
// placement: not completed, with a due date and a positive estimate.
func (r *Reminder) Schedulable() bool {
	return !r.completed && !r.dueDate.IsZero() && r.estimateMinutes > 0
}

func (r *Reminder) Complete() error {
	if r.completed {
		return ErrAlreadyCompleted
	}

	now := time.Now()
	r.completed = true
	r.finishedAt = &now
	r.updatedAt = now

	return nil
}

func (r *Reminder) Reopen() error {
	if !r.completed {
		return ErrNotCompleted
	}

	r.completed = false
	r.finishedAt = nil
	r.updatedAt = time.Now()

	return nil
}

// LinkTask points the reminder at its materialized calendar task.
func (r *Reminder) LinkTask(taskID TaskID) {
	r.eventLink = taskID
	r.updatedAt = time.Now()
}

// ClearLink drops the back-reference, used when the linked task is deleted.
func (r *Reminder) ClearLink() {
	r.eventLink = TaskID{}
	r.updatedAt = time.Now()
}

func (r *Reminder) IsLinked() bool {
	return !r.eventLink.IsZero()
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) Title() string {
	return r.title
}

func (r *Reminder) UserID() UserID {
	return r.userID
}

func (r *Reminder) GroupID() GroupID {
	return r.groupID
}

func (r *Reminder) Source() Source {
	return r.source
}

func (r *Reminder) DueDate() Date {
	return r.dueDate
}

func (r *Reminder) EstimateMinutes() int {
	return r.estimateMinutes
}

func (r *Reminder) Priority() Priority {
	return r.priority
}

func (r *Reminder) IsCompleted() bool {
	return r.completed
}

func (r *Reminder) FinishedAt() *time.Time {
	return r.finishedAt
}

func (r *Reminder) EventLink() TaskID {
	return r.eventLink
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	return r.updatedAt
}
