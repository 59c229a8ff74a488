package domain

import (
	"context"
)

type ReminderRepository interface {
	Save(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, id ReminderID) (*Reminder, error)
	// FindByUser returns the user's personal reminders merged with their
	// group fan-out copies. Canonical group records are excluded.
	FindByUser(ctx context.Context, userID UserID) ([]*Reminder, error)
	// FindSchedulable narrows FindByUser to reminders eligible for
	// automatic placement: not completed, due-dated, positively estimated.
	FindSchedulable(ctx context.Context, userID UserID) ([]*Reminder, error)
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id ReminderID) error
	// ClearEventLink clears the event link of every reminder pointing at
	// the task, across personal and fan-out copies. Returns the number of
	// reminders touched.
	ClearEventLink(ctx context.Context, taskID TaskID) (int64, error)
	// SchedulableUserIDs lists users that currently own at least one
	// schedulable reminder.
	SchedulableUserIDs(ctx context.Context) ([]UserID, error)
	WithTx(ctx context.Context, fn func(repo ReminderRepository) error) error
}
