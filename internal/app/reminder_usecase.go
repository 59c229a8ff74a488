package app

import (
	"context"
)

type ReminderUseCase interface {
	CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error)
	// CreateGroupReminder writes one canonical record under the group plus
	// one independent fan-out copy per member.
	CreateGroupReminder(ctx context.Context, input CreateGroupReminderInput) (RemindersOutput, error)
	ListReminders(ctx context.Context, input ListRemindersInput) (RemindersOutput, error)
	CompleteReminder(ctx context.Context, input CompleteReminderInput) (ReminderOutput, error)
	ReopenReminder(ctx context.Context, input ReopenReminderInput) (ReminderOutput, error)
	// DeleteReminder removes the reminder only; a linked task stays on the
	// calendar.
	DeleteReminder(ctx context.Context, input DeleteReminderInput) error
}
