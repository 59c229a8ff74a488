package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Riloax/weekplanner/internal/domain"
)

// SnapshotOutput is the full state a rendering client needs. Subscribers
// receive whole snapshots on every change, never deltas, so re-rendering
// must be (and is) idempotent.
type SnapshotOutput struct {
	Reminders RemindersOutput
	Tasks     TasksOutput
}

type SnapshotUseCase interface {
	Snapshot(ctx context.Context, userID string) (SnapshotOutput, error)
}

type snapshotUseCaseImpl struct {
	reminderRepo domain.ReminderRepository
	taskRepo     domain.TaskRepository
}

func NewSnapshotUseCase(reminderRepo domain.ReminderRepository, taskRepo domain.TaskRepository) SnapshotUseCase {
	return &snapshotUseCaseImpl{
		reminderRepo: reminderRepo,
		taskRepo:     taskRepo,
	}
}

func (uc *snapshotUseCaseImpl) Snapshot(ctx context.Context, userID string) (SnapshotOutput, error) {
	uid, err := domain.UserIDFromString(userID)
	if err != nil {
		return SnapshotOutput{}, NewValidationError("user_id", err.Error())
	}

	reminders, err := uc.reminderRepo.FindByUser(ctx, uid)
	if err != nil {
		slog.Error("failed to load reminders for snapshot",
			"error", err,
			"user_id", userID,
		)

		return SnapshotOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	tasks, err := uc.taskRepo.FindByUser(ctx, uid)
	if err != nil {
		slog.Error("failed to load tasks for snapshot",
			"error", err,
			"user_id", userID,
		)

		return SnapshotOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return SnapshotOutput{
		Reminders: RemindersFromEntities(reminders),
		Tasks:     TasksFromEntities(tasks),
	}, nil
}
