package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Riloax/weekplanner/internal/domain"
	"github.com/Riloax/weekplanner/internal/infra/pubsub"
)

type taskUseCaseImpl struct {
	taskRepo     domain.TaskRepository
	reminderRepo domain.ReminderRepository
	publisher    pubsub.Publisher
}

func NewTaskUseCase(
	taskRepo domain.TaskRepository,
	reminderRepo domain.ReminderRepository,
	publisher pubsub.Publisher,
) TaskUseCase {
	return &taskUseCaseImpl{
		taskRepo:     taskRepo,
		reminderRepo: reminderRepo,
		publisher:    publisher,
	}
}

func (uc *taskUseCaseImpl) CreateTask(ctx context.Context, input CreateTaskInput) (TaskOutput, error) {
	slog.Debug("creating task",
		"user_id", input.UserID,
		"name", input.Name,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return TaskOutput{}, NewValidationError("user_id", err.Error())
	}

	category, err := domain.NewCategory(input.Category)
	if err != nil {
		return TaskOutput{}, NewValidationError("category", err.Error())
	}

	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return TaskOutput{}, NewValidationError("date", err.Error())
	}

	task, err := domain.NewTask(userID, input.Name, category, date, input.Start, input.End)
	if err != nil {
		return TaskOutput{}, NewValidationError("task", err.Error())
	}

	if err := uc.taskRepo.Save(ctx, task); err != nil {
		slog.Error("failed to save task",
			"error", err,
			"task_id", task.ID().String(),
		)

		return TaskOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
		Kind:       pubsub.KindTask,
		Action:     pubsub.ActionCreated,
		UserID:     input.UserID,
		EntityID:   task.ID().String(),
		OccurredAt: time.Now(),
	})

	slog.Debug("task created",
		"task_id", task.ID().String(),
	)

	return TaskFromEntity(task), nil
}

func (uc *taskUseCaseImpl) ListTasks(ctx context.Context, input ListTasksInput) (TasksOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return TasksOutput{}, NewValidationError("user_id", err.Error())
	}

	tasks, err := uc.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		slog.Error("failed to list tasks",
			"error", err,
			"user_id", input.UserID,
		)

		return TasksOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return TasksFromEntities(tasks), nil
}

func (uc *taskUseCaseImpl) MoveTask(ctx context.Context, input MoveTaskInput) (TaskOutput, error) {
	slog.Debug("moving task",
		"task_id", input.ID,
		"date", input.Date,
	)

	taskID, err := domain.TaskIDFromString(input.ID)
	if err != nil {
		return TaskOutput{}, NewValidationError("id", err.Error())
	}

	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return TaskOutput{}, NewValidationError("date", err.Error())
	}

	task, err := uc.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		slog.Warn("task not found for move",
			"task_id", input.ID,
			"error", err,
		)

		return TaskOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if err := task.Relocate(date, input.Start, input.End); err != nil {
		return TaskOutput{}, NewValidationError("time", err.Error())
	}

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		slog.Error("failed to update task position",
			"error", err,
			"task_id", input.ID,
		)

		return TaskOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
		Kind:       pubsub.KindTask,
		Action:     pubsub.ActionUpdated,
		UserID:     task.UserID().String(),
		EntityID:   input.ID,
		OccurredAt: time.Now(),
	})

	return TaskFromEntity(task), nil
}

func (uc *taskUseCaseImpl) DeleteTask(ctx context.Context, input DeleteTaskInput) error {
	slog.Debug("deleting task",
		"task_id", input.ID,
	)

	taskID, err := domain.TaskIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	task, err := uc.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			// A retry after a partial failure lands here with the row gone
			// but links possibly intact; the sweep must still run or the
			// reminders stay pointed at a task that no longer exists.
			cleared, clearErr := uc.reminderRepo.ClearEventLink(ctx, taskID)
			if clearErr != nil {
				return fmt.Errorf("%w: %v", ErrInternalError, clearErr)
			}

			slog.Info("task not found for deletion (idempotency)",
				"task_id", input.ID,
				"links_cleared", cleared,
			)

			return nil
		}

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	// Scan-and-clear across all copies, O(reminders) per deletion. Clearing
	// runs before the row delete inside the transaction: a failed sweep
	// aborts the deletion so a retry still finds the task.
	var cleared int64

	if err := uc.taskRepo.WithTx(ctx, func(txRepo domain.TaskRepository) error {
		var clearErr error

		cleared, clearErr = uc.reminderRepo.ClearEventLink(ctx, taskID)
		if clearErr != nil {
			return clearErr
		}

		return txRepo.Delete(ctx, taskID)
	}); err != nil {
		slog.Error("failed to delete task and release reminder links",
			"error", err,
			"task_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
		Kind:       pubsub.KindTask,
		Action:     pubsub.ActionDeleted,
		UserID:     task.UserID().String(),
		EntityID:   input.ID,
		OccurredAt: time.Now(),
	})

	slog.Info("task deleted",
		"task_id", input.ID,
		"links_cleared", cleared,
	)

	return nil
}
