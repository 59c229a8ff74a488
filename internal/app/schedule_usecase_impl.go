package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Riloax/weekplanner/internal/domain"
	"github.com/Riloax/weekplanner/internal/infra/pubsub"
)

type scheduleUseCaseImpl struct {
	reminderRepo domain.ReminderRepository
	taskRepo     domain.TaskRepository
	publisher    pubsub.Publisher
	window       domain.Window
}

func NewScheduleUseCase(
	reminderRepo domain.ReminderRepository,
	taskRepo domain.TaskRepository,
	publisher pubsub.Publisher,
	window domain.Window,
) ScheduleUseCase {
	return &scheduleUseCaseImpl{
		reminderRepo: reminderRepo,
		taskRepo:     taskRepo,
		publisher:    publisher,
		window:       window,
	}
}

// AutoSchedule places every schedulable reminder of the user into the
// earliest free slot no later than its due date. Each placement commits
// independently: a failure on one reminder is logged and the batch moves on.
func (uc *scheduleUseCaseImpl) AutoSchedule(ctx context.Context, input AutoScheduleInput) (AutoScheduleOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return AutoScheduleOutput{}, NewValidationError("user_id", err.Error())
	}

	today := input.Today
	if today.IsZero() {
		today = domain.Today()
	}

	slog.Debug("starting auto-schedule run",
		"user_id", input.UserID,
		"today", today.String(),
	)

	reminders, err := uc.reminderRepo.FindSchedulable(ctx, userID)
	if err != nil {
		slog.Error("failed to load schedulable reminders",
			"error", err,
			"user_id", input.UserID,
		)

		return AutoScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	tasks, err := uc.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		slog.Error("failed to load tasks",
			"error", err,
			"user_id", input.UserID,
		)

		return AutoScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	busy, err := domain.BuildBusyIndex(tasks)
	if err != nil {
		slog.Error("failed to build busy index",
			"error", err,
			"user_id", input.UserID,
		)

		return AutoScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	// Overdue and soonest-due first; stable so equal due dates keep
	// repository order.
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DueDate().Before(reminders[j].DueDate())
	})

	var output AutoScheduleOutput

	for _, reminder := range reminders {
		placed, found, err := uc.placeReminder(ctx, reminder, today, busy)
		if err != nil {
			slog.Error("failed to materialize reminder placement",
				"error", err,
				"reminder_id", reminder.ID().String(),
			)

			output.Failed = append(output.Failed, reminder.ID().String())

			continue
		}

		if !found {
			slog.Info("no slot available for reminder",
				"reminder_id", reminder.ID().String(),
				"due_date", reminder.DueDate().String(),
			)

			output.Unplaced = append(output.Unplaced, reminder.ID().String())

			continue
		}

		output.Placed = append(output.Placed, placed)
	}

	slog.Info("auto-schedule run completed",
		"user_id", input.UserID,
		"placed", len(output.Placed),
		"unplaced", len(output.Unplaced),
		"failed", len(output.Failed),
	)

	return output, nil
}

// placeReminder walks candidate dates from today through the due date and
// materializes the first feasible slot. An overdue reminder searches today
// only; it never schedules into the past.
func (uc *scheduleUseCaseImpl) placeReminder(
	ctx context.Context,
	reminder *domain.Reminder,
	today domain.Date,
	busy *domain.BusyIndex,
) (PlacedReminder, bool, error) {
	searchEnd := reminder.DueDate()
	if searchEnd.Before(today) {
		searchEnd = today
	}

	for date := today; !date.After(searchEnd); date = date.Next() {
		slot, ok := domain.FindSlot(busy.On(date), reminder.EstimateMinutes(), uc.window)
		if !ok {
			continue
		}

		taskID, err := uc.materialize(ctx, reminder, date, slot)
		if err != nil {
			return PlacedReminder{}, false, err
		}

		busy.Add(date, domain.Interval{Start: slot.Start, End: slot.End})

		publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
			Kind:       pubsub.KindTask,
			Action:     pubsub.ActionScheduled,
			UserID:     reminder.UserID().String(),
			EntityID:   taskID.String(),
			OccurredAt: time.Now(),
		})

		return PlacedReminder{
			ReminderID: reminder.ID().String(),
			TaskID:     taskID.String(),
			Date:       date.String(),
			Start:      slot.StartString(),
			End:        slot.EndString(),
		}, true, nil
	}

	return PlacedReminder{}, false, nil
}

// materialize updates the linked task in place, or creates a new one and
// writes the link back onto the reminder.
func (uc *scheduleUseCaseImpl) materialize(
	ctx context.Context,
	reminder *domain.Reminder,
	date domain.Date,
	slot domain.Slot,
) (domain.TaskID, error) {
	if reminder.IsLinked() {
		task, err := uc.taskRepo.FindByID(ctx, reminder.EventLink())
		if err == nil {
			if err := task.Relocate(date, slot.StartString(), slot.EndString()); err != nil {
				return domain.TaskID{}, err
			}

			if err := uc.taskRepo.Update(ctx, task); err != nil {
				return domain.TaskID{}, err
			}

			return task.ID(), nil
		}

		if !errors.Is(err, domain.ErrTaskNotFound) {
			return domain.TaskID{}, err
		}

		// Stale link: the task is gone, fall through and create a fresh one.
		slog.Warn("reminder points at a missing task, re-creating",
			"reminder_id", reminder.ID().String(),
			"task_id", reminder.EventLink().String(),
		)
	}

	task, err := domain.NewTask(
		reminder.UserID(),
		reminder.Title(),
		domain.CategoryWork,
		date,
		slot.StartString(),
		slot.EndString(),
	)
	if err != nil {
		return domain.TaskID{}, err
	}

	if err := uc.taskRepo.Save(ctx, task); err != nil {
		return domain.TaskID{}, err
	}

	reminder.LinkTask(task.ID())

	if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
		return domain.TaskID{}, err
	}

	return task.ID(), nil
}
