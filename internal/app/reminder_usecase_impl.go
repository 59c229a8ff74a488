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

type reminderUseCaseImpl struct {
	repo      domain.ReminderRepository
	publisher pubsub.Publisher
}

func NewReminderUseCase(repo domain.ReminderRepository, publisher pubsub.Publisher) ReminderUseCase {
	return &reminderUseCaseImpl{
		repo:      repo,
		publisher: publisher,
	}
}

func (uc *reminderUseCaseImpl) CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error) {
	slog.Debug("creating reminder",
		"user_id", input.UserID,
		"title", input.Title,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("user_id", err.Error())
	}

	dueDate, estimate, priority, err := parseReminderFields(input.DueDate, input.EstimateMinutes, input.Priority)
	if err != nil {
		return ReminderOutput{}, err
	}

	reminder, err := domain.NewReminder(input.Title, userID, dueDate, estimate, priority)
	if err != nil {
		return ReminderOutput{}, NewValidationError("title", err.Error())
	}

	if err := uc.repo.Save(ctx, reminder); err != nil {
		slog.Error("failed to save reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
		Kind:       pubsub.KindReminder,
		Action:     pubsub.ActionCreated,
		UserID:     input.UserID,
		EntityID:   reminder.ID().String(),
		OccurredAt: time.Now(),
	})

	slog.Debug("reminder created",
		"reminder_id", reminder.ID().String(),
	)

	return ReminderFromEntity(reminder), nil
}

func (uc *reminderUseCaseImpl) CreateGroupReminder(ctx context.Context, input CreateGroupReminderInput) (RemindersOutput, error) {
	slog.Debug("creating group reminder",
		"group_id", input.GroupID,
		"member_count", len(input.MemberIDs),
	)

	if len(input.MemberIDs) == 0 {
		return RemindersOutput{}, NewValidationError("member_ids", "at least one member is required")
	}

	groupID, err := domain.GroupIDFromString(input.GroupID)
	if err != nil {
		return RemindersOutput{}, NewValidationError("group_id", err.Error())
	}

	creatorID, err := domain.UserIDFromString(input.CreatorID)
	if err != nil {
		return RemindersOutput{}, NewValidationError("creator_id", err.Error())
	}

	members := make([]domain.UserID, 0, len(input.MemberIDs))
	for i, m := range input.MemberIDs {
		memberID, err := domain.UserIDFromString(m)
		if err != nil {
			return RemindersOutput{}, NewValidationError(
				fmt.Sprintf("member_ids[%d]", i), err.Error(),
			)
		}

		members = append(members, memberID)
	}

	dueDate, estimate, priority, err := parseReminderFields(input.DueDate, input.EstimateMinutes, input.Priority)
	if err != nil {
		return RemindersOutput{}, err
	}

	canonical, err := domain.NewGroupReminder(input.Title, creatorID, groupID, dueDate, estimate, priority)
	if err != nil {
		return RemindersOutput{}, NewValidationError("title", err.Error())
	}

	// Fan-out on write: the canonical record plus one copy per member,
	// committed together. O(members) write amplification by design.
	copies := make([]*domain.Reminder, 0, len(members))
	for _, member := range members {
		copies = append(copies, canonical.FanOut(member))
	}

	if err := uc.repo.WithTx(ctx, func(txRepo domain.ReminderRepository) error {
		if err := txRepo.Save(ctx, canonical); err != nil {
			return err
		}

		for _, c := range copies {
			if err := txRepo.Save(ctx, c); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		slog.Error("failed to save group reminder fan-out",
			"error", err,
			"group_id", input.GroupID,
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	for _, c := range copies {
		publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
			Kind:       pubsub.KindReminder,
			Action:     pubsub.ActionCreated,
			UserID:     c.UserID().String(),
			EntityID:   c.ID().String(),
			OccurredAt: time.Now(),
		})
	}

	slog.Info("group reminder created",
		"group_id", input.GroupID,
		"canonical_id", canonical.ID().String(),
		"fan_out_count", len(copies),
	)

	// The canonical record is internal bookkeeping; callers get the copies
	// the members will actually see.
	return RemindersFromEntities(copies), nil
}

func (uc *reminderUseCaseImpl) ListReminders(ctx context.Context, input ListRemindersInput) (RemindersOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return RemindersOutput{}, NewValidationError("user_id", err.Error())
	}

	var reminders []*domain.Reminder
	if input.SchedulableOnly {
		reminders, err = uc.repo.FindSchedulable(ctx, userID)
	} else {
		reminders, err = uc.repo.FindByUser(ctx, userID)
	}

	if err != nil {
		slog.Error("failed to list reminders",
			"error", err,
			"user_id", input.UserID,
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return RemindersFromEntities(reminders), nil
}

func (uc *reminderUseCaseImpl) CompleteReminder(ctx context.Context, input CompleteReminderInput) (ReminderOutput, error) {
	return uc.toggleCompletion(ctx, input.ID, true)
}

func (uc *reminderUseCaseImpl) ReopenReminder(ctx context.Context, input ReopenReminderInput) (ReminderOutput, error) {
	return uc.toggleCompletion(ctx, input.ID, false)
}

func (uc *reminderUseCaseImpl) toggleCompletion(ctx context.Context, id string, complete bool) (ReminderOutput, error) {
	reminderID, err := domain.ReminderIDFromString(id)
	if err != nil {
		return ReminderOutput{}, NewValidationError("id", err.Error())
	}

	reminder, err := uc.repo.FindByID(ctx, reminderID)
	if err != nil {
		slog.Warn("reminder not found for completion toggle",
			"reminder_id", id,
			"error", err,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if complete {
		err = reminder.Complete()
	} else {
		err = reminder.Reopen()
	}

	if err != nil {
		// Toggling to the state the reminder is already in is idempotent.
		if !errors.Is(err, domain.ErrAlreadyCompleted) && !errors.Is(err, domain.ErrNotCompleted) {
			return ReminderOutput{}, NewValidationError("completed", err.Error())
		}

		slog.Info("completion toggle already applied (idempotency)",
			"reminder_id", id,
		)

		return ReminderFromEntity(reminder), nil
	}

	if err := uc.repo.Update(ctx, reminder); err != nil {
		slog.Error("failed to update reminder completion",
			"error", err,
			"reminder_id", id,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
		Kind:       pubsub.KindReminder,
		Action:     pubsub.ActionUpdated,
		UserID:     reminder.UserID().String(),
		EntityID:   id,
		OccurredAt: time.Now(),
	})

	return ReminderFromEntity(reminder), nil
}

func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input DeleteReminderInput) error {
	slog.Debug("deleting reminder",
		"reminder_id", input.ID,
	)

	reminderID, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	reminder, err := uc.repo.FindByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			slog.Info("reminder not found for deletion (idempotency)",
				"reminder_id", input.ID,
			)

			return nil
		}

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	// The linked task is ground truth on the calendar; it survives the
	// reminder's deletion.
	if err := uc.repo.Delete(ctx, reminderID); err != nil {
		slog.Error("failed to delete reminder",
			"error", err,
			"reminder_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	publishChange(ctx, uc.publisher, pubsub.ChangeEvent{
		Kind:       pubsub.KindReminder,
		Action:     pubsub.ActionDeleted,
		UserID:     reminder.UserID().String(),
		EntityID:   input.ID,
		OccurredAt: time.Now(),
	})

	slog.Debug("reminder deleted",
		"reminder_id", input.ID,
	)

	return nil
}

func parseReminderFields(dueDate string, estimateMinutes, priority int) (domain.Date, int, domain.Priority, error) {
	var due domain.Date

	if dueDate != "" {
		parsed, err := domain.DateFromString(dueDate)
		if err != nil {
			return domain.Date{}, 0, 0, NewValidationError("due_date", err.Error())
		}

		due = parsed
	}

	if estimateMinutes < 0 {
		return domain.Date{}, 0, 0, NewValidationError("estimate_minutes", "must not be negative")
	}

	prio, err := domain.NewPriority(priority)
	if err != nil {
		return domain.Date{}, 0, 0, NewValidationError("priority", err.Error())
	}

	return due, estimateMinutes, prio, nil
}
