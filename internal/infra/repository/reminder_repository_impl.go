package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Riloax/weekplanner/internal/domain"
)

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepositoryImpl{
		db: db,
	}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	m := ReminderFromEntity(reminder)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save reminder to database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *reminderRepositoryImpl) FindByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	var m ReminderModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReminderNotFound
		}

		slog.Error("failed to find reminder by ID",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *reminderRepositoryImpl) FindByUser(ctx context.Context, userID domain.UserID) ([]*domain.Reminder, error) {
	var models []ReminderModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND source <> ?", userID.String(), string(domain.SourceGroupCanonical)).
		Order("created_at ASC").
		Find(&models)

	if result.Error != nil {
		slog.Error("failed to find reminders by user",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return toReminderEntities(models)
}

func (r *reminderRepositoryImpl) FindSchedulable(ctx context.Context, userID domain.UserID) ([]*domain.Reminder, error) {
	var models []ReminderModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND source <> ?", userID.String(), string(domain.SourceGroupCanonical)).
		Where("completed = false AND due_date IS NOT NULL AND estimate_minutes > 0").
		Order("created_at ASC").
		Find(&models)

	if result.Error != nil {
		slog.Error("failed to find schedulable reminders",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return toReminderEntities(models)
}

func (r *reminderRepositoryImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	m := ReminderFromEntity(reminder)

	// Select forces writes of fields cleared back to NULL or false, which
	// Updates would otherwise skip as zero values.
	result := r.db.WithContext(ctx).Model(&ReminderModel{}).
		Where("id = ?", m.ID).
		Select("title", "due_date", "estimate_minutes", "priority", "completed", "finished_at", "event_link", "updated_at").
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update reminder in database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ReminderModel{})
	if result.Error != nil {
		slog.Error("failed to delete reminder from database",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepositoryImpl) ClearEventLink(ctx context.Context, taskID domain.TaskID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&ReminderModel{}).
		Where("event_link = ?", taskID.String()).
		Updates(map[string]any{
			"event_link": nil,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		slog.Error("failed to clear event links",
			"task_id", taskID.String(),
			"error", result.Error,
		)

		return 0, result.Error
	}

	slog.Debug("event links cleared",
		"task_id", taskID.String(),
		"count", result.RowsAffected,
	)

	return result.RowsAffected, nil
}

func (r *reminderRepositoryImpl) SchedulableUserIDs(ctx context.Context) ([]domain.UserID, error) {
	var ids []string

	result := r.db.WithContext(ctx).Model(&ReminderModel{}).
		Where("source <> ?", string(domain.SourceGroupCanonical)).
		Where("completed = false AND due_date IS NOT NULL AND estimate_minutes > 0").
		Distinct("user_id").
		Pluck("user_id", &ids)

	if result.Error != nil {
		slog.Error("failed to list schedulable user IDs",
			"error", result.Error,
		)

		return nil, result.Error
	}

	userIDs := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		userID, err := domain.UserIDFromString(id)
		if err != nil {
			return nil, err
		}

		userIDs = append(userIDs, userID)
	}

	return userIDs, nil
}

func (r *reminderRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.ReminderRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.Error("failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	txRepo := &reminderRepositoryImpl{db: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.Error("failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.Error("failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}

func toReminderEntities(models []ReminderModel) ([]*domain.Reminder, error) {
	reminders := make([]*domain.Reminder, 0, len(models))

	for _, m := range models {
		reminder, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"reminder_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		reminders = append(reminders, reminder)
	}

	return reminders, nil
}
