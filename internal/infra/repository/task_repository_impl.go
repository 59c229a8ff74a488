package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Riloax/weekplanner/internal/domain"
)

type taskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &taskRepositoryImpl{
		db: db,
	}
}

func (r *taskRepositoryImpl) Save(ctx context.Context, task *domain.Task) error {
	m := TaskFromEntity(task)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save task to database",
			"task_id", task.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *taskRepositoryImpl) FindByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	var m TaskModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}

		slog.Error("failed to find task by ID",
			"task_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *taskRepositoryImpl) FindByUser(ctx context.Context, userID domain.UserID) ([]*domain.Task, error) {
	var models []TaskModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("date ASC, start_time ASC").
		Find(&models)

	if result.Error != nil {
		slog.Error("failed to find tasks by user",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	tasks := make([]*domain.Task, 0, len(models))

	for _, m := range models {
		task, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"task_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	m := TaskFromEntity(task)

	result := r.db.WithContext(ctx).Model(&TaskModel{}).Where("id = ?", m.ID).Updates(m)
	if result.Error != nil {
		slog.Error("failed to update task in database",
			"task_id", task.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id domain.TaskID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&TaskModel{})
	if result.Error != nil {
		slog.Error("failed to delete task from database",
			"task_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.TaskRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.Error("failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	txRepo := &taskRepositoryImpl{db: tx}

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
