package repository

import (
	"time"

	"github.com/Riloax/weekplanner/internal/domain"
)

type TaskModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index:idx_tasks_user_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Category  string    `gorm:"column:category;type:varchar(32);not null"`
	Date      time.Time `gorm:"column:date;type:date;not null;index:idx_tasks_date"`
	StartTime string    `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime   string    `gorm:"column:end_time;type:varchar(5);not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

func (m *TaskModel) ToEntity() (*domain.Task, error) {
	taskID, err := domain.TaskIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	category, err := domain.NewCategory(m.Category)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteTask(
		taskID,
		userID,
		m.Name,
		category,
		domain.DateOf(m.Date),
		m.StartTime,
		m.EndTime,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func TaskFromEntity(e *domain.Task) *TaskModel {
	return &TaskModel{
		ID:        e.ID().String(),
		UserID:    e.UserID().String(),
		Name:      e.Name(),
		Category:  string(e.Category()),
		Date:      e.Date().Time(),
		StartTime: e.Start(),
		EndTime:   e.End(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}
