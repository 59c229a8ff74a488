package repository

import (
	"time"

	"github.com/Riloax/weekplanner/internal/domain"
)

type ReminderModel struct {
	ID              string     `gorm:"column:id;type:uuid;primaryKey"`
	Title           string     `gorm:"column:title;type:varchar(255);not null"`
	UserID          string     `gorm:"column:user_id;type:uuid;not null;index:idx_reminders_user_id"`
	GroupID         *string    `gorm:"column:group_id;type:uuid"`
	Source          string     `gorm:"column:source;type:varchar(32);not null"`
	DueDate         *time.Time `gorm:"column:due_date;type:date"`
	EstimateMinutes int        `gorm:"column:estimate_minutes;type:integer;not null;default:0"`
	Priority        int        `gorm:"column:priority;type:integer;not null"`
	Completed       bool       `gorm:"column:completed;type:boolean;not null;default:false;index:idx_reminders_completed"`
	FinishedAt      *time.Time `gorm:"column:finished_at;type:timestamptz"`
	EventLink       *string    `gorm:"column:event_link;type:uuid;index:idx_reminders_event_link"`
	CreatedAt       time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

func (m *ReminderModel) ToEntity() (*domain.Reminder, error) {
	reminderID, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	var groupID domain.GroupID
	if m.GroupID != nil {
		groupID, err = domain.GroupIDFromString(*m.GroupID)
		if err != nil {
			return nil, err
		}
	}

	source, err := domain.NewSource(m.Source)
	if err != nil {
		return nil, err
	}

	var dueDate domain.Date
	if m.DueDate != nil {
		dueDate = domain.DateOf(*m.DueDate)
	}

	priority, err := domain.NewPriority(m.Priority)
	if err != nil {
		return nil, err
	}

	var eventLink domain.TaskID
	if m.EventLink != nil {
		eventLink, err = domain.TaskIDFromString(*m.EventLink)
		if err != nil {
			return nil, err
		}
	}

	return domain.ReconstituteReminder(
		reminderID,
		m.Title,
		userID,
		groupID,
		source,
		dueDate,
		m.EstimateMinutes,
		priority,
		m.Completed,
		m.FinishedAt,
		eventLink,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func ReminderFromEntity(e *domain.Reminder) *ReminderModel {
	m := &ReminderModel{
		ID:              e.ID().String(),
		Title:           e.Title(),
		UserID:          e.UserID().String(),
		Source:          string(e.Source()),
		EstimateMinutes: e.EstimateMinutes(),
		Priority:        e.Priority().Int(),
		Completed:       e.IsCompleted(),
		FinishedAt:      e.FinishedAt(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}

	if !e.GroupID().IsZero() {
		gid := e.GroupID().String()
		m.GroupID = &gid
	}

	if !e.DueDate().IsZero() {
		due := e.DueDate().Time()
		m.DueDate = &due
	}

	if e.IsLinked() {
		link := e.EventLink().String()
		m.EventLink = &link
	}

	return m
}
