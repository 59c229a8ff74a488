package app

import (
	"time"

	"github.com/Riloax/weekplanner/internal/domain"
)

type ReminderOutput struct {
	ID              string
	Title           string
	UserID          string
	GroupID         string
	Source          string
	DueDate         string
	EstimateMinutes int
	Priority        int
	Completed       bool
	FinishedAt      *time.Time
	EventLink       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type RemindersOutput struct {
	Reminders []ReminderOutput
	Count     int32
}

func ReminderFromEntity(r *domain.Reminder) ReminderOutput {
	out := ReminderOutput{
		ID:              r.ID().String(),
		Title:           r.Title(),
		UserID:          r.UserID().String(),
		Source:          string(r.Source()),
		EstimateMinutes: r.EstimateMinutes(),
		Priority:        r.Priority().Int(),
		Completed:       r.IsCompleted(),
		FinishedAt:      r.FinishedAt(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}

	if !r.GroupID().IsZero() {
		out.GroupID = r.GroupID().String()
	}

	if !r.DueDate().IsZero() {
		out.DueDate = r.DueDate().String()
	}

	if r.IsLinked() {
		out.EventLink = r.EventLink().String()
	}

	return out
}

func RemindersFromEntities(reminders []*domain.Reminder) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, ReminderFromEntity(r))
	}

	return RemindersOutput{
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}
