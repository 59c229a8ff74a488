package handler

import (
	"time"

	"github.com/Riloax/weekplanner/internal/app"
)

type ReminderResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	UserID          string     `json:"user_id"`
	GroupID         string     `json:"group_id,omitempty"`
	Source          string     `json:"source"`
	DueDate         string     `json:"due_date,omitempty"`
	EstimateMinutes int        `json:"estimate_minutes"`
	Priority        int        `json:"priority"`
	Completed       bool       `json:"completed"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	EventLink       string     `json:"event_link,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
}

func ReminderFromDTO(output app.ReminderOutput) ReminderResponse {
	return ReminderResponse{
		ID:              output.ID,
		Title:           output.Title,
		UserID:          output.UserID,
		GroupID:         output.GroupID,
		Source:          output.Source,
		DueDate:         output.DueDate,
		EstimateMinutes: output.EstimateMinutes,
		Priority:        output.Priority,
		Completed:       output.Completed,
		FinishedAt:      output.FinishedAt,
		EventLink:       output.EventLink,
		CreatedAt:       output.CreatedAt,
		UpdatedAt:       output.UpdatedAt,
	}
}

func RemindersFromDTOs(output app.RemindersOutput) RemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, ReminderFromDTO(r))
	}

	return RemindersResponse{
		Reminders: reminders,
		Count:     output.Count,
	}
}
