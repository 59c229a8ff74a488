package app

import (
	"context"

	"github.com/Riloax/weekplanner/internal/domain"
)

type ScheduleUseCase interface {
	AutoSchedule(ctx context.Context, input AutoScheduleInput) (AutoScheduleOutput, error)
}

type AutoScheduleInput struct {
	UserID string
	// Today overrides the scheduling anchor date; zero means the current day.
	Today domain.Date
}

type PlacedReminder struct {
	ReminderID string
	TaskID     string
	Date       string
	Start      string
	End        string
}

type AutoScheduleOutput struct {
	// Placed lists reminders that received a slot in this run.
	Placed []PlacedReminder
	// Unplaced lists reminders with no feasible slot before their due date.
	// A normal negative result, not a failure.
	Unplaced []string
	// Failed lists reminders whose materialization hit a persistence error.
	Failed []string
}
