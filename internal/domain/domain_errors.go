package domain

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrTaskNotFound     = errors.New("task not found")

	ErrInvalidTimeFormat = errors.New("invalid time: expected HH:MM")
	ErrInvalidDate       = errors.New("invalid date: expected YYYY-MM-DD")
	ErrInvalidCategory   = errors.New("invalid task category")
	ErrInvalidPriority   = errors.New("invalid priority: must be between 1 and 5")
	ErrInvalidSource     = errors.New("invalid reminder source")
	ErrInvalidWindow     = errors.New("invalid scheduling window: start must be before end")

	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrEmptyTaskName = errors.New("task name must not be empty")

	ErrAlreadyCompleted = errors.New("reminder is already completed")
	ErrNotCompleted     = errors.New("reminder is not completed")

	ErrInvalidReminderID = errors.New("invalid reminder ID")
)
