package app

import (
	"context"
)

type TaskUseCase interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (TaskOutput, error)
	ListTasks(ctx context.Context, input ListTasksInput) (TasksOutput, error)
	// MoveTask relocates a task to a new date and time range, identity
	// preserved. Backs drag-relocation on the calendar grid.
	MoveTask(ctx context.Context, input MoveTaskInput) (TaskOutput, error)
	// DeleteTask removes the task and clears the event link of every
	// reminder pointing at it.
	DeleteTask(ctx context.Context, input DeleteTaskInput) error
}
