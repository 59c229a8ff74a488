package app

import (
	"time"

	"github.com/Riloax/weekplanner/internal/domain"
)

type TaskOutput struct {
	ID        string
	UserID    string
	Name      string
	Category  string
	Date      string
	Start     string
	End       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TasksOutput struct {
	Tasks []TaskOutput
	Count int32
}

func TaskFromEntity(t *domain.Task) TaskOutput {
	return TaskOutput{
		ID:        t.ID().String(),
		UserID:    t.UserID().String(),
		Name:      t.Name(),
		Category:  string(t.Category()),
		Date:      t.Date().String(),
		Start:     t.Start(),
		End:       t.End(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func TasksFromEntities(tasks []*domain.Task) TasksOutput {
	outputs := make([]TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		outputs = append(outputs, TaskFromEntity(t))
	}

	return TasksOutput{
		Tasks: outputs,
		Count: int32(len(outputs)), //nolint:gosec
	}
}
