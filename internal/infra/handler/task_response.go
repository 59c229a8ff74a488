package handler

import (
	"time"

	"github.com/Riloax/weekplanner/internal/app"
)

type TaskResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int32          `json:"count"`
}

func TaskFromDTO(output app.TaskOutput) TaskResponse {
	return TaskResponse{
		ID:        output.ID,
		UserID:    output.UserID,
		Name:      output.Name,
		Category:  output.Category,
		Date:      output.Date,
		Start:     output.Start,
		End:       output.End,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

func TasksFromDTOs(output app.TasksOutput) TasksResponse {
	tasks := make([]TaskResponse, 0, len(output.Tasks))
	for _, t := range output.Tasks {
		tasks = append(tasks, TaskFromDTO(t))
	}

	return TasksResponse{
		Tasks: tasks,
		Count: output.Count,
	}
}
