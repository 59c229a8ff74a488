package handler

type CreateTaskRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

type MoveTaskRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}
