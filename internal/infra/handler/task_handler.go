package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riloax/weekplanner/internal/app"
)

type TaskHandler struct {
	useCase app.TaskUseCase
}

func NewTaskHandler(useCase app.TaskUseCase) *TaskHandler {
	return &TaskHandler{
		useCase: useCase,
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	slog.Info("handling create task request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})

		return
	}

	input := app.CreateTaskInput{
		UserID:   CurrentUserID(c),
		Name:     req.Name,
		Category: req.Category,
		Date:     req.Date,
		Start:    req.Start,
		End:      req.End,
	}

	output, err := h.useCase.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("task created successfully",
		"task_id", output.ID,
	)
	c.JSON(http.StatusCreated, TaskFromDTO(output))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	output, err := h.useCase.ListTasks(c.Request.Context(), app.ListTasksInput{
		UserID: CurrentUserID(c),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, TasksFromDTOs(output))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling move task request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"task_id", id,
	)

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})

		return
	}

	output, err := h.useCase.MoveTask(c.Request.Context(), app.MoveTaskInput{
		ID:    id,
		Date:  req.Date,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("task moved successfully",
		"task_id", id,
		"date", output.Date,
		"start", output.Start,
	)
	c.JSON(http.StatusOK, TaskFromDTO(output))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete task request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"task_id", id,
	)

	if err := h.useCase.DeleteTask(c.Request.Context(), app.DeleteTaskInput{ID: id}); err != nil {
		respondError(c, err)

		return
	}

	slog.Info("task deleted successfully",
		"task_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.PATCH("/:id/position", h.MoveTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
