package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riloax/weekplanner/internal/app"
)

type ReminderHandler struct {
	useCase app.ReminderUseCase
}

func NewReminderHandler(useCase app.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	slog.Info("handling create reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateReminderRequest
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

	input := app.CreateReminderInput{
		UserID:          CurrentUserID(c),
		Title:           req.Title,
		DueDate:         req.DueDate,
		EstimateMinutes: req.EstimateMinutes,
		Priority:        req.Priority,
	}

	output, err := h.useCase.CreateReminder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("reminder created successfully",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusCreated, ReminderFromDTO(output))
}

func (h *ReminderHandler) CreateGroupReminder(c *gin.Context) {
	groupID := c.Param("groupID")

	slog.Info("handling create group reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"group_id", groupID,
	)

	var req CreateGroupReminderRequest
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

	input := app.CreateGroupReminderInput{
		GroupID:         groupID,
		CreatorID:       CurrentUserID(c),
		MemberIDs:       req.MemberIDs,
		Title:           req.Title,
		DueDate:         req.DueDate,
		EstimateMinutes: req.EstimateMinutes,
		Priority:        req.Priority,
	}

	output, err := h.useCase.CreateGroupReminder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("group reminder created successfully",
		"group_id", groupID,
		"count", output.Count,
	)
	c.JSON(http.StatusCreated, RemindersFromDTOs(output))
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	var req ListRemindersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})

		return
	}

	output, err := h.useCase.ListReminders(c.Request.Context(), app.ListRemindersInput{
		UserID:          CurrentUserID(c),
		SchedulableOnly: req.SchedulableOnly,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, RemindersFromDTOs(output))
}

func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	id := c.Param("id")

	output, err := h.useCase.CompleteReminder(c.Request.Context(), app.CompleteReminderInput{ID: id})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("reminder completed",
		"reminder_id", id,
	)
	c.JSON(http.StatusOK, ReminderFromDTO(output))
}

func (h *ReminderHandler) ReopenReminder(c *gin.Context) {
	id := c.Param("id")

	output, err := h.useCase.ReopenReminder(c.Request.Context(), app.ReopenReminderInput{ID: id})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("reminder reopened",
		"reminder_id", id,
	)
	c.JSON(http.StatusOK, ReminderFromDTO(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	if err := h.useCase.DeleteReminder(c.Request.Context(), app.DeleteReminderInput{ID: id}); err != nil {
		respondError(c, err)

		return
	}

	slog.Info("reminder deleted successfully",
		"reminder_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
		reminders.POST("/:id/complete", h.CompleteReminder)
		reminders.POST("/:id/reopen", h.ReopenReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
	}

	router.POST("/groups/:groupID/reminders", h.CreateGroupReminder)
}
