package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riloax/weekplanner/internal/app"
)

type ScheduleHandler struct {
	useCase app.ScheduleUseCase
}

func NewScheduleHandler(useCase app.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		useCase: useCase,
	}
}

type ScheduleRunResponse struct {
	Placed   []PlacedReminderResponse `json:"placed"`
	Unplaced []string                 `json:"unplaced"`
	Failed   []string                 `json:"failed"`
}

type PlacedReminderResponse struct {
	ReminderID string `json:"reminder_id"`
	TaskID     string `json:"task_id"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

func (h *ScheduleHandler) RunSchedule(c *gin.Context) {
	userID := CurrentUserID(c)

	slog.Info("handling schedule run request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", userID,
	)

	output, err := h.useCase.AutoSchedule(c.Request.Context(), app.AutoScheduleInput{
		UserID: userID,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("schedule run finished",
		"user_id", userID,
		"placed", len(output.Placed),
		"unplaced", len(output.Unplaced),
		"failed", len(output.Failed),
	)
	c.JSON(http.StatusOK, scheduleRunFromDTO(output))
}

func scheduleRunFromDTO(output app.AutoScheduleOutput) ScheduleRunResponse {
	placed := make([]PlacedReminderResponse, 0, len(output.Placed))
	for _, p := range output.Placed {
		placed = append(placed, PlacedReminderResponse{
			ReminderID: p.ReminderID,
			TaskID:     p.TaskID,
			Date:       p.Date,
			Start:      p.Start,
			End:        p.End,
		})
	}

	unplaced := output.Unplaced
	if unplaced == nil {
		unplaced = []string{}
	}

	failed := output.Failed
	if failed == nil {
		failed = []string{}
	}

	return ScheduleRunResponse{
		Placed:   placed,
		Unplaced: unplaced,
		Failed:   failed,
	}
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/schedule/run", h.RunSchedule)
}
