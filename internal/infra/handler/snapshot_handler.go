package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riloax/weekplanner/internal/app"
	"github.com/Riloax/weekplanner/internal/infra/watch"
)

type SnapshotResponse struct {
	Reminders RemindersResponse `json:"reminders"`
	Tasks     TasksResponse     `json:"tasks"`
}

func SnapshotFromDTO(output app.SnapshotOutput) SnapshotResponse {
	return SnapshotResponse{
		Reminders: RemindersFromDTOs(output.Reminders),
		Tasks:     TasksFromDTOs(output.Tasks),
	}
}

type SnapshotHandler struct {
	useCase app.SnapshotUseCase
	watcher *watch.Watcher
}

// NewSnapshotHandler builds the snapshot endpoints. watcher may be nil when
// no event transport is configured; the stream endpoint then responds 503.
func NewSnapshotHandler(useCase app.SnapshotUseCase, watcher *watch.Watcher) *SnapshotHandler {
	return &SnapshotHandler{
		useCase: useCase,
		watcher: watcher,
	}
}

func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	output, err := h.useCase.Snapshot(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, SnapshotFromDTO(output))
}

// StreamSnapshots serves full snapshots over SSE. The first event is sent
// immediately; every change event for the user triggers another. Clients
// re-render from whole snapshots, so a dropped event is healed by the next.
func (h *SnapshotHandler) StreamSnapshots(c *gin.Context) {
	userID := CurrentUserID(c)

	if h.watcher == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "stream_unavailable",
			Message: "snapshot streaming is not configured",
		})

		return
	}

	slog.Info("starting snapshot stream",
		"user_id", userID,
	)

	snapshots, err := h.watcher.Watch(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)

		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case snapshot, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", SnapshotFromDTO(snapshot))

			return true
		}
	})

	slog.Info("snapshot stream closed",
		"user_id", userID,
	)
}

func (h *SnapshotHandler) RegisterRoutes(router *gin.RouterGroup) {
	snapshot := router.Group("/snapshot")
	{
		snapshot.GET("", h.GetSnapshot)
		snapshot.GET("/stream", h.StreamSnapshots)
	}
}
