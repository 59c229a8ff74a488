package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riloax/weekplanner/internal/app"
	"github.com/Riloax/weekplanner/internal/domain"
	"github.com/Riloax/weekplanner/internal/infra/handler"
	"github.com/Riloax/weekplanner/internal/testutil"
)

func newUserIDString() string {
	return uuid.Must(uuid.NewV7()).String()
}

func setupTestRouter(t *testing.T) (*gin.Engine, *testutil.MemReminderRepository, *testutil.MemTaskRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reminderRepo := testutil.NewMemReminderRepository()
	taskRepo := testutil.NewMemTaskRepository()

	reminderUseCase := app.NewReminderUseCase(reminderRepo, nil)
	taskUseCase := app.NewTaskUseCase(taskRepo, reminderRepo, nil)
	scheduleUseCase := app.NewScheduleUseCase(reminderRepo, taskRepo, nil, domain.DefaultWindow)
	snapshotUseCase := app.NewSnapshotUseCase(reminderRepo, taskRepo)

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(handler.RequireUser())
	handler.NewReminderHandler(reminderUseCase).RegisterRoutes(api)
	handler.NewTaskHandler(taskUseCase).RegisterRoutes(api)
	handler.NewScheduleHandler(scheduleUseCase).RegisterRoutes(api)
	handler.NewSnapshotHandler(snapshotUseCase, nil).RegisterRoutes(api)

	return router, reminderRepo, taskRepo
}

func doJSON(t *testing.T, router *gin.Engine, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if userID != "" {
		req.Header.Set("x-user-id", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func createReminderViaAPI(t *testing.T, router *gin.Engine, userID string, body map[string]any) handler.ReminderResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reminders", userID, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp handler.ReminderResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestCreateReminderHandlerSuccess(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	userID := newUserIDString()

	tests := []struct {
		name        string
		requestBody map[string]any
		wantDueDate string
	}{
		{
			name: "with due date and estimate",
			requestBody: map[string]any{
				"title":            "write report",
				"due_date":         "2026-03-10",
				"estimate_minutes": 60,
				"priority":         2,
			},
			wantDueDate: "2026-03-10",
		},
		{
			name: "inbox reminder without due date",
			requestBody: map[string]any{
				"title": "someday idea",
			},
			wantDueDate: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/reminders", userID, tt.requestBody)

			assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

			var resp handler.ReminderResponse

			err := json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.NotEmpty(t, resp.ID)
			assert.Equal(t, userID, resp.UserID)
			assert.Equal(t, tt.wantDueDate, resp.DueDate)
			assert.False(t, resp.Completed)
		})
	}
}

func TestCreateReminderHandlerError(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	userID := newUserIDString()

	tests := []struct {
		name           string
		requestBody    map[string]any
		expectedStatus int
	}{
		{
			name:           "missing title",
			requestBody:    map[string]any{"due_date": "2026-03-10"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid due date",
			requestBody: map[string]any{
				"title":    "broken",
				"due_date": "10/03/2026",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "priority out of range",
			requestBody: map[string]any{
				"title":    "too important",
				"priority": 9,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/reminders", userID, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp handler.ErrorResponse

			err := json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestReminderHandlerUnauthenticated(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	tests := []struct {
		name   string
		userID string
	}{
		{
			name:   "missing header",
			userID: "",
		},
		{
			name:   "malformed user id",
			userID: "not-a-uuid",
		},
		{
			name:   "non v7 uuid",
			userID: uuid.New().String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, "/api/v1/reminders", tt.userID, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCreateGroupReminderHandlerFanOut(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	creator := newUserIDString()
	memberA := newUserIDString()
	memberB := newUserIDString()
	groupID := uuid.Must(uuid.NewV7()).String()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/groups/"+groupID+"/reminders", creator, map[string]any{
		"member_ids":       []string{memberA, memberB},
		"title":            "prepare demo",
		"due_date":         "2026-04-01",
		"estimate_minutes": 30,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp handler.RemindersResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// One copy per member; the canonical record is internal bookkeeping and
	// not part of the response.
	assert.Equal(t, int32(2), resp.Count)

	for _, r := range resp.Reminders {
		assert.Equal(t, groupID, r.GroupID)
		assert.Equal(t, "prepare demo", r.Title)
	}

	// Each member sees exactly their own copy.
	listRec := doJSON(t, router, http.MethodGet, "/api/v1/reminders", memberA, nil)
	require.Equal(t, http.StatusOK, listRec.Code)

	var listResp handler.RemindersResponse

	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &listResp))
	assert.Equal(t, int32(1), listResp.Count)
	assert.Equal(t, memberA, listResp.Reminders[0].UserID)
}

func TestCompleteAndReopenReminderHandler(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	userID := newUserIDString()

	created := createReminderViaAPI(t, router, userID, map[string]any{
		"title":            "finish review",
		"due_date":         "2026-03-12",
		"estimate_minutes": 45,
	})

	completeRec := doJSON(t, router, http.MethodPost, "/api/v1/reminders/"+created.ID+"/complete", userID, nil)
	require.Equal(t, http.StatusOK, completeRec.Code, completeRec.Body.String())

	var completed handler.ReminderResponse

	require.NoError(t, json.Unmarshal(completeRec.Body.Bytes(), &completed))
	assert.True(t, completed.Completed)
	assert.NotNil(t, completed.FinishedAt)

	// Completing twice is idempotent.
	again := doJSON(t, router, http.MethodPost, "/api/v1/reminders/"+created.ID+"/complete", userID, nil)
	assert.Equal(t, http.StatusOK, again.Code)

	reopenRec := doJSON(t, router, http.MethodPost, "/api/v1/reminders/"+created.ID+"/reopen", userID, nil)
	require.Equal(t, http.StatusOK, reopenRec.Code)

	var reopened handler.ReminderResponse

	require.NoError(t, json.Unmarshal(reopenRec.Body.Bytes(), &reopened))
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.FinishedAt)
}

func TestCompleteReminderHandlerNotFound(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	userID := newUserIDString()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reminders/"+domain.NewReminderID().String()+"/complete", userID, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteReminderHandlerIdempotent(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	userID := newUserIDString()

	created := createReminderViaAPI(t, router, userID, map[string]any{
		"title": "short-lived",
	})

	first := doJSON(t, router, http.MethodDelete, "/api/v1/reminders/"+created.ID, userID, nil)
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := doJSON(t, router, http.MethodDelete, "/api/v1/reminders/"+created.ID, userID, nil)
	assert.Equal(t, http.StatusNoContent, second.Code)
}

func TestListRemindersSchedulableFilter(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	userID := newUserIDString()

	createReminderViaAPI(t, router, userID, map[string]any{
		"title":            "schedulable",
		"due_date":         "2026-03-15",
		"estimate_minutes": 30,
	})
	createReminderViaAPI(t, router, userID, map[string]any{
		"title": "checklist item without estimate",
	})

	allRec := doJSON(t, router, http.MethodGet, "/api/v1/reminders", userID, nil)
	require.Equal(t, http.StatusOK, allRec.Code)

	var allResp handler.RemindersResponse

	require.NoError(t, json.Unmarshal(allRec.Body.Bytes(), &allResp))
	assert.Equal(t, int32(2), allResp.Count)

	filteredRec := doJSON(t, router, http.MethodGet, "/api/v1/reminders?schedulable=true", userID, nil)
	require.Equal(t, http.StatusOK, filteredRec.Code)

	var filteredResp handler.RemindersResponse

	require.NoError(t, json.Unmarshal(filteredRec.Body.Bytes(), &filteredResp))
	assert.Equal(t, int32(1), filteredResp.Count)
	assert.Equal(t, "schedulable", filteredResp.Reminders[0].Title)
}
