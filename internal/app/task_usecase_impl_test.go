package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riloax/weekplanner/internal/app"
	"github.com/Riloax/weekplanner/internal/domain"
	"github.com/Riloax/weekplanner/internal/testutil"
)

func setupTaskTest(t *testing.T) (*testutil.MemTaskRepository, *testutil.MemReminderRepository, app.TaskUseCase) {
	t.Helper()

	taskRepo := testutil.NewMemTaskRepository()
	reminderRepo := testutil.NewMemReminderRepository()
	useCase := app.NewTaskUseCase(taskRepo, reminderRepo, nil)

	return taskRepo, reminderRepo, useCase
}

func TestCreateTaskSuccess(t *testing.T) {
	_, _, useCase := setupTaskTest(t)

	out, err := useCase.CreateTask(context.Background(), app.CreateTaskInput{
		UserID: newUserIDString(),
		Name:   "calculus lecture",
		Date:   "2025-06-09",
		Start:  "10:00",
		End:    "11:30",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, string(domain.DefaultCategory), out.Category, "category defaults when omitted")
	assert.Equal(t, "2025-06-09", out.Date)
}

func TestCreateTaskValidation(t *testing.T) {
	tests := []struct {
		name  string
		input app.CreateTaskInput
	}{
		{name: "bad user", input: app.CreateTaskInput{UserID: "x", Name: "a", Date: "2025-06-09", Start: "10:00", End: "11:00"}},
		{name: "empty name", input: app.CreateTaskInput{UserID: newUserIDString(), Date: "2025-06-09", Start: "10:00", End: "11:00"}},
		{name: "unknown category", input: app.CreateTaskInput{UserID: newUserIDString(), Name: "a", Category: "gaming", Date: "2025-06-09", Start: "10:00", End: "11:00"}},
		{name: "bad date", input: app.CreateTaskInput{UserID: newUserIDString(), Name: "a", Date: "June 9th", Start: "10:00", End: "11:00"}},
		{name: "bad time", input: app.CreateTaskInput{UserID: newUserIDString(), Name: "a", Date: "2025-06-09", Start: "10am", End: "11:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, useCase := setupTaskTest(t)

			_, err := useCase.CreateTask(context.Background(), tt.input)

			assert.True(t, app.IsValidationError(err))
		})
	}
}

func TestMoveTaskRelocatesInPlace(t *testing.T) {
	taskRepo, _, useCase := setupTaskTest(t)
	userID := mustUserID(t, newUserIDString())

	task := saveTask(t, taskRepo, userID, "2025-06-09", "18:00", "19:00")

	out, err := useCase.MoveTask(context.Background(), app.MoveTaskInput{
		ID:    task.ID().String(),
		Date:  "2025-06-11",
		Start: "20:00",
		End:   "21:00",
	})
	require.NoError(t, err)

	assert.Equal(t, task.ID().String(), out.ID)
	assert.Equal(t, "2025-06-11", out.Date)
	assert.Equal(t, "20:00", out.Start)
	require.Len(t, taskRepo.All(), 1)
}

func TestMoveTaskNotFound(t *testing.T) {
	_, _, useCase := setupTaskTest(t)

	_, err := useCase.MoveTask(context.Background(), app.MoveTaskInput{
		ID:    uuid.NewString(),
		Date:  "2025-06-11",
		Start: "20:00",
		End:   "21:00",
	})

	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDeleteTaskClearsReminderLinks(t *testing.T) {
	taskRepo, reminderRepo, useCase := setupTaskTest(t)
	userStr := newUserIDString()
	userID := mustUserID(t, userStr)

	task := saveTask(t, taskRepo, userID, "2025-06-09", "18:00", "19:00")

	// Two reminders point at the task: a personal one and a fan-out copy.
	first := saveReminder(t, reminderRepo, userID, "write report", "2025-06-10", 30)
	second := saveReminder(t, reminderRepo, mustUserID(t, newUserIDString()), "group copy", "2025-06-10", 30)
	first.LinkTask(task.ID())
	second.LinkTask(task.ID())

	require.NoError(t, useCase.DeleteTask(context.Background(), app.DeleteTaskInput{
		ID: task.ID().String(),
	}))

	assert.Empty(t, taskRepo.All())
	assert.False(t, first.IsLinked(), "link cleared on task deletion")
	assert.False(t, second.IsLinked(), "all copies are scanned, not just the owner's")
}

func TestDeleteTaskClearFailureKeepsTask(t *testing.T) {
	taskRepo, reminderRepo, useCase := setupTaskTest(t)
	userID := mustUserID(t, newUserIDString())

	task := saveTask(t, taskRepo, userID, "2025-06-09", "18:00", "19:00")
	reminder := saveReminder(t, reminderRepo, userID, "write report", "2025-06-10", 30)
	reminder.LinkTask(task.ID())

	reminderRepo.ClearErr = errors.New("connection reset")

	err := useCase.DeleteTask(context.Background(), app.DeleteTaskInput{ID: task.ID().String()})

	require.ErrorIs(t, err, app.ErrInternalError)
	assert.Len(t, taskRepo.All(), 1, "a failed link sweep must not leave the task half-deleted")
	assert.True(t, reminder.IsLinked())

	// Once the store recovers the same call completes the whole deletion.
	reminderRepo.ClearErr = nil

	require.NoError(t, useCase.DeleteTask(context.Background(), app.DeleteTaskInput{ID: task.ID().String()}))
	assert.Empty(t, taskRepo.All())
	assert.False(t, reminder.IsLinked())
}

func TestDeleteTaskRetryClearsDanglingLinks(t *testing.T) {
	_, reminderRepo, useCase := setupTaskTest(t)
	userID := mustUserID(t, newUserIDString())

	// The task row is already gone but a reminder still points at it, the
	// state a partially failed deletion leaves behind.
	orphanID := domain.NewTaskID()
	reminder := saveReminder(t, reminderRepo, userID, "write report", "2025-06-10", 30)
	reminder.LinkTask(orphanID)

	require.NoError(t, useCase.DeleteTask(context.Background(), app.DeleteTaskInput{ID: orphanID.String()}))

	assert.False(t, reminder.IsLinked(), "retrying a deletion releases leftover links")
}

func TestDeleteTaskIdempotent(t *testing.T) {
	_, _, useCase := setupTaskTest(t)

	err := useCase.DeleteTask(context.Background(), app.DeleteTaskInput{ID: uuid.NewString()})

	assert.NoError(t, err)
}

func TestSnapshotMergesRemindersAndTasks(t *testing.T) {
	taskRepo, reminderRepo, _ := setupTaskTest(t)
	userStr := newUserIDString()
	userID := mustUserID(t, userStr)

	saveReminder(t, reminderRepo, userID, "write report", "2025-06-10", 30)
	saveTask(t, taskRepo, userID, "2025-06-09", "18:00", "19:00")

	snapshotUC := app.NewSnapshotUseCase(reminderRepo, taskRepo)

	snap, err := snapshotUC.Snapshot(context.Background(), userStr)
	require.NoError(t, err)

	assert.Equal(t, int32(1), snap.Reminders.Count)
	assert.Equal(t, int32(1), snap.Tasks.Count)
}
