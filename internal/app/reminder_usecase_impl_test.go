package app_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riloax/weekplanner/internal/app"
	"github.com/Riloax/weekplanner/internal/domain"
	"github.com/Riloax/weekplanner/internal/testutil"
)

func setupReminderTest(t *testing.T) (*testutil.MemReminderRepository, app.ReminderUseCase) {
	t.Helper()

	repo := testutil.NewMemReminderRepository()
	useCase := app.NewReminderUseCase(repo, nil)

	return repo, useCase
}

func TestCreateReminderSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    app.CreateReminderInput
		expected func(t *testing.T, out app.ReminderOutput)
	}{
		{
			name: "full reminder",
			input: app.CreateReminderInput{
				Title:           "write report",
				DueDate:         "2025-06-10",
				EstimateMinutes: 30,
				Priority:        2,
			},
			expected: func(t *testing.T, out app.ReminderOutput) {
				assert.Equal(t, "2025-06-10", out.DueDate)
				assert.Equal(t, 30, out.EstimateMinutes)
				assert.Equal(t, 2, out.Priority)
			},
		},
		{
			name: "checklist item without due date or estimate",
			input: app.CreateReminderInput{
				Title: "call dentist",
			},
			expected: func(t *testing.T, out app.ReminderOutput) {
				assert.Empty(t, out.DueDate)
				assert.Zero(t, out.EstimateMinutes)
				assert.Equal(t, domain.DefaultPriority.Int(), out.Priority, "priority defaults to mid")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, useCase := setupReminderTest(t)

			tt.input.UserID = newUserIDString()

			out, err := useCase.CreateReminder(context.Background(), tt.input)
			require.NoError(t, err)

			assert.NotEmpty(t, out.ID)
			assert.Equal(t, string(domain.SourcePersonal), out.Source)
			assert.False(t, out.Completed)
			assert.Nil(t, out.FinishedAt)
			tt.expected(t, out)
		})
	}
}

func TestCreateReminderValidation(t *testing.T) {
	tests := []struct {
		name  string
		input app.CreateReminderInput
	}{
		{name: "bad user id", input: app.CreateReminderInput{UserID: "nope", Title: "x"}},
		{name: "empty title", input: app.CreateReminderInput{UserID: newUserIDString()}},
		{name: "bad due date", input: app.CreateReminderInput{UserID: newUserIDString(), Title: "x", DueDate: "tomorrow"}},
		{name: "negative estimate", input: app.CreateReminderInput{UserID: newUserIDString(), Title: "x", EstimateMinutes: -5}},
		{name: "priority out of range", input: app.CreateReminderInput{UserID: newUserIDString(), Title: "x", Priority: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, useCase := setupReminderTest(t)

			_, err := useCase.CreateReminder(context.Background(), tt.input)

			assert.True(t, app.IsValidationError(err))
		})
	}
}

func TestCreateGroupReminderFanOut(t *testing.T) {
	repo, useCase := setupReminderTest(t)

	members := []string{newUserIDString(), newUserIDString(), newUserIDString()}

	out, err := useCase.CreateGroupReminder(context.Background(), app.CreateGroupReminderInput{
		GroupID:         uuid.Must(uuid.NewV7()).String(),
		CreatorID:       members[0],
		MemberIDs:       members,
		Title:           "prepare demo",
		DueDate:         "2025-06-12",
		EstimateMinutes: 45,
	})
	require.NoError(t, err)

	// Output carries the member copies; the canonical record stays internal
	// but is persisted alongside them.
	assert.Equal(t, int32(3), out.Count)
	assert.Len(t, repo.All(), 4)

	var canonicals, copies int

	for _, r := range repo.All() {
		switch r.Source() {
		case domain.SourceGroupCanonical:
			canonicals++
		case domain.SourceGroup:
			copies++
		case domain.SourcePersonal:
		}
	}

	assert.Equal(t, 1, canonicals)
	assert.Equal(t, 3, copies)
}

func TestCreateGroupReminderRequiresMembers(t *testing.T) {
	_, useCase := setupReminderTest(t)

	_, err := useCase.CreateGroupReminder(context.Background(), app.CreateGroupReminderInput{
		GroupID:   uuid.Must(uuid.NewV7()).String(),
		CreatorID: newUserIDString(),
		Title:     "prepare demo",
	})

	assert.True(t, app.IsValidationError(err))
}

func TestListRemindersExcludesCanonical(t *testing.T) {
	repo, useCase := setupReminderTest(t)

	member := newUserIDString()
	_, err := useCase.CreateGroupReminder(context.Background(), app.CreateGroupReminderInput{
		GroupID:         uuid.Must(uuid.NewV7()).String(),
		CreatorID:       member,
		MemberIDs:       []string{member},
		Title:           "prepare demo",
		DueDate:         "2025-06-12",
		EstimateMinutes: 45,
	})
	require.NoError(t, err)
	require.Len(t, repo.All(), 2)

	out, err := useCase.ListReminders(context.Background(), app.ListRemindersInput{UserID: member})
	require.NoError(t, err)

	require.Equal(t, int32(1), out.Count)
	assert.Equal(t, string(domain.SourceGroup), out.Reminders[0].Source)
}

func TestCompleteAndReopenReminder(t *testing.T) {
	_, useCase := setupReminderTest(t)

	created, err := useCase.CreateReminder(context.Background(), app.CreateReminderInput{
		UserID: newUserIDString(),
		Title:  "write report",
	})
	require.NoError(t, err)

	completed, err := useCase.CompleteReminder(context.Background(), app.CompleteReminderInput{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.FinishedAt)

	// Completing twice is idempotent.
	again, err := useCase.CompleteReminder(context.Background(), app.CompleteReminderInput{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, again.Completed)

	reopened, err := useCase.ReopenReminder(context.Background(), app.ReopenReminderInput{ID: created.ID})
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.FinishedAt)
}

func TestCompleteReminderNotFound(t *testing.T) {
	_, useCase := setupReminderTest(t)

	_, err := useCase.CompleteReminder(context.Background(), app.CompleteReminderInput{
		ID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDeleteReminderKeepsLinkedTask(t *testing.T) {
	repo, useCase := setupReminderTest(t)
	taskRepo := testutil.NewMemTaskRepository()

	userStr := newUserIDString()
	userID := mustUserID(t, userStr)

	reminder := saveReminder(t, repo, userID, "write report", "2025-06-10", 30)
	task := saveTask(t, taskRepo, userID, "2025-06-09", "18:00", "18:30")
	reminder.LinkTask(task.ID())

	require.NoError(t, useCase.DeleteReminder(context.Background(), app.DeleteReminderInput{
		ID: reminder.ID().String(),
	}))

	assert.Empty(t, repo.All())
	assert.Len(t, taskRepo.All(), 1, "tasks are calendar ground truth and survive reminder deletion")
}

func TestDeleteReminderIdempotent(t *testing.T) {
	_, useCase := setupReminderTest(t)

	err := useCase.DeleteReminder(context.Background(), app.DeleteReminderInput{
		ID: uuid.NewString(),
	})

	assert.NoError(t, err)
}
