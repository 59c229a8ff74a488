package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riloax/weekplanner/internal/domain"
	"github.com/Riloax/weekplanner/internal/infra/repository"
	"github.com/Riloax/weekplanner/internal/testutil"
)

func TestTaskRepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewTaskRepository(testDB.DB)
	ctx := context.Background()
	userID := newUserID(t)

	task, err := domain.NewTask(userID, "calculus lecture", domain.CategoryStudy, mustDate(t, "2025-06-09"), "10:00", "11:30")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, task))

	found, err := repo.FindByID(ctx, task.ID())
	require.NoError(t, err)

	assert.Equal(t, "calculus lecture", found.Name())
	assert.Equal(t, domain.CategoryStudy, found.Category())
	assert.Equal(t, "2025-06-09", found.Date().String())
	assert.Equal(t, "10:00", found.Start())
	assert.Equal(t, "11:30", found.End())
}

func TestTaskRepositoryFindByUserOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewTaskRepository(testDB.DB)
	ctx := context.Background()
	userID := newUserID(t)

	for _, tc := range []struct{ date, start, end string }{
		{"2025-06-10", "09:00", "10:00"},
		{"2025-06-09", "20:00", "21:00"},
		{"2025-06-09", "08:00", "09:00"},
	} {
		task, err := domain.NewTask(userID, "block", domain.CategoryStudy, mustDate(t, tc.date), tc.start, tc.end)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, task))
	}

	tasks, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "08:00", tasks[0].Start())
	assert.Equal(t, "20:00", tasks[1].Start())
	assert.Equal(t, "2025-06-10", tasks[2].Date().String())
}

func TestTaskRepositoryUpdateRelocation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewTaskRepository(testDB.DB)
	ctx := context.Background()

	task, err := domain.NewTask(newUserID(t), "gym", domain.CategoryPersonal, mustDate(t, "2025-06-09"), "18:00", "19:00")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, task))

	require.NoError(t, task.Relocate(mustDate(t, "2025-06-11"), "20:00", "21:00"))
	require.NoError(t, repo.Update(ctx, task))

	found, err := repo.FindByID(ctx, task.ID())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-11", found.Date().String())
	assert.Equal(t, "20:00", found.Start())
}

func TestTaskRepositoryDeleteNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewTaskRepository(testDB.DB)

	err := repo.Delete(context.Background(), domain.NewTaskID())

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
