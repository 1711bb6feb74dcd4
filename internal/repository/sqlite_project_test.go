package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	project := testutil.NewTestProject("website relaunch",
		testutil.WithShortID("WEB01"),
		testutil.WithProjectDates(start, end))
	require.NoError(t, repo.Create(ctx, project))

	got, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "WEB01", got.ShortID)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, start, *got.StartDate)

	byShort, err := repo.GetByShortID(ctx, "WEB01")
	require.NoError(t, err)
	assert.Equal(t, project.ID, byShort.ID)
}

func TestProjectRepo_ShortIDUnique(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("one", testutil.WithShortID("PRJ01"))))
	err := repo.Create(ctx, testutil.NewTestProject("two", testutil.WithShortID("PRJ01")))
	assert.Error(t, err)
}

func TestProjectRepo_ListExcludesClosed(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("open")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("done",
		testutil.WithProjectStatus(domain.ProjectClosed))))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "open", active[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectRepo_Update(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	project := testutil.NewTestProject("demo")
	require.NoError(t, repo.Create(ctx, project))

	project.Name = "renamed"
	project.Status = domain.ProjectPaused
	project.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, project))

	got, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, domain.ProjectPaused, got.Status)
}

func TestProjectRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = repo.GetByShortID(context.Background(), "XX99")
	assert.True(t, errors.Is(err, ErrNotFound))
}

// A stored date string that cannot be parsed must degrade to a nil date
// rather than failing the read.
func TestTrackingItemRepo_MalformedDateDegrades(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	project := testutil.NewTestProject("demo")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, project))

	repo := NewSQLiteTrackingItemRepo(database)
	item := testutil.NewTestItem(project.ID, "1")
	require.NoError(t, repo.Create(ctx, item))

	_, err := database.ExecContext(ctx,
		`UPDATE tracking_items SET original_planned_start = 'not-a-date' WHERE item_id = ?`, item.ItemID)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Nil(t, got.OriginalPlannedStart)
}
