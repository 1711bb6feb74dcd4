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

func setupItemRepo(t *testing.T) (*SQLiteTrackingItemRepo, *domain.Project) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	project := testutil.NewTestProject("demo")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, project))

	return NewSQLiteTrackingItemRepo(database), project
}

func TestTrackingItemRepo_CreateAndGet(t *testing.T) {
	repo, project := setupItemRepo(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	item := testutil.NewTestItem(project.ID, "1.2",
		testutil.WithOriginalPlan(start, end),
		testutil.WithProgress(40),
		testutil.WithOwnerUnit("企劃部/設計組"),
	)
	wd := 45
	item.WorkDays = &wd
	item.AlertFlag = true

	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, item.ItemID, got.ItemID)
	assert.Equal(t, "1.2", got.WBSID)
	assert.Equal(t, domain.OwnerDepartment, got.OwnerKind)
	assert.Equal(t, "企劃部", got.PrimaryOwner)
	assert.Equal(t, "設計組", got.SecondaryOwner)
	require.NotNil(t, got.OriginalPlannedStart)
	assert.Equal(t, start, *got.OriginalPlannedStart)
	require.NotNil(t, got.WorkDays)
	assert.Equal(t, 45, *got.WorkDays)
	assert.True(t, got.AlertFlag)
	assert.Nil(t, got.RevisedPlannedStart)
}

func TestTrackingItemRepo_GetMissing(t *testing.T) {
	repo, _ := setupItemRepo(t)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTrackingItemRepo_ListFilters(t *testing.T) {
	repo, project := setupItemRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "1")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "2",
		testutil.WithItemStatus(domain.StatusCompleted))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "3",
		testutil.WithItemStatus(domain.StatusCancelled))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "4",
		testutil.WithInternal())))

	// Default: internal items hidden.
	items, err := repo.List(ctx, ItemFilter{ProjectID: project.ID})
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = repo.List(ctx, ItemFilter{ProjectID: project.ID, IncludeInternal: true})
	require.NoError(t, err)
	assert.Len(t, items, 4)

	// Open listing hides both closed statuses.
	items, err = repo.List(ctx, ItemFilter{ProjectID: project.ID, ExcludeCompleted: true})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "1", items[0].WBSID)

	items, err = repo.List(ctx, ItemFilter{ProjectID: project.ID, Status: domain.StatusCompleted})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	n, err := repo.Count(ctx, ItemFilter{ProjectID: project.ID, IncludeInternal: true})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestTrackingItemRepo_ListChildren(t *testing.T) {
	repo, project := setupItemRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "1")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "1.1", testutil.WithParentWBS("1"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "1.2", testutil.WithParentWBS("1"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(project.ID, "2")))

	children, err := repo.ListChildren(ctx, domain.ItemIDFor(project.ID, "1"))
	require.NoError(t, err)
	assert.Len(t, children, 2)
}

func TestTrackingItemRepo_Update(t *testing.T) {
	repo, project := setupItemRepo(t)
	ctx := context.Background()

	item := testutil.NewTestItem(project.ID, "1")
	require.NoError(t, repo.Create(ctx, item))

	item.TaskName = "renamed"
	item.Status = domain.StatusInProgress
	item.ActualProgress = 30
	rev := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	item.RevisedPlannedStart = &rev
	item.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.TaskName)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, 30, got.ActualProgress)
	require.NotNil(t, got.RevisedPlannedStart)
	assert.Equal(t, rev, *got.RevisedPlannedStart)
}

func TestTrackingItemRepo_Delete(t *testing.T) {
	repo, project := setupItemRepo(t)
	ctx := context.Background()

	item := testutil.NewTestItem(project.ID, "1")
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ItemID))

	_, err := repo.GetByID(ctx, item.ItemID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
