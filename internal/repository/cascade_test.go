package repository

import (
	"context"
	"testing"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a project must cascade through items, dependencies, pending items
// and issues via foreign keys.
func TestProjectDelete_Cascades(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	items := NewSQLiteTrackingItemRepo(database)
	deps := NewSQLiteDependencyRepo(database)
	pending := NewSQLitePendingRepo(database)
	issues := NewSQLiteIssueRepo(database)

	project := testutil.NewTestProject("doomed")
	require.NoError(t, projects.Create(ctx, project))

	a := testutil.NewTestItem(project.ID, "1")
	b := testutil.NewTestItem(project.ID, "2")
	require.NoError(t, items.Create(ctx, a))
	require.NoError(t, items.Create(ctx, b))
	require.NoError(t, deps.Create(ctx, &domain.ItemDependency{
		PredecessorItemID: a.ItemID,
		SuccessorItemID:   b.ItemID,
	}))
	require.NoError(t, pending.Create(ctx, testutil.NewTestPending(project.ID, "follow up")))
	require.NoError(t, issues.Create(ctx, testutil.NewTestIssue(project.ID, "broken thing")))

	require.NoError(t, projects.Delete(ctx, project.ID))

	remaining, err := items.List(ctx, ItemFilter{ProjectID: project.ID, IncludeInternal: true})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	preds, err := deps.ListPredecessors(ctx, b.ItemID)
	require.NoError(t, err)
	assert.Empty(t, preds)

	pendingLeft, err := pending.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, pendingLeft)

	issuesLeft, err := issues.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, issuesLeft)
}

// Deleting a tracking item must remove dependency edges on either side.
func TestItemDelete_CascadesDependencies(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	items := NewSQLiteTrackingItemRepo(database)
	deps := NewSQLiteDependencyRepo(database)

	project := testutil.NewTestProject("demo")
	require.NoError(t, projects.Create(ctx, project))

	a := testutil.NewTestItem(project.ID, "1")
	b := testutil.NewTestItem(project.ID, "2")
	c := testutil.NewTestItem(project.ID, "3")
	for _, item := range []*domain.TrackingItem{a, b, c} {
		require.NoError(t, items.Create(ctx, item))
	}
	require.NoError(t, deps.Create(ctx, &domain.ItemDependency{PredecessorItemID: a.ItemID, SuccessorItemID: b.ItemID}))
	require.NoError(t, deps.Create(ctx, &domain.ItemDependency{PredecessorItemID: b.ItemID, SuccessorItemID: c.ItemID}))

	require.NoError(t, items.Delete(ctx, b.ItemID))

	succ, err := deps.ListSuccessors(ctx, a.ItemID)
	require.NoError(t, err)
	assert.Empty(t, succ)

	preds, err := deps.ListPredecessors(ctx, c.ItemID)
	require.NoError(t, err)
	assert.Empty(t, preds)
}
