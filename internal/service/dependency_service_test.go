package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyService_AddAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	a := testutil.NewTestItem(project.ID, "1")
	b := testutil.NewTestItem(project.ID, "2")
	require.NoError(t, env.wbs.Create(ctx, a, ""))
	require.NoError(t, env.wbs.Create(ctx, b, ""))

	require.NoError(t, env.deps.Add(ctx, a.ItemID, b.ItemID))

	preds, err := env.deps.ListPredecessors(ctx, b.ItemID)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, a.ItemID, preds[0].PredecessorItemID)

	succ, err := env.deps.ListSuccessors(ctx, a.ItemID)
	require.NoError(t, err)
	assert.Len(t, succ, 1)
}

func TestDependencyService_AddValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	a := testutil.NewTestItem(project.ID, "1")
	require.NoError(t, env.wbs.Create(ctx, a, ""))

	err := env.deps.Add(ctx, a.ItemID, a.ItemID)
	assert.Error(t, err)

	err = env.deps.Add(ctx, a.ItemID, "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	// Duplicate edges are rejected by the primary key.
	b := testutil.NewTestItem(project.ID, "2")
	require.NoError(t, env.wbs.Create(ctx, b, ""))
	require.NoError(t, env.deps.Add(ctx, a.ItemID, b.ItemID))
	assert.Error(t, env.deps.Add(ctx, a.ItemID, b.ItemID))
}

func TestDependencyService_Remove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	a := testutil.NewTestItem(project.ID, "1")
	b := testutil.NewTestItem(project.ID, "2")
	require.NoError(t, env.wbs.Create(ctx, a, ""))
	require.NoError(t, env.wbs.Create(ctx, b, ""))
	require.NoError(t, env.deps.Add(ctx, a.ItemID, b.ItemID))

	require.NoError(t, env.deps.Remove(ctx, a.ItemID, b.ItemID))
	err := env.deps.Remove(ctx, a.ItemID, b.ItemID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
