package service

import (
	"context"
	"testing"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingService_CreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	p := &domain.PendingItem{ProjectID: project.ID, Description: "waiting on vendor quote"}
	require.NoError(t, env.pending.Create(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "open", p.Status)
}

func TestPendingService_MarkReplied(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	p := &domain.PendingItem{ProjectID: project.ID, Description: "confirm scope"}
	require.NoError(t, env.pending.Create(ctx, p))

	require.NoError(t, env.pending.MarkReplied(ctx, p.ID))

	got, err := env.pending.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsReplied)
	assert.NotNil(t, got.ActualCompletion)
}
