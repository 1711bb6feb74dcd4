package service

import (
	"context"
	"testing"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueService_CreateAssignsNumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	first := &domain.Issue{ProjectID: project.ID, Title: "login broken"}
	require.NoError(t, env.issues.Create(ctx, first))
	assert.Equal(t, "ISS-001", first.Number)
	assert.Equal(t, "open", first.Status)

	second := &domain.Issue{ProjectID: project.ID, Title: "export slow"}
	require.NoError(t, env.issues.Create(ctx, second))
	assert.Equal(t, "ISS-002", second.Number)
}

func TestIssueService_Resolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	issue := &domain.Issue{ProjectID: project.ID, Title: "login broken"}
	require.NoError(t, env.issues.Create(ctx, issue))

	require.NoError(t, env.issues.Resolve(ctx, project.ID, issue.Number, "session fix deployed"))

	got, err := env.issues.GetByNumber(ctx, project.ID, issue.Number)
	require.NoError(t, err)
	assert.Equal(t, "resolved", got.Status)
	assert.Equal(t, "session fix deployed", got.Resolution)
	assert.NotNil(t, got.ActualResolution)
}
