package service

import (
	"context"
	"testing"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateValidatesShortID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.projects.Create(ctx, &domain.Project{Name: "no id"})
	assert.Error(t, err)

	err = env.projects.Create(ctx, &domain.Project{Name: "bad id", ShortID: "lowercase1"})
	assert.Error(t, err)

	p := &domain.Project{Name: "good", ShortID: "PRJ01"}
	require.NoError(t, env.projects.Create(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectActive, p.Status)
}

func TestProjectService_Close(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "demo")

	require.NoError(t, env.projects.Close(ctx, project.ID))

	got, err := env.projects.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectClosed, got.Status)

	active, err := env.projects.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)
}
