package cli

import (
	"context"
	"testing"

	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
	"github.com/Emilyfan-learn/Project-manage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolveApp(t *testing.T) (*App, context.Context) {
	t.Helper()
	database := testutil.NewTestDB(t)
	projects := service.NewProjectService(repository.NewSQLiteProjectRepo(database))
	return &App{Projects: projects}, context.Background()
}

func TestResolveProjectID_ShortIDCaseInsensitive(t *testing.T) {
	app, ctx := newResolveApp(t)

	p := testutil.NewTestProject("alpha", testutil.WithShortID("ALP01"))
	require.NoError(t, app.Projects.Create(ctx, p))

	id, err := resolveProjectID(ctx, app, "alp01")
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)
}

func TestResolveProjectID_FullUUID(t *testing.T) {
	app, ctx := newResolveApp(t)

	p := testutil.NewTestProject("beta")
	require.NoError(t, app.Projects.Create(ctx, p))

	id, err := resolveProjectID(ctx, app, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)
}

func TestResolveProjectID_UUIDPrefix(t *testing.T) {
	app, ctx := newResolveApp(t)

	p := testutil.NewTestProject("gamma")
	require.NoError(t, app.Projects.Create(ctx, p))

	id, err := resolveProjectID(ctx, app, p.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)
}

func TestResolveProjectID_IncludesClosedProjects(t *testing.T) {
	app, ctx := newResolveApp(t)

	p := testutil.NewTestProject("delta", testutil.WithShortID("DEL01"))
	require.NoError(t, app.Projects.Create(ctx, p))
	require.NoError(t, app.Projects.Close(ctx, p.ID))

	id, err := resolveProjectID(ctx, app, "DEL01")
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)
}

func TestResolveProjectID_NotFound(t *testing.T) {
	app, ctx := newResolveApp(t)

	_, err := resolveProjectID(ctx, app, "NOPE01")
	assert.Error(t, err)
}

func TestResolveProjectID_EmptyInput(t *testing.T) {
	app, ctx := newResolveApp(t)

	_, err := resolveProjectID(ctx, app, "")
	assert.Error(t, err)
}

func TestResolveItemID_QualifiesDottedRef(t *testing.T) {
	id, err := resolveItemID("proj-1", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "proj-1_1.2.3", id)
}

func TestResolveItemID_Empty(t *testing.T) {
	_, err := resolveItemID("proj-1", "")
	assert.Error(t, err)
}
