package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service over one in-memory database.
type testEnv struct {
	db       *sql.DB
	projects ProjectService
	wbs      WBSService
	settings SettingsService
	pending  PendingService
	issues   IssueService
	deps     DependencyService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	itemRepo := repository.NewSQLiteTrackingItemRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)

	settings := NewSettingsService(settingsRepo, holidayRepo)
	return &testEnv{
		db:       database,
		projects: NewProjectService(repository.NewSQLiteProjectRepo(database)),
		wbs:      NewWBSService(itemRepo, settings),
		settings: settings,
		pending:  NewPendingService(repository.NewSQLitePendingRepo(database)),
		issues:   NewIssueService(repository.NewSQLiteIssueRepo(database)),
		deps:     NewDependencyService(repository.NewSQLiteDependencyRepo(database), itemRepo),
	}
}

func (e *testEnv) newProject(t *testing.T, name string) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name)
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}
