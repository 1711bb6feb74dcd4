package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRepo_CreateAndGetByNumber(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	project := testutil.NewTestProject("demo")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, project))

	repo := NewSQLiteIssueRepo(database)
	issue := testutil.NewTestIssue(project.ID, "payment gateway timeout",
		testutil.WithIssueNumber("ISS-007"))
	reported := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	issue.ReportedDate = &reported
	issue.Severity = "high"
	require.NoError(t, repo.Create(ctx, issue))

	got, err := repo.GetByNumber(ctx, project.ID, "ISS-007")
	require.NoError(t, err)
	assert.Equal(t, issue.ID, got.ID)
	assert.Equal(t, "high", got.Severity)
	require.NotNil(t, got.ReportedDate)
	assert.Equal(t, reported, *got.ReportedDate)

	_, err = repo.GetByNumber(ctx, project.ID, "ISS-999")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIssueRepo_NextNumber(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	project := testutil.NewTestProject("demo")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, project))
	repo := NewSQLiteIssueRepo(database)

	n, err := repo.NextNumber(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "ISS-001", n)

	require.NoError(t, repo.Create(ctx, testutil.NewTestIssue(project.ID, "a", testutil.WithIssueNumber("ISS-001"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestIssue(project.ID, "b", testutil.WithIssueNumber("ISS-005"))))

	n, err = repo.NextNumber(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "ISS-006", n)
}

func TestIssueRepo_NumberUniquePerProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	p1 := testutil.NewTestProject("one")
	p2 := testutil.NewTestProject("two")
	require.NoError(t, projects.Create(ctx, p1))
	require.NoError(t, projects.Create(ctx, p2))

	repo := NewSQLiteIssueRepo(database)
	require.NoError(t, repo.Create(ctx, testutil.NewTestIssue(p1.ID, "a", testutil.WithIssueNumber("ISS-001"))))

	// Same number in another project is fine.
	require.NoError(t, repo.Create(ctx, testutil.NewTestIssue(p2.ID, "b", testutil.WithIssueNumber("ISS-001"))))

	// Same number in the same project is not.
	err := repo.Create(ctx, testutil.NewTestIssue(p1.ID, "c", testutil.WithIssueNumber("ISS-001")))
	assert.Error(t, err)
}

func TestIssueRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	project := testutil.NewTestProject("demo")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, project))
	repo := NewSQLiteIssueRepo(database)

	issue := testutil.NewTestIssue(project.ID, "flaky export")
	require.NoError(t, repo.Create(ctx, issue))

	issue.Status = "resolved"
	issue.Resolution = "retry added"
	resolved := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	issue.ActualResolution = &resolved
	issue.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, issue))

	got, err := repo.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", got.Status)
	require.NotNil(t, got.ActualResolution)
	assert.Equal(t, resolved, *got.ActualResolution)
}
