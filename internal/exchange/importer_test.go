package exchange

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
	"github.com/Emilyfan-learn/Project-manage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportEnv(t *testing.T) (*Importer, service.WBSService, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	project := testutil.NewTestProject("demo")
	require.NoError(t, repository.NewSQLiteProjectRepo(database).Create(ctx, project))

	settings := service.NewSettingsService(
		repository.NewSQLiteSettingsRepo(database),
		repository.NewSQLiteHolidayRepo(database))
	wbs := service.NewWBSService(repository.NewSQLiteTrackingItemRepo(database), settings)
	return NewImporter(wbs), wbs, project.ID
}

func TestImportWBS_ChineseHeaders(t *testing.T) {
	importer, wbs, projectID := newImportEnv(t)
	ctx := context.Background()

	file := strings.Join([]string{
		"項目,父項目,任務說明,單位,類別,預計開始,預計結束,工作天數,進度,狀態,內部安排,備註",
		"1,,專案啟動,專案經理,Milestone,2024/01/01,2024/01/01,,100,已完成,,",
		"1.1,1,需求分析,開發部,Task,2024-01-02,2024-01-15,10,60,進行中,V,first",
	}, "\n")

	result, err := importer.ImportWBS(ctx, strings.NewReader(file), projectID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Failed)

	view, err := wbs.Get(ctx, domain.ItemIDFor(projectID, "1.1"))
	require.NoError(t, err)
	item := view.Item
	require.NotNil(t, item.ParentID)
	assert.Equal(t, domain.ItemIDFor(projectID, "1"), *item.ParentID)
	assert.Equal(t, "需求分析", item.TaskName)
	assert.True(t, item.IsInternal)
	assert.Equal(t, domain.SourceCSVImport, item.Source)
	assert.NotNil(t, item.SourceDate)
	require.NotNil(t, item.OriginalPlannedStart)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *item.OriginalPlannedStart)
	require.NotNil(t, item.WorkDays)
	assert.Equal(t, 10, *item.WorkDays)
	assert.Equal(t, 60, item.ActualProgress)
	assert.Equal(t, domain.StatusInProgress, item.Status)
}

func TestImportWBS_EnglishHeaders(t *testing.T) {
	importer, wbs, projectID := newImportEnv(t)
	ctx := context.Background()

	file := strings.Join([]string{
		"wbs_id,task_name,original_planned_start,status",
		"3,kickoff,01/31/2024,未開始",
	}, "\n")

	result, err := importer.ImportWBS(ctx, strings.NewReader(file), projectID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	view, err := wbs.Get(ctx, domain.ItemIDFor(projectID, "3"))
	require.NoError(t, err)
	require.NotNil(t, view.Item.OriginalPlannedStart)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *view.Item.OriginalPlannedStart)
}

func TestImportWBS_DefaultsAndCleanup(t *testing.T) {
	importer, wbs, projectID := newImportEnv(t)
	ctx := context.Background()

	// Task name falls back to the WBS ID, parent "1.0" means "1", bad dates
	// degrade to absent.
	file := strings.Join([]string{
		"項目,父項目,任務說明,預計開始",
		"1,,root,",
		"1.1,1.0,,garbage-date",
	}, "\n")

	result, err := importer.ImportWBS(ctx, strings.NewReader(file), projectID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	view, err := wbs.Get(ctx, domain.ItemIDFor(projectID, "1.1"))
	require.NoError(t, err)
	assert.Equal(t, "1.1", view.Item.TaskName)
	require.NotNil(t, view.Item.ParentID)
	assert.Equal(t, domain.ItemIDFor(projectID, "1"), *view.Item.ParentID)
	assert.Nil(t, view.Item.OriginalPlannedStart)
	assert.Equal(t, "Task", view.Item.Category)
	assert.Equal(t, domain.StatusNotStarted, view.Item.Status)
}

func TestImportWBS_PerRowFailures(t *testing.T) {
	importer, _, projectID := newImportEnv(t)
	ctx := context.Background()

	// Row 3 duplicates row 2; row 4 names a missing parent; row 5 has no WBS
	// ID and is skipped; row 6 is still imported.
	file := strings.Join([]string{
		"項目,父項目,任務說明",
		"1,,first",
		"1,,duplicate",
		"2.1,9,missing parent",
		",,no id",
		"2,,second",
	}, "\n")

	result, err := importer.ImportWBS(ctx, strings.NewReader(file), projectID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, 3, result.Failed[0].Row)
	assert.Equal(t, "1", result.Failed[0].WBSID)
	assert.Equal(t, 4, result.Failed[1].Row)
}

func TestImportWBS_MissingIDColumn(t *testing.T) {
	importer, _, projectID := newImportEnv(t)

	file := "任務說明,狀態\nsomething,未開始\n"
	_, err := importer.ImportWBS(context.Background(), strings.NewReader(file), projectID)
	assert.Error(t, err)
}

func TestImportWBS_TemplateImports(t *testing.T) {
	importer, _, projectID := newImportEnv(t)

	var buf strings.Builder
	require.NoError(t, WriteTemplate(&buf))

	result, err := importer.ImportWBS(context.Background(), strings.NewReader(buf.String()), projectID)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Imported)
	assert.Empty(t, result.Failed)
}
