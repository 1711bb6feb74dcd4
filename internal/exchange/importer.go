package exchange

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
)

// columnMap translates the Chinese export headers to field names. English
// field names are also accepted directly, so a previously exported file or a
// hand-built English sheet both import.
var columnMap = map[string]string{
	"項目":   "wbs_id",
	"父項目":  "parent_id",
	"任務說明": "task_name",
	"單位":   "owner_unit",
	"類別":   "category",
	"預計開始": "original_planned_start",
	"預計結束": "original_planned_end",
	"調整開始": "revised_planned_start",
	"調整結束": "revised_planned_end",
	"實際開始": "actual_start_date",
	"實際結束": "actual_end_date",
	"工作天數": "work_days",
	"進度":   "actual_progress",
	"狀態":   "status",
	"備註":   "notes",
	"內部安排": "is_internal",
}

// truthyMarkers are the cell values that mark a row as internal.
var truthyMarkers = map[string]bool{
	"yes": true, "y": true, "true": true, "1": true,
	"是": true, "v": true, "✓": true, "x": true,
}

// dateFormats are tried in order when normalizing an imported date cell.
var dateFormats = []string{"2006/1/2", "2006-1-2", "1/2/2006", "2/1/2006"}

// RowError records why a single CSV row was rejected.
type RowError struct {
	Row   int
	WBSID string
	Err   string
}

// ImportResult summarizes a CSV import. A file where some rows fail still
// imports the rest; failures are reported per row.
type ImportResult struct {
	Imported int
	Skipped  int
	Failed   []RowError
}

// Importer loads WBS items from CSV through the WBS service, so imported rows
// get the same defaulting and owner classification as manual entry.
type Importer struct {
	wbs service.WBSService
}

func NewImporter(wbs service.WBSService) *Importer {
	return &Importer{wbs: wbs}
}

// ImportWBS reads CSV rows and creates tracking items in the given project.
// Rows without a WBS ID are skipped; rows that fail to create are recorded
// and the import continues. Row numbers are 1-based including the header.
func (im *Importer) ImportWBS(ctx context.Context, r io.Reader, projectID string) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	// Position of each known field in this particular file.
	fieldIndex := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if field, ok := columnMap[name]; ok {
			fieldIndex[field] = i
			continue
		}
		for _, field := range columnMap {
			if name == field {
				if _, taken := fieldIndex[field]; !taken {
					fieldIndex[field] = i
				}
			}
		}
	}
	if _, ok := fieldIndex["wbs_id"]; !ok {
		return nil, fmt.Errorf("CSV is missing the 項目 (wbs_id) column")
	}

	result := &ImportResult{}
	sourceDate := time.Now().UTC().Truncate(24 * time.Hour)

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Failed = append(result.Failed, RowError{Row: rowNum, Err: err.Error()})
			continue
		}

		cell := func(field string) string {
			i, ok := fieldIndex[field]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		wbsID := cell("wbs_id")
		if wbsID == "" {
			result.Skipped++
			continue
		}

		taskName := cell("task_name")
		if taskName == "" {
			taskName = wbsID
		}
		category := cell("category")
		if category == "" {
			category = "Task"
		}

		item := &domain.TrackingItem{
			ProjectID:            projectID,
			WBSID:                wbsID,
			TaskName:             taskName,
			Category:             category,
			OwnerUnit:            cell("owner_unit"),
			OriginalPlannedStart: parseFlexibleDate(cell("original_planned_start")),
			OriginalPlannedEnd:   parseFlexibleDate(cell("original_planned_end")),
			RevisedPlannedStart:  parseFlexibleDate(cell("revised_planned_start")),
			RevisedPlannedEnd:    parseFlexibleDate(cell("revised_planned_end")),
			ActualStart:          parseFlexibleDate(cell("actual_start_date")),
			ActualEnd:            parseFlexibleDate(cell("actual_end_date")),
			WorkDays:             parseOptionalInt(cell("work_days")),
			ActualProgress:       parseIntOrZero(cell("actual_progress")),
			Status:               domain.TrackingStatus(cell("status")),
			Notes:                cell("notes"),
			IsInternal:           truthyMarkers[strings.ToLower(cell("is_internal"))],
			Source:               domain.SourceCSVImport,
			SourceDate:           &sourceDate,
		}

		if err := im.wbs.Create(ctx, item, cleanParentRef(cell("parent_id"))); err != nil {
			result.Failed = append(result.Failed, RowError{Row: rowNum, WBSID: wbsID, Err: err.Error()})
			continue
		}
		result.Imported++
	}

	return result, nil
}

// parseFlexibleDate normalizes the date spellings spreadsheets produce.
// Unparseable values degrade to nil.
func parseFlexibleDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}
	return nil
}

// cleanParentRef strips the ".0" suffix spreadsheets append to numeric cells
// ("1.0" means parent "1").
func cleanParentRef(s string) string {
	if base, ok := strings.CutSuffix(s, ".0"); ok {
		if _, err := strconv.Atoi(base); err == nil {
			return base
		}
	}
	return s
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
