package exchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
)

const dateLayout = "2006-01-02"

var wbsExportHeaders = []string{
	"項目", "父項目", "任務說明", "單位", "類別",
	"預計開始", "預計結束", "調整開始", "調整結束",
	"實際開始", "實際結束", "工作天數", "進度",
	"狀態", "備註", "內部安排", "逾期",
}

var pendingExportHeaders = []string{
	"編號", "任務日期", "來源類型", "聯絡資訊", "說明",
	"預計回覆日期", "已回覆", "實際回覆日期",
	"處理備註", "相關WBS", "狀態", "優先級",
}

var issueExportHeaders = []string{
	"問題編號", "問題標題", "問題說明",
	"問題類型", "問題分類", "嚴重性", "優先級",
	"回報人", "回報日期", "指派給",
	"狀態", "解決方案", "目標解決日期",
	"實際解決日期", "已升級",
}

// ExportWBS writes metrics-annotated items as CSV. The 逾期 column carries the
// overdue flag derived at read time; parent references are written in dotted
// WBS form so the file round-trips through ImportWBS.
func ExportWBS(w io.Writer, views []service.ItemView) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(wbsExportHeaders); err != nil {
		return 0, fmt.Errorf("writing WBS header: %w", err)
	}

	for _, view := range views {
		item := view.Item
		record := []string{
			item.WBSID,
			parentWBSRef(item),
			item.TaskName,
			item.OwnerUnit,
			item.Category,
			formatDate(item.OriginalPlannedStart),
			formatDate(item.OriginalPlannedEnd),
			formatDate(item.RevisedPlannedStart),
			formatDate(item.RevisedPlannedEnd),
			formatDate(item.ActualStart),
			formatDate(item.ActualEnd),
			formatOptionalInt(item.WorkDays),
			strconv.Itoa(item.ActualProgress),
			string(item.Status),
			item.Notes,
			internalMarker(item.IsInternal),
			yesNo(view.Metrics.IsOverdue),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("writing WBS row %s: %w", item.WBSID, err)
		}
	}

	writer.Flush()
	return len(views), writer.Error()
}

// ExportPending writes pending items as CSV.
func ExportPending(w io.Writer, items []*domain.PendingItem) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(pendingExportHeaders); err != nil {
		return 0, fmt.Errorf("writing pending header: %w", err)
	}

	for _, p := range items {
		record := []string{
			p.ID,
			formatDate(p.TaskDate),
			p.SourceType,
			p.ContactInfo,
			p.Description,
			formatDate(p.ExpectedCompletion),
			yesNo(p.IsReplied),
			formatDate(p.ActualCompletion),
			p.HandlingNotes,
			p.RelatedWBS,
			p.Status,
			p.Priority,
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("writing pending row %s: %w", p.ID, err)
		}
	}

	writer.Flush()
	return len(items), writer.Error()
}

// ExportIssues writes issues as CSV.
func ExportIssues(w io.Writer, issues []*domain.Issue) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(issueExportHeaders); err != nil {
		return 0, fmt.Errorf("writing issue header: %w", err)
	}

	for _, i := range issues {
		record := []string{
			i.Number,
			i.Title,
			i.Description,
			i.Type,
			i.Category,
			i.Severity,
			i.Priority,
			i.ReportedBy,
			formatDate(i.ReportedDate),
			i.AssignedTo,
			i.Status,
			i.Resolution,
			formatDate(i.TargetResolution),
			formatDate(i.ActualResolution),
			yesNo(i.IsEscalated),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("writing issue row %s: %w", i.Number, err)
		}
	}

	writer.Flush()
	return len(issues), writer.Error()
}

// WriteTemplate writes an import template with sample rows.
func WriteTemplate(w io.Writer) error {
	writer := csv.NewWriter(w)
	headers := []string{
		"項目", "父項目", "任務說明", "單位", "類別",
		"預計開始", "預計結束", "調整開始", "調整結束",
		"實際開始", "實際結束", "工作天數", "進度",
		"狀態", "內部安排", "備註",
	}
	samples := [][]string{
		{"1", "", "專案啟動", "專案經理", "Milestone", "2024/01/01", "2024/01/01", "", "", "", "", "", "100", "已完成", "", "頂層項目範例"},
		{"1.1", "1", "需求分析", "開發部", "Task", "2024/01/02", "2024/01/15", "", "", "2024/01/02", "2024/01/14", "10", "100", "已完成", "", "子項目範例"},
		{"1.2", "1", "系統設計", "AAA", "Task", "2024/01/16", "2024/01/31", "", "", "2024/01/16", "", "12", "60", "進行中", "V", "內部安排範例"},
		{"2", "", "開發階段", "開發部", "Milestone", "2024/02/01", "2024/03/31", "", "", "", "", "", "0", "未開始", "", "頂層項目範例"},
	}

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("writing template header: %w", err)
	}
	if err := writer.WriteAll(samples); err != nil {
		return fmt.Errorf("writing template rows: %w", err)
	}
	return nil
}

// parentWBSRef strips the project prefix from a parent item ID so the export
// shows the dotted WBS form.
func parentWBSRef(item *domain.TrackingItem) string {
	if item.ParentID == nil {
		return ""
	}
	prefix := item.ProjectID + "_"
	ref := *item.ParentID
	if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
		return ref[len(prefix):]
	}
	return ref
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func internalMarker(b bool) string {
	if b {
		return "V"
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "是"
	}
	return "否"
}
