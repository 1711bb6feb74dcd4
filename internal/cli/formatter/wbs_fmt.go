package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
)

// FormatItemTable renders a flat metrics-annotated item listing.
func FormatItemTable(views []service.ItemView) string {
	headers := []string{"WBS", "TASK", "OWNER", "STATUS", "PROGRESS", "VARIANCE", "HEALTH"}
	rows := make([][]string, len(views))
	for i, v := range views {
		rows[i] = []string{
			Bold(v.Item.WBSID),
			v.Item.TaskName,
			v.Item.OwnerUnit,
			statusCell(v.Item.Status),
			fmt.Sprintf("%d%% / %d%%", v.Item.ActualProgress, v.Metrics.EstimatedProgress),
			VarianceBadge(v.Metrics),
			HealthIndicator(v.Item.Status, v.Metrics),
		}
	}
	return RenderTable(headers, rows)
}

// FormatItemDetail renders one item with its derived schedule health.
func FormatItemDetail(v *service.ItemView) string {
	item := v.Item

	var b strings.Builder
	b.WriteString(Header(item.WBSID + " " + item.TaskName))
	b.WriteString("\n")

	write := func(label, value string) {
		if value == "" {
			value = Dim("-")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render(fmt.Sprintf("%-16s", label)), value))
	}

	write("Status", statusCell(item.Status))
	write("Category", item.Category)
	write("Owner", ownerCell(item))
	write("Original plan", planRange(item.OriginalPlannedStart, item.OriginalPlannedEnd))
	write("Revised plan", planRange(item.RevisedPlannedStart, item.RevisedPlannedEnd))
	write("Actual", planRange(item.ActualStart, item.ActualEnd))
	if item.WorkDays != nil {
		write("Work days", strconv.Itoa(*item.WorkDays))
	}
	write("Progress", fmt.Sprintf("%d%% actual / %d%% estimated  %s", item.ActualProgress, v.Metrics.EstimatedProgress, VarianceBadge(v.Metrics)))
	write("Health", HealthIndicator(item.Status, v.Metrics))
	if item.IsInternal {
		write("Internal", StylePurple.Render("yes"))
	}
	if item.Notes != "" {
		write("Notes", item.Notes)
	}
	write("Source", sourceCell(item))

	return b.String()
}

func statusCell(s domain.TrackingStatus) string {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen.Render(string(s))
	case domain.StatusInProgress:
		return StyleYellow.Render(string(s))
	case domain.StatusCancelled:
		return StyleDim.Render(string(s))
	default:
		return string(s)
	}
}

func ownerCell(item *domain.TrackingItem) string {
	if item.OwnerUnit == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", item.OwnerUnit, Dim("("+string(item.OwnerKind)+")"))
}

func sourceCell(item *domain.TrackingItem) string {
	if item.Source == domain.SourceCSVImport && item.SourceDate != nil {
		return fmt.Sprintf("%s %s", item.Source, Dim(item.SourceDate.Format(dateLayout)))
	}
	return string(item.Source)
}

func planRange(start, end *time.Time) string {
	if start == nil && end == nil {
		return ""
	}
	return dateCell(start) + " → " + dateCell(end)
}
