package formatter

import (
	"strconv"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// FormatPendingTable renders pending follow-up items.
func FormatPendingTable(items []*domain.PendingItem) string {
	headers := []string{"ID", "DESCRIPTION", "CONTACT", "EXPECTED", "REPLIED", "STATUS", "PRIORITY"}
	rows := make([][]string, len(items))
	for i, p := range items {
		rows[i] = []string{
			Dim(shortID(p.ID)),
			p.Description,
			p.ContactInfo,
			dateCell(p.ExpectedCompletion),
			repliedCell(p.IsReplied),
			p.Status,
			p.Priority,
		}
	}
	return RenderTable(headers, rows)
}

// FormatIssueTable renders project issues keyed by display number.
func FormatIssueTable(issues []*domain.Issue) string {
	headers := []string{"NUMBER", "TITLE", "SEVERITY", "ASSIGNED", "STATUS", "TARGET", "ESCALATED"}
	rows := make([][]string, len(issues))
	for i, issue := range issues {
		escalated := Dim("-")
		if issue.IsEscalated {
			escalated = StyleRed.Render("yes")
		}
		rows[i] = []string{
			Bold(issue.Number),
			issue.Title,
			issue.Severity,
			issue.AssignedTo,
			issue.Status,
			dateCell(issue.TargetResolution),
			escalated,
		}
	}
	return RenderTable(headers, rows)
}

// FormatSettingsTable renders system settings with their declared types.
func FormatSettingsTable(settings []*domain.SystemSetting) string {
	headers := []string{"KEY", "VALUE", "TYPE", "DESCRIPTION"}
	rows := make([][]string, len(settings))
	for i, s := range settings {
		rows[i] = []string{
			Bold(s.Key),
			s.Value,
			Dim(string(s.Type)),
			s.Description,
		}
	}
	return RenderTable(headers, rows)
}

// FormatHolidayTable renders the holiday calendar.
func FormatHolidayTable(holidays []*domain.Holiday) string {
	headers := []string{"DATE", "NAME", "YEAR"}
	rows := make([][]string, len(holidays))
	for i, h := range holidays {
		rows[i] = []string{
			h.Date.Format(dateLayout),
			h.Name,
			strconv.Itoa(h.Year),
		}
	}
	return RenderTable(headers, rows)
}

func repliedCell(replied bool) string {
	if replied {
		return StyleGreen.Render("yes")
	}
	return StyleYellow.Render("no")
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
