package formatter

import (
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatProjectList renders projects as a table keyed by short ID.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "START", "END"}
	rows := make([][]string, len(projects))
	for i, p := range projects {
		rows[i] = []string{
			Bold(p.DisplayID()),
			p.Name,
			projectStatusCell(p.Status),
			dateCell(p.StartDate),
			dateCell(p.EndDate),
		}
	}
	return RenderTable(headers, rows)
}

func projectStatusCell(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectActive:
		return StyleGreen.Render(string(s))
	case domain.ProjectPaused:
		return StyleYellow.Render(string(s))
	case domain.ProjectClosed:
		return StyleDim.Render(string(s))
	default:
		return string(s)
	}
}

func dateCell(t *time.Time) string {
	if t == nil {
		return Dim("-")
	}
	return t.Format(dateLayout)
}
