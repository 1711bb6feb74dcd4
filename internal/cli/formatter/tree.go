package formatter

import (
	"fmt"
	"strings"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/schedule"
	"github.com/charmbracelet/lipgloss"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// FormatWBSTree renders a metrics-annotated forest using box-drawing
// connectors. Completed items get a green ✔, in-progress items an amber ▶,
// cancelled items are dimmed. Unlinked roots carry a marker so the broken
// parent reference is visible. Health badges are right-aligned.
func FormatWBSTree(roots []*schedule.TreeNode) string {
	type line struct {
		content string
		badge   string
	}

	var lines []line
	maxWidth := 0

	var walk func(nodes []*schedule.TreeNode, depth int)
	walk = func(nodes []*schedule.TreeNode, depth int) {
		for i, node := range nodes {
			var prefix string
			if depth > 0 {
				prefix = strings.Repeat(treePipe, depth-1)
				if i == len(nodes)-1 {
					prefix += treeCorner
				} else {
					prefix += treeBranch
				}
			}

			title := StyleDim.Render(node.Item.WBSID+" ") + node.Item.TaskName
			statusPrefix := ""
			switch node.Item.Status {
			case domain.StatusCompleted:
				statusPrefix = StyleGreen.Render("✔ ")
				title = Dim(node.Item.WBSID + " " + node.Item.TaskName)
			case domain.StatusInProgress:
				statusPrefix = StyleYellowBold.Render("▶ ")
			case domain.StatusCancelled:
				title = Dim(node.Item.WBSID + " " + node.Item.TaskName)
			}
			if node.Orphaned {
				title += " " + StyleRed.Render("(unlinked)")
			}

			content := prefix + statusPrefix + title
			badge := healthBadge(node)

			lines = append(lines, line{content: content, badge: badge})
			if w := lipgloss.Width(content); w > maxWidth {
				maxWidth = w
			}

			walk(node.Children, depth+1)
		}
	}
	walk(roots, 0)

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			b.WriteString(li.content + pad(maxWidth-lipgloss.Width(li.content)) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}
	return b.String()
}

func healthBadge(node *schedule.TreeNode) string {
	if node.Item.Status.IsClosed() {
		return ""
	}
	progress := fmt.Sprintf("%d%%/%d%%", node.Item.ActualProgress, node.Metrics.EstimatedProgress)
	return StyleBlue.Render("[ "+progress+" ]") + " " + HealthIndicator(node.Item.Status, node.Metrics)
}
