package formatter

import (
	"fmt"
	"strings"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/schedule"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HealthIndicator returns a colored schedule health badge for an item.
// Overdue dominates behind-schedule; a closed item is always quiet.
func HealthIndicator(status domain.TrackingStatus, m schedule.Metrics) string {
	switch {
	case status == domain.StatusCompleted:
		return StyleGreen.Render("● DONE")
	case status == domain.StatusCancelled:
		return StyleDim.Render("● CANCELLED")
	case m.IsOverdue:
		return StyleRed.Render("● OVERDUE")
	case m.IsBehindSchedule:
		return StyleYellow.Render("● BEHIND")
	default:
		return StyleGreen.Render("● ON TRACK")
	}
}

// VarianceBadge renders actual vs estimated progress with a signed variance,
// colored by direction.
func VarianceBadge(m schedule.Metrics) string {
	text := fmt.Sprintf("%+d%%", m.ProgressVariance)
	switch {
	case m.ProgressVariance < 0:
		return StyleRed.Render(text)
	case m.ProgressVariance > 0:
		return StyleGreen.Render(text)
	default:
		return StyleDim.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
