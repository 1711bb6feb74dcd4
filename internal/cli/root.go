package cli

import (
	"database/sql"

	"github.com/Emilyfan-learn/Project-manage/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects     service.ProjectService
	WBS          service.WBSService
	Settings     service.SettingsService
	Pending      service.PendingService
	Issues       service.IssueService
	Dependencies service.DependencyService

	// DB is exposed for maintenance commands (backup).
	DB *sql.DB
}

// NewRootCmd creates the top-level "tracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracker",
		Short: "Project tracking with derived schedule health",
	}

	root.AddCommand(
		newProjectCmd(app),
		newWBSCmd(app),
		newPendingCmd(app),
		newIssueCmd(app),
		newDepCmd(app),
		newSettingsCmd(app),
		newHolidayCmd(app),
		newCSVCmd(app),
		newBackupCmd(app),
	)

	return root
}
