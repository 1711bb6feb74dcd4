package cli

import (
	"fmt"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/db"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a consistent snapshot of the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := out
			if dest == "" {
				dest = fmt.Sprintf("tracker-%s.db", time.Now().Format("20060102-150405"))
			}
			if err := db.Backup(app.DB, dest); err != nil {
				return err
			}
			fmt.Printf("Backup written to %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Destination file (default tracker-TIMESTAMP.db)")

	return cmd
}
