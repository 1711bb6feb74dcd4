package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Emilyfan-learn/Project-manage/internal/exchange"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
	"github.com/spf13/cobra"
)

func newCSVCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Import and export CSV files",
	}

	cmd.AddCommand(
		newCSVImportCmd(app),
		newCSVExportCmd(app),
		newCSVExportPendingCmd(app),
		newCSVExportIssuesCmd(app),
		newCSVTemplateCmd(app),
	)

	return cmd
}

func newCSVImportCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import WBS items from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			result, err := exchange.NewImporter(app.WBS).ImportWBS(ctx, f, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d items (%d skipped, %d failed)\n",
				result.Imported, result.Skipped, len(result.Failed))
			for _, re := range result.Failed {
				fmt.Printf("  row %d (%s): %v\n", re.Row, re.WBSID, re.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newCSVExportCmd(app *App) *cobra.Command {
	var project, out string
	var includeInternal bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export WBS items to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			result, err := app.WBS.List(ctx,
				repository.ItemFilter{ProjectID: projectID, IncludeInternal: includeInternal},
				service.ListOptions{})
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			n, err := exchange.ExportWBS(f, result.Items)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d items to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&out, "out", "wbs.csv", "Output file")
	cmd.Flags().BoolVar(&includeInternal, "internal", true, "Include internal items")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newCSVExportPendingCmd(app *App) *cobra.Command {
	var project, out string

	cmd := &cobra.Command{
		Use:   "export-pending",
		Short: "Export pending items to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			items, err := app.Pending.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			n, err := exchange.ExportPending(f, items)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d pending items to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&out, "out", "pending.csv", "Output file")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newCSVExportIssuesCmd(app *App) *cobra.Command {
	var project, out string

	cmd := &cobra.Command{
		Use:   "export-issues",
		Short: "Export issues to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			issues, err := app.Issues.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			n, err := exchange.ExportIssues(f, issues)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d issues to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&out, "out", "issues.csv", "Output file")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newCSVTemplateCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a WBS import template with sample rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			if err := exchange.WriteTemplate(f); err != nil {
				return err
			}

			fmt.Printf("Wrote template to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "wbs_template.csv", "Output file")

	return cmd
}
