package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/cli/formatter"
	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/Emilyfan-learn/Project-manage/internal/repository"
	"github.com/Emilyfan-learn/Project-manage/internal/service"
	"github.com/spf13/cobra"
)

func newWBSCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wbs",
		Short: "Manage WBS tracking items",
	}

	cmd.AddCommand(
		newWBSAddCmd(app),
		newWBSListCmd(app),
		newWBSTreeCmd(app),
		newWBSInspectCmd(app),
		newWBSUpdateCmd(app),
		newWBSDoneCmd(app),
		newWBSChildrenCmd(app),
		newWBSRemoveCmd(app),
	)

	return cmd
}

// parseDateFlag parses a YYYY-MM-DD flag value into an optional date.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q: %w", name, value, err)
	}
	return &t, nil
}

func newWBSAddCmd(app *App) *cobra.Command {
	var project, wbsID, name, parent, category, owner, notes string
	var planStart, planEnd string
	var internal bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tracking item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			item := &domain.TrackingItem{
				ProjectID:  projectID,
				WBSID:      wbsID,
				TaskName:   name,
				Category:   category,
				OwnerUnit:  owner,
				Notes:      notes,
				IsInternal: internal,
			}
			if item.OriginalPlannedStart, err = parseDateFlag("start", planStart); err != nil {
				return err
			}
			if item.OriginalPlannedEnd, err = parseDateFlag("end", planEnd); err != nil {
				return err
			}

			if err := app.WBS.Create(ctx, item, parent); err != nil {
				return err
			}

			fmt.Printf("Added item %s %s\n", item.WBSID, item.TaskName)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&wbsID, "wbs", "", "Dotted WBS ID (e.g. 1.2.3)")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent WBS ID")
	cmd.Flags().StringVar(&category, "category", "Task", "Category")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner unit")
	cmd.Flags().StringVar(&planStart, "start", "", "Planned start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&planEnd, "end", "", "Planned end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().BoolVar(&internal, "internal", false, "Mark as internal")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("wbs")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWBSListCmd(app *App) *cobra.Command {
	var project, status string
	var includeInternal, open bool
	var offset, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracking items with derived schedule health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			filter := repository.ItemFilter{
				ProjectID:        projectID,
				Status:           domain.TrackingStatus(status),
				IncludeInternal:  includeInternal,
				ExcludeCompleted: open,
			}
			result, err := app.WBS.List(ctx, filter, service.ListOptions{Offset: offset, Limit: limit})
			if err != nil {
				return err
			}

			if len(result.Items) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			fmt.Printf("%s", formatter.FormatItemTable(result.Items))
			if len(result.Items) < result.Total {
				fmt.Printf("%s\n", formatter.Dim(fmt.Sprintf("showing %d of %d items", len(result.Items), result.Total)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().BoolVar(&includeInternal, "internal", false, "Include internal items")
	cmd.Flags().BoolVar(&open, "open", false, "Exclude completed items")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	cmd.Flags().IntVar(&limit, "limit", 0, "Pagination limit (0 = all)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWBSTreeCmd(app *App) *cobra.Command {
	var project string
	var includeInternal bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the WBS hierarchy with schedule health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			roots, err := app.WBS.Tree(ctx, projectID, includeInternal)
			if err != nil {
				return err
			}
			if len(roots) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			fmt.Printf("%s", formatter.FormatWBSTree(roots))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().BoolVar(&includeInternal, "internal", false, "Include internal items")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWBSInspectCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "inspect WBS_ID",
		Short: "Show item details and derived metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(projectID, args[0])
			if err != nil {
				return err
			}

			view, err := app.WBS.Get(ctx, itemID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatItemDetail(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWBSUpdateCmd(app *App) *cobra.Command {
	var project, name, category, owner, status, notes string
	var planStart, planEnd, revStart, revEnd, actualStart, actualEnd string
	var progress, workDays int
	var internal, alert bool

	cmd := &cobra.Command{
		Use:   "update WBS_ID",
		Short: "Update a tracking item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(projectID, args[0])
			if err != nil {
				return err
			}
			view, err := app.WBS.Get(ctx, itemID)
			if err != nil {
				return err
			}
			item := view.Item

			if cmd.Flags().Changed("name") {
				item.TaskName = name
			}
			if cmd.Flags().Changed("category") {
				item.Category = category
			}
			if cmd.Flags().Changed("owner") {
				item.OwnerUnit = owner
			}
			if cmd.Flags().Changed("status") {
				item.Status = domain.TrackingStatus(status)
			}
			if cmd.Flags().Changed("notes") {
				item.Notes = notes
			}
			if cmd.Flags().Changed("progress") {
				item.ActualProgress = progress
			}
			if cmd.Flags().Changed("work-days") {
				item.WorkDays = &workDays
			}
			if cmd.Flags().Changed("internal") {
				item.IsInternal = internal
			}
			if cmd.Flags().Changed("alert") {
				item.AlertFlag = alert
			}

			for _, d := range []struct {
				flag  string
				value string
				field **time.Time
			}{
				{"start", planStart, &item.OriginalPlannedStart},
				{"end", planEnd, &item.OriginalPlannedEnd},
				{"revised-start", revStart, &item.RevisedPlannedStart},
				{"revised-end", revEnd, &item.RevisedPlannedEnd},
				{"actual-start", actualStart, &item.ActualStart},
				{"actual-end", actualEnd, &item.ActualEnd},
			} {
				if !cmd.Flags().Changed(d.flag) {
					continue
				}
				parsed, err := parseDateFlag(d.flag, d.value)
				if err != nil {
					return err
				}
				*d.field = parsed
			}

			if err := app.WBS.Update(ctx, item); err != nil {
				return err
			}

			fmt.Printf("Updated item %s %s\n", item.WBSID, item.TaskName)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner unit")
	cmd.Flags().StringVar(&status, "status", "", "Status (未開始|進行中|已完成|已取消)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().IntVar(&progress, "progress", 0, "Actual progress (0-100)")
	cmd.Flags().IntVar(&workDays, "work-days", 0, "Planned work days")
	cmd.Flags().StringVar(&planStart, "start", "", "Planned start (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&planEnd, "end", "", "Planned end (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&revStart, "revised-start", "", "Revised start (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&revEnd, "revised-end", "", "Revised end (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&actualStart, "actual-start", "", "Actual start (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&actualEnd, "actual-end", "", "Actual end (YYYY-MM-DD, empty clears)")
	cmd.Flags().BoolVar(&internal, "internal", false, "Mark as internal")
	cmd.Flags().BoolVar(&alert, "alert", false, "Set the alert flag")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWBSDoneCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "done WBS_ID",
		Short: "Mark an item as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(projectID, args[0])
			if err != nil {
				return err
			}
			view, err := app.WBS.Get(ctx, itemID)
			if err != nil {
				return err
			}
			item := view.Item

			item.Status = domain.StatusCompleted
			item.ActualProgress = 100
			if item.ActualEnd == nil {
				today := time.Now().UTC().Truncate(24 * time.Hour)
				item.ActualEnd = &today
			}

			if err := app.WBS.Update(ctx, item); err != nil {
				return err
			}

			fmt.Printf("Completed item %s %s\n", item.WBSID, item.TaskName)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWBSChildrenCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "children WBS_ID",
		Short: "List direct children of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(projectID, args[0])
			if err != nil {
				return err
			}

			children, err := app.WBS.Children(ctx, itemID)
			if err != nil {
				return err
			}
			if len(children) == 0 {
				fmt.Println("No children found.")
				return nil
			}

			fmt.Printf("%s", formatter.FormatItemTable(children))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newWBSRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove WBS_ID",
		Short: "Remove a tracking item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(projectID, args[0])
			if err != nil {
				return err
			}
			if err := app.WBS.Delete(ctx, itemID); err != nil {
				return err
			}
			fmt.Printf("Removed item %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
