package cli

import (
	"context"
	"fmt"

	"github.com/Emilyfan-learn/Project-manage/internal/cli/formatter"
	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/spf13/cobra"
)

func newPendingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Manage pending follow-up items",
	}

	cmd.AddCommand(
		newPendingAddCmd(app),
		newPendingListCmd(app),
		newPendingUpdateCmd(app),
		newPendingReplyCmd(app),
		newPendingRemoveCmd(app),
	)

	return cmd
}

func newPendingAddCmd(app *App) *cobra.Command {
	var project, description, contact, source, notes, relatedWBS, priority string
	var taskDate, expected string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pending item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			p := &domain.PendingItem{
				ProjectID:     projectID,
				Description:   description,
				ContactInfo:   contact,
				SourceType:    source,
				HandlingNotes: notes,
				RelatedWBS:    relatedWBS,
				Priority:      priority,
			}
			if p.TaskDate, err = parseDateFlag("date", taskDate); err != nil {
				return err
			}
			if p.ExpectedCompletion, err = parseDateFlag("expected", expected); err != nil {
				return err
			}

			if err := app.Pending.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Added pending item %s\n", p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&description, "desc", "", "What is being waited on")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact person or channel")
	cmd.Flags().StringVar(&source, "source", "", "Source type (meeting, email, ...)")
	cmd.Flags().StringVar(&taskDate, "date", "", "Task date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&expected, "expected", "", "Expected completion (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Handling notes")
	cmd.Flags().StringVar(&relatedWBS, "wbs", "", "Related WBS ID (informational)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newPendingListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending items for a project",
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
			if len(items) == 0 {
				fmt.Println("No pending items found.")
				return nil
			}

			fmt.Printf("%s", formatter.FormatPendingTable(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newPendingUpdateCmd(app *App) *cobra.Command {
	var description, contact, notes, status, priority, expected string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a pending item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Pending.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("desc") {
				p.Description = description
			}
			if cmd.Flags().Changed("contact") {
				p.ContactInfo = contact
			}
			if cmd.Flags().Changed("notes") {
				p.HandlingNotes = notes
			}
			if cmd.Flags().Changed("status") {
				p.Status = status
			}
			if cmd.Flags().Changed("priority") {
				p.Priority = priority
			}
			if cmd.Flags().Changed("expected") {
				if p.ExpectedCompletion, err = parseDateFlag("expected", expected); err != nil {
					return err
				}
			}

			if err := app.Pending.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated pending item %s\n", p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "What is being waited on")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact person or channel")
	cmd.Flags().StringVar(&notes, "notes", "", "Handling notes")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority")
	cmd.Flags().StringVar(&expected, "expected", "", "Expected completion (YYYY-MM-DD)")

	return cmd
}

func newPendingReplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reply ID",
		Short: "Mark a pending item as replied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Pending.MarkReplied(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked pending item %s as replied\n", args[0])
			return nil
		},
	}
}

func newPendingRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a pending item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Pending.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed pending item %s\n", args[0])
			return nil
		},
	}
}
