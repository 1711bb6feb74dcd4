package cli

import (
	"context"
	"fmt"

	"github.com/Emilyfan-learn/Project-manage/internal/cli/formatter"
	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/spf13/cobra"
)

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage project issues",
	}

	cmd.AddCommand(
		newIssueAddCmd(app),
		newIssueListCmd(app),
		newIssueUpdateCmd(app),
		newIssueResolveCmd(app),
		newIssueRemoveCmd(app),
	)

	return cmd
}

func newIssueAddCmd(app *App) *cobra.Command {
	var project, title, description, issueType, category, severity, priority string
	var reportedBy, assignedTo, target string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Report a new issue",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			issue := &domain.Issue{
				ProjectID:   projectID,
				Title:       title,
				Description: description,
				Type:        issueType,
				Category:    category,
				Severity:    severity,
				Priority:    priority,
				ReportedBy:  reportedBy,
				AssignedTo:  assignedTo,
			}
			if issue.TargetResolution, err = parseDateFlag("target", target); err != nil {
				return err
			}

			if err := app.Issues.Create(ctx, issue); err != nil {
				return err
			}

			fmt.Printf("Created issue %s %s\n", issue.Number, issue.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&title, "title", "", "Issue title")
	cmd.Flags().StringVar(&description, "desc", "", "Issue description")
	cmd.Flags().StringVar(&issueType, "type", "", "Issue type")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&severity, "severity", "", "Severity")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority")
	cmd.Flags().StringVar(&reportedBy, "reporter", "", "Reported by")
	cmd.Flags().StringVar(&assignedTo, "assignee", "", "Assigned to")
	cmd.Flags().StringVar(&target, "target", "", "Target resolution date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newIssueListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues for a project",
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
			if len(issues) == 0 {
				fmt.Println("No issues found.")
				return nil
			}

			fmt.Printf("%s", formatter.FormatIssueTable(issues))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newIssueUpdateCmd(app *App) *cobra.Command {
	var project, title, description, severity, priority, status, assignedTo, target string
	var escalated bool

	cmd := &cobra.Command{
		Use:   "update NUMBER",
		Short: "Update an issue by number (e.g. ISS-003)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			issue, err := app.Issues.GetByNumber(ctx, projectID, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				issue.Title = title
			}
			if cmd.Flags().Changed("desc") {
				issue.Description = description
			}
			if cmd.Flags().Changed("severity") {
				issue.Severity = severity
			}
			if cmd.Flags().Changed("priority") {
				issue.Priority = priority
			}
			if cmd.Flags().Changed("status") {
				issue.Status = status
			}
			if cmd.Flags().Changed("assignee") {
				issue.AssignedTo = assignedTo
			}
			if cmd.Flags().Changed("escalated") {
				issue.IsEscalated = escalated
			}
			if cmd.Flags().Changed("target") {
				if issue.TargetResolution, err = parseDateFlag("target", target); err != nil {
					return err
				}
			}

			if err := app.Issues.Update(ctx, issue); err != nil {
				return err
			}

			fmt.Printf("Updated issue %s %s\n", issue.Number, issue.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&title, "title", "", "Issue title")
	cmd.Flags().StringVar(&description, "desc", "", "Issue description")
	cmd.Flags().StringVar(&severity, "severity", "", "Severity")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringVar(&assignedTo, "assignee", "", "Assigned to")
	cmd.Flags().StringVar(&target, "target", "", "Target resolution date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&escalated, "escalated", false, "Escalation flag")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newIssueResolveCmd(app *App) *cobra.Command {
	var project, resolution string

	cmd := &cobra.Command{
		Use:   "resolve NUMBER",
		Short: "Resolve an issue by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			if err := app.Issues.Resolve(ctx, projectID, args[0], resolution); err != nil {
				return err
			}
			fmt.Printf("Resolved issue %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().StringVar(&resolution, "resolution", "", "Resolution summary")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newIssueRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove NUMBER",
		Short: "Remove an issue by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			issue, err := app.Issues.GetByNumber(ctx, projectID, args[0])
			if err != nil {
				return err
			}
			if err := app.Issues.Delete(ctx, issue.ID); err != nil {
				return err
			}
			fmt.Printf("Removed issue %s\n", issue.Number)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
