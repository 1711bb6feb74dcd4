package cli

import (
	"context"
	"fmt"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage item dependencies",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepRemoveCmd(app),
		newDepListCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "add PREDECESSOR SUCCESSOR",
		Short: "Record that one item must finish before another starts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			pred, err := resolveItemID(projectID, args[0])
			if err != nil {
				return err
			}
			succ, err := resolveItemID(projectID, args[1])
			if err != nil {
				return err
			}
			if err := app.Dependencies.Add(ctx, pred, succ); err != nil {
				return err
			}
			fmt.Printf("Added dependency %s -> %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove PREDECESSOR SUCCESSOR",
		Short: "Remove a dependency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			pred, err := resolveItemID(projectID, args[0])
			if err != nil {
				return err
			}
			succ, err := resolveItemID(projectID, args[1])
			if err != nil {
				return err
			}
			if err := app.Dependencies.Remove(ctx, pred, succ); err != nil {
				return err
			}
			fmt.Printf("Removed dependency %s -> %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list WBS_ID",
		Short: "Show predecessors and successors of an item",
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

			preds, err := app.Dependencies.ListPredecessors(ctx, itemID)
			if err != nil {
				return err
			}
			succs, err := app.Dependencies.ListSuccessors(ctx, itemID)
			if err != nil {
				return err
			}

			printDeps("Predecessors", preds, func(d domain.ItemDependency) string { return d.PredecessorItemID })
			printDeps("Successors", succs, func(d domain.ItemDependency) string { return d.SuccessorItemID })
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func printDeps(label string, deps []domain.ItemDependency, pick func(domain.ItemDependency) string) {
	fmt.Printf("%s:\n", label)
	if len(deps) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, d := range deps {
		fmt.Printf("  %s\n", pick(d))
	}
}
