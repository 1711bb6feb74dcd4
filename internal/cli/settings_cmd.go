package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Emilyfan-learn/Project-manage/internal/cli/formatter"
	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage system settings and per-project lists",
	}

	cmd.AddCommand(
		newSettingsListCmd(app),
		newSettingsSetCmd(app),
		newOwnerUnitCmd(app),
	)

	return cmd
}

func newSettingsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List system settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.ListSettings(context.Background())
			if err != nil {
				return err
			}
			if len(settings) == 0 {
				fmt.Println("No settings found.")
				return nil
			}
			fmt.Printf("%s", formatter.FormatSettingsTable(settings))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var typ, description string

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a system setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settingType := domain.SettingType(typ)
			switch settingType {
			case domain.SettingString, domain.SettingNumber, domain.SettingBoolean:
			default:
				return fmt.Errorf("invalid setting type %q (string|number|boolean)", typ)
			}

			if err := app.Settings.Set(context.Background(), args[0], args[1], settingType, description); err != nil {
				return err
			}
			fmt.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "string", "Value type (string|number|boolean)")
	cmd.Flags().StringVar(&description, "desc", "", "Setting description")

	return cmd
}

func newOwnerUnitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner-unit",
		Short: "Manage per-project owner unit lists",
	}

	cmd.AddCommand(
		newOwnerUnitListCmd(app),
		newOwnerUnitAddCmd(app),
		newOwnerUnitRemoveCmd(app),
	)

	return cmd
}

func newOwnerUnitListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List owner units for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			units, err := app.Settings.ListOwnerUnits(ctx, projectID)
			if err != nil {
				return err
			}
			if len(units) == 0 {
				fmt.Println("No owner units found.")
				return nil
			}
			for _, u := range units {
				fmt.Printf("%4d  %s\n", u.ID, u.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newOwnerUnitAddCmd(app *App) *cobra.Command {
	var project string
	var order int

	cmd := &cobra.Command{
		Use:   "add UNIT",
		Short: "Add an owner unit to a project list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			if err := app.Settings.AddOwnerUnit(ctx, projectID, args[0], order); err != nil {
				return err
			}
			fmt.Printf("Added owner unit %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (short ID or UUID)")
	cmd.Flags().IntVar(&order, "order", 0, "Display order")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newOwnerUnitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Deactivate an owner unit entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid owner unit ID %q: %w", args[0], err)
			}
			if err := app.Settings.RemoveOwnerUnit(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed owner unit %d\n", id)
			return nil
		},
	}
}
