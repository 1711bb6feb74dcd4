package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Emilyfan-learn/Project-manage/internal/cli/formatter"
	"github.com/Emilyfan-learn/Project-manage/internal/domain"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage the non-working day calendar",
	}

	cmd.AddCommand(
		newHolidayAddCmd(app),
		newHolidayListCmd(app),
		newHolidayRemoveCmd(app),
	)

	return cmd
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add DATE",
		Short: "Add a holiday (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}

			h := &domain.Holiday{Date: date, Name: name}
			if err := app.Settings.AddHoliday(context.Background(), h); err != nil {
				return err
			}

			fmt.Printf("Added holiday %s %s\n", args[0], name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Holiday name")

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays, err := app.Settings.ListHolidays(context.Background(), year)
			if err != nil {
				return err
			}
			if len(holidays) == 0 {
				fmt.Println("No holidays found.")
				return nil
			}
			fmt.Printf("%s", formatter.FormatHolidayTable(holidays))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (0 = all)")

	return cmd
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DATE",
		Short: "Remove a holiday by date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.RemoveHoliday(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed holiday %s\n", args[0])
			return nil
		},
	}
}
