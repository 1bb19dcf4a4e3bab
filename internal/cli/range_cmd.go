package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const rangeDateLayout = "2006-01-02"

func newRangeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Show or set the visible date range",
	}
	cmd.AddCommand(
		newRangeShowCmd(app),
		newRangeSetCmd(app),
	)
	return cmd
}

func newRangeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Store.LoadSettings(cmd.Context())
			start, end := app.Store.DateRange()
			fmt.Fprintf(cmd.OutOrStdout(), "%s .. %s\n",
				start.Format(rangeDateLayout), end.Format(rangeDateLayout))
			return nil
		},
	}
}

func newRangeSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <start> <end>",
		Short: "Save a date range (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(rangeDateLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", args[0], err)
			}
			end, err := time.Parse(rangeDateLayout, args[1])
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", args[1], err)
			}
			app.Store.SetDateRange(cmd.Context(), start, end)
			fmt.Fprintln(cmd.OutOrStdout(), "Date range saved.")
			return nil
		},
	}
}
