package cli

import (
	"fmt"

	"github.com/mkoval/plotline/internal/domain"
	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "move <node-id>",
		Short: "Save a local position override for a node's title",
		Long: "Save a local position override for a node's title. Overrides live\n" +
			"on this machine only and win over the server-side offset when nodes\n" +
			"are listed. Moves within 5 units of the saved position are ignored.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			prev, had := app.Positions.Get(id)
			if err := app.Store.SaveNodePosition(id, domain.Offset{X: x, Y: y}); err != nil {
				return err
			}
			cur, _ := app.Positions.Get(id)
			if had && cur == prev {
				fmt.Fprintf(cmd.OutOrStdout(), "Move within threshold, keeping (%.0f, %.0f).\n", prev.X, prev.Y)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Position for %s saved at (%.0f, %.0f).\n", id, cur.X, cur.Y)
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "horizontal offset")
	cmd.Flags().Float64Var(&y, "y", 0, "vertical offset")
	return cmd
}
