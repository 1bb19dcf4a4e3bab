package cli

import (
	"github.com/mkoval/plotline/internal/client"
	"github.com/mkoval/plotline/internal/config"
	"github.com/spf13/cobra"
)

// App holds the shared dependencies CLI commands run against.
type App struct {
	Config    *config.Config
	Store     *client.Store
	Positions *client.PositionStore

	// IsInteractive reports whether stdout is a terminal; styled output
	// is disabled otherwise.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "plotline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "plotline",
		Short:         "Project timeline tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCmd(app),
		newNodeCmd(app),
		newTodoCmd(app),
		newRangeCmd(app),
		newMoveCmd(app),
	)

	return root
}
