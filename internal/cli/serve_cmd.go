package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkoval/plotline/internal/api"
	"github.com/mkoval/plotline/internal/db"
	"github.com/mkoval/plotline/internal/repository"
	"github.com/mkoval/plotline/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type serveOptions struct {
	addr   string
	dbPath string
}

func (o *serveOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.addr, "addr", "", "listen address (overrides config)")
	fs.StringVar(&o.dbPath, "db", "", "sqlite database path (overrides config)")
}

func newServeCmd(app *App) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the timeline HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := app.Config.ListenAddr
			if opts.addr != "" {
				addr = opts.addr
			}
			dbPath := app.Config.DBPath
			if opts.dbPath != "" {
				dbPath = opts.dbPath
			}

			database, err := db.OpenDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			nodeRepo := repository.NewSQLiteNodeRepo(database)
			todoRepo := repository.NewSQLiteTodoRepo(database)
			settingsRepo := repository.NewSQLiteSettingsRepo(database)

			observer := service.NewLogUseCaseObserver(os.Stderr)
			nodes := service.NewNodeService(nodeRepo, todoRepo, observer)
			todos := service.NewTodoService(todoRepo, observer)
			settings := service.NewSettingsService(settingsRepo, observer)

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := api.NewServer(api.ServerConfig{Addr: addr}, nodes, todos, settings, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}
