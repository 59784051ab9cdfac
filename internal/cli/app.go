// Package cli is the farmerbot command line: serve ticks over HTTP, follow a
// websocket host, run one offline tick, or migrate the journal database.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"farmerbot/internal/adapter/logging"
	gormrepo "farmerbot/internal/adapter/repo/gorm"
	"farmerbot/internal/adapter/repo/memory"
	"farmerbot/internal/app/ports"
	"farmerbot/internal/config"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
}

func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "farmerbot",
		Short: "Decision engine for an autonomous farming bot",
		Long: `farmerbot decides, once per tick, what a farming bot does next: restock
and sell at the market, pick the best nearby field, and send one action.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newServeCmd(),
		app.newConnectCmd(),
		app.newTickCmd(),
		app.newMigrateCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "farmerbot version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
		},
	}
}

func (a *App) logger(cfg config.Config) *slog.Logger {
	return logging.NewText(a.stderr, cfg.LogLevel)
}

// journal picks the postgres store when a DSN is configured and an in-memory
// store otherwise.
func journal(cfg config.Config, logger *slog.Logger) (ports.DecisionRepository, error) {
	if cfg.DSN == "" {
		logger.Info("no database configured, journaling decisions in memory")
		return memory.NewDecisionRepo(memory.NewStore()), nil
	}
	db, err := gormrepo.OpenPostgres(cfg.DSN)
	if err != nil {
		return nil, err
	}
	return gormrepo.NewDecisionRepo(db), nil
}
