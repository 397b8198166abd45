package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conorfennell/memora/internal/config"
	"github.com/conorfennell/memora/internal/logging"
)

// app is the state shared by every command once flags are parsed.
type app struct {
	configFile string
	userID     string
	cfg        *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	rootCommand := &cobra.Command{
		Use:           "memora",
		Short:         "Spaced repetition flashcards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.cfg = cfg
			logging.Setup(cfg.Log)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file path")
	flags.StringVarP(&a.userID, "user", "u", envOr("MEMORA_USER", "local"), "user to act as")
	flags.String("log-level", "info", "log level: trace, debug, info, warn or error")
	flags.Bool("log-pretty", false, "human readable log output")
	flags.String("backend", config.BackendSQLite, "storage backend: sqlite or postgres")
	flags.String("db", "memora.db", "SQLite database path")
	flags.String("pg-url", "", "PostgreSQL connection URL")

	rootCommand.AddCommand(
		newServeCommand(a),
		newReviewCommand(a),
		newDueCommand(a),
		newImportCommand(a),
		newDeckCommand(a),
		newSyncCommand(a),
		newTokenCommand(a),
	)
	return rootCommand
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
