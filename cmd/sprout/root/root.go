package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sprout/internal/config"
	"sprout/internal/ui"
)

const Version = "0.1.0"

var (
	configPath string
	dbPath     string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sprout",
		Short:         "Sprout — keep a plant alive by finishing your daily tasks",
		Long:          "Sprout is a local-first CLI/TUI plant companion. Complete tasks to water it, meet the daily goal to grow your streak.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML)")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(
		newStatusCmd(),
		newDoCmd(),
		newGardenCmd(),
		newHistoryCmd(),
		newResetCmd(),
		newTickCmd(),
	)
	return cmd
}

func setup(cmd *cobra.Command) error {
	bootstrap := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	loader := config.NewLoader(bootstrap)
	loader.ExplicitPath = configPath
	c, err := loader.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DB.Path = dbPath
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	level, err := config.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}

	cfg = c
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
