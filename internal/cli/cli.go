package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/calendario/internal/config"
	"github.com/pfrederiksen/calendario/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// skipConfigLoad marks commands that must run even when the config file
// cannot be parsed.
const skipConfigLoad = "calendario/skip-config-load"

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "calendario",
		Short: "A calendar with hourly day screens",
		Long: `calendario shows a scrollable multi-year month grid and, for each day,
24 hourly slots that can hold an event. Events live only as long as the
day screen that holds them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	cmd.AddCommand(
		newServeCmd(a),
		newGridCmd(a),
		newDayCmd(a),
		newConfigCmd(a),
	)

	return cmd
}

// setup loads the config and configures the default logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if cmd.Annotations[skipConfigLoad] == "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		cfg.Normalize()
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(level, logOutput(cmd)))

	a.cfg = cfg
	return nil
}

// logOutput keeps logs off stdout so command output stays clean.
func logOutput(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
