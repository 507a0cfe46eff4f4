package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmrzaf/dataz/internal/app"
	"github.com/mmrzaf/dataz/internal/config"
	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/infra/repos/runs"
	"github.com/mmrzaf/dataz/internal/infra/repos/scenarios"
	"github.com/mmrzaf/dataz/internal/infra/repos/targets"
	"github.com/mmrzaf/dataz/internal/logging"
	"github.com/mmrzaf/dataz/internal/registry"
)

var (
	cfg        *config.Config
	configPath string
	logger     *logging.Logger
)

func main() {
	cfg = config.Load()

	rootCmd := &cobra.Command{
		Use:           "dataz",
		Short:         "Reproducible benchmark dataset generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				// Flags are bound to cfg, so save the explicit ones before the
				// file overwrites them.
				saved := *cfg
				if err := cfg.LoadFile(configPath); err != nil {
					return err
				}
				applyFlagOverrides(cmd, &saved)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = logging.New(cfg.LogLevel, strings.ToLower(cfg.LogFormat))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (yaml or toml)")
	flags.StringVar(&cfg.ScenariosDir, "scenarios-dir", cfg.ScenariosDir, "Scenarios directory")
	flags.StringVar(&cfg.TargetsDir, "targets-dir", cfg.TargetsDir, "Targets directory")
	flags.StringVar(&cfg.RunsDBPath, "runs-db", cfg.RunsDBPath, "Runs database path")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console|json)")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Generator goroutines per relation")

	rootCmd.AddCommand(setCmd())
	rootCmd.AddCommand(scenarioCmd())
	rootCmd.AddCommand(targetCmd())
	rootCmd.AddCommand(genCmd())
	rootCmd.AddCommand(benchCmd())
	rootCmd.AddCommand(digestCmd())
	rootCmd.AddCommand(runsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides copies the values of flags given on the command line
// from saved, since they take precedence over the config file.
func applyFlagOverrides(cmd *cobra.Command, saved *config.Config) {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("scenarios-dir", &cfg.ScenariosDir, saved.ScenariosDir)
	set("targets-dir", &cfg.TargetsDir, saved.TargetsDir)
	set("runs-db", &cfg.RunsDBPath, saved.RunsDBPath)
	set("log-level", &cfg.LogLevel, saved.LogLevel)
	set("log-format", &cfg.LogFormat, saved.LogFormat)
	if flags.Changed("workers") {
		cfg.Workers = saved.Workers
	}
}

func newService(runRepo runs.Repository) *app.RunService {
	return app.NewRunService(
		scenarios.NewFileRepository(cfg.ScenariosDir),
		targets.NewFileRepository(cfg.TargetsDir),
		runRepo,
		registry.DefaultRegistry(),
		logger,
		cfg.Workers,
		cfg.PageSizeBytes,
	)
}

func openRuns() (*runs.SQLiteRepository, error) {
	repo := runs.NewSQLiteRepository(cfg.RunsDBPath)
	if err := repo.Init(); err != nil {
		return nil, fmt.Errorf("failed to open runs database: %w", err)
	}
	return repo, nil
}

// isPath reports whether arg names a file rather than an ID.
func isPath(arg string) bool {
	if strings.Contains(arg, "/") {
		return true
	}
	for _, ext := range []string{".yaml", ".yml", ".json", ".toml"} {
		if strings.HasSuffix(arg, ext) {
			return true
		}
	}
	return false
}

func loadScenario(arg string) (*domain.Scenario, error) {
	repo := scenarios.NewFileRepository(cfg.ScenariosDir)
	if isPath(arg) {
		return repo.GetByPath(arg)
	}
	return repo.Get(arg)
}

func loadTarget(arg string) (*domain.TargetConfig, error) {
	repo := targets.NewFileRepository(cfg.TargetsDir)
	if isPath(arg) {
		return repo.GetByPath(arg)
	}
	return repo.Get(arg)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}
