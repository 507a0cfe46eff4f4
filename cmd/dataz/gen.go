package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/docker/go-units"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/exec"
)

func genCmd() *cobra.Command {
	var (
		targetID   string
		mode       string
		relations  []string
		database   string
		outPath    string
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "gen <scenario|path>",
		Short: "Generate a scenario into a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepo, err := openRuns()
			if err != nil {
				return err
			}
			defer runRepo.Close()

			svc := newService(runRepo)
			if !noProgress && isatty.IsTerminal(os.Stderr.Fd()) {
				svc.WithProgress(exec.NewBarProgress(os.Stderr))
			}

			req := &domain.RunRequest{
				TargetID:       targetID,
				Relations:      relations,
				Mode:           mode,
				TargetDatabase: database,
				OutPath:        outPath,
			}
			if isPath(args[0]) {
				req.Scenario, err = loadScenario(args[0])
				if err != nil {
					return err
				}
			} else {
				req.ScenarioID = args[0]
			}

			run, err := svc.StartRun(cmd.Context(), req)
			if err != nil {
				if run != nil {
					fmt.Printf("Run %s failed: %v\n", run.ID, err)
				}
				return err
			}

			fmt.Printf("Run %s completed successfully\n", run.ID)
			var stats domain.RunStats
			if err := json.Unmarshal(run.Stats, &stats); err != nil {
				return fmt.Errorf("failed to decode run stats: %w", err)
			}
			printStats(&stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetID, "target", "t", "", "Target ID")
	cmd.Flags().StringVar(&mode, "mode", domain.TableModeCreate, "Table mode (create|truncate|append)")
	cmd.Flags().StringSliceVar(&relations, "relations", nil, "Relations to generate (default all)")
	cmd.Flags().StringVar(&database, "database", "", "Override the database of a postgres target")
	cmd.Flags().StringVar(&outPath, "out", "", "Override the output path of a file or sqlite target")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func benchCmd() *cobra.Command {
	var relations []string

	cmd := &cobra.Command{
		Use:   "bench <scenario|path>",
		Short: "Generate a scenario in memory and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, scenario, err := scenarioArg(args[0])
			if err != nil {
				return err
			}
			stats, err := newService(nil).Bench(cmd.Context(), id, scenario, relations, 0)
			if err != nil {
				return err
			}
			printStats(stats)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&relations, "relations", nil, "Relations to generate (default all)")
	return cmd
}

func digestCmd() *cobra.Command {
	var (
		relations []string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "digest <scenario|path>",
		Short: "Print a SHA-256 digest of every relation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			id, scenario, err := scenarioArg(args[0])
			if err != nil {
				return err
			}
			results, err := newService(nil).Digest(cmd.Context(), id, scenario, relations, 0)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(results)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RELATION\tROWS\tSHA256")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%d\t%s\n", r.Relation, r.Rows, r.Digest)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&relations, "relations", nil, "Relations to digest (default all)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	return cmd
}

// scenarioArg returns either a scenario ID or a scenario loaded from a path.
func scenarioArg(arg string) (string, *domain.Scenario, error) {
	if !isPath(arg) {
		return arg, nil, nil
	}
	sc, err := loadScenario(arg)
	return "", sc, err
}

func printStats(stats *domain.RunStats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "RELATION\tBATCHES\tROWS\tSIZE\tSECONDS\tTHROUGHPUT\t")
	for _, rs := range stats.RelationStats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%.2f\t%s\t\n",
			rs.Relation, rs.Batches, rs.RowsGenerated, units.BytesSize(float64(rs.GoodBytes)),
			rs.DurationSeconds, throughput(rs.GoodBytes, rs.DurationSeconds))
	}
	fmt.Fprintf(w, "total\t%d\t%d\t%s\t%.2f\t%s\t\n",
		stats.TotalBatches, stats.TotalRows, units.BytesSize(float64(stats.GoodBytes)),
		stats.DurationSeconds, throughput(stats.GoodBytes, stats.DurationSeconds))
	w.Flush()
}

func throughput(bytes int64, seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	return units.BytesSize(float64(bytes)/seconds) + "/s"
}
