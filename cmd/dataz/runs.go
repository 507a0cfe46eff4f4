package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/dataz/internal/domain"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the run history",
	}

	var (
		limit  int
		status string
		format string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			runRepo, err := openRuns()
			if err != nil {
				return err
			}
			defer runRepo.Close()

			list, err := newService(runRepo).ListRuns(limit, status)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(list)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tSET\tTARGET\tSTATUS\tROWS\tSTARTED")
			for _, r := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID[:8], r.ScenarioName, r.Set, r.TargetName, r.Status, runRows(r), r.StartedAt.Format("2006-01-02 15:04"))
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "Limit results")
	listCmd.Flags().StringVar(&status, "status", "", "Filter by status")
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <run_id>",
		Short: "Show run details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepo, err := openRuns()
			if err != nil {
				return err
			}
			defer runRepo.Close()

			run, err := newService(runRepo).GetRun(args[0])
			if err != nil {
				return err
			}

			// Round trip through JSON so the raw stats show as a mapping.
			raw, err := json.Marshal(run)
			if err != nil {
				return err
			}
			var view map[string]any
			if err := json.Unmarshal(raw, &view); err != nil {
				return err
			}
			data, err := yaml.Marshal(view)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func runRows(r *domain.Run) string {
	if len(r.Stats) == 0 {
		return "-"
	}
	var stats domain.RunStats
	if err := json.Unmarshal(r.Stats, &stats); err != nil {
		return "?"
	}
	return fmt.Sprint(stats.TotalRows)
}
