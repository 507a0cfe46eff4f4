package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/hashing"
	"github.com/mmrzaf/dataz/internal/infra/repos/scenarios"
	"github.com/mmrzaf/dataz/internal/registry"
	"github.com/mmrzaf/dataz/internal/validation"
)

func scenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage scenarios",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			list, err := scenarios.NewFileRepository(cfg.ScenariosDir).List()
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(list)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tVERSION\tSET\tPARAMS")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Version, s.Set, scenarioParams(s))
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id|path>",
		Short: "Show scenario details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(scenario)
			if err != nil {
				return err
			}
			fmt.Print(string(data))

			hash, err := hashing.HashScenario(scenario)
			if err != nil {
				return err
			}
			fmt.Printf("# hash: %s\n", hash)
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			validator := validation.NewValidator(registry.DefaultRegistry())
			if err := validator.ValidateScenario(scenario); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Scenario '%s' is valid\n", scenario.Name)
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd)
	return cmd
}

func scenarioParams(s *domain.Scenario) string {
	switch {
	case s.Kvtd != nil:
		return fmt.Sprintf("rows=%d val_bytes=%d batch=%d", s.Kvtd.NumRows, s.Kvtd.ValBytes, s.Kvtd.MaxRowsPerBatch)
	case s.Tpcc != nil:
		if s.Tpcc.Now != "" {
			return fmt.Sprintf("warehouses=%d now=%s", s.Tpcc.Warehouses, s.Tpcc.Now)
		}
		return fmt.Sprintf("warehouses=%d", s.Tpcc.Warehouses)
	default:
		return ""
	}
}
