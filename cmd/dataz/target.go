package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/infra/repos/targets"
	"github.com/mmrzaf/dataz/internal/registry"
	"github.com/mmrzaf/dataz/internal/validation"
)

func targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage targets",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			list, err := targets.NewFileRepository(cfg.TargetsDir).List()
			if err != nil {
				return err
			}
			list = targets.RedactTargets(list)

			if format == "json" {
				return printJSON(list)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tLOCATION")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Kind, truncate(targetLocation(t), 50))
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id|path>",
		Short: "Show target details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := loadTarget(args[0])
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(targets.RedactTarget(target))
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := loadTarget(args[0])
			if err != nil {
				return err
			}

			validator := validation.NewValidator(registry.DefaultRegistry())
			if err := validator.ValidateTarget(target); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Target '%s' is valid\n", target.Name)
			return nil
		},
	}

	var checkFormatFlag string

	checkCmd := &cobra.Command{
		Use:   "check <id|path>",
		Short: "Connect to a target and report its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(checkFormatFlag); err != nil {
				return err
			}
			target, err := loadTarget(args[0])
			if err != nil {
				return err
			}

			check, err := newService(nil).CheckTarget(target)
			if checkFormatFlag == "json" {
				if perr := printJSON(check); perr != nil {
					return perr
				}
				return err
			}
			if err != nil {
				fmt.Printf("Target '%s' is unreachable: %v\n", target.Name, err)
				return err
			}
			fmt.Printf("Target '%s' (%s) is reachable in %dms", target.Name, check.Kind, check.LatencyMS)
			if check.ServerVer != "" {
				fmt.Printf(", server %s", check.ServerVer)
			}
			fmt.Println()
			return nil
		},
	}
	checkCmd.Flags().StringVar(&checkFormatFlag, "format", "table", "Output format (table|json)")

	cmd.AddCommand(listCmd, showCmd, validateCmd, checkCmd)
	return cmd
}

func targetLocation(t *domain.TargetConfig) string {
	if domain.IsFileKind(t.Kind) {
		return t.Path
	}
	if t.Schema != "" {
		return t.DSN + " (schema " + t.Schema + ")"
	}
	return t.DSN
}
