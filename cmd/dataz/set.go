package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/registry"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Inspect dataset sets",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.DefaultRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	var (
		format string
		head   int
	)

	showCmd := &cobra.Command{
		Use:   "show <scenario|path>",
		Short: "Show the relations a scenario generates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			scenario, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			set, err := registry.DefaultRegistry().Build(scenario)
			if err != nil {
				return err
			}
			rels := dataset.Relations(set)

			if format == "json" {
				type relationInfo struct {
					Name    string         `json:"name"`
					Batches int            `json:"batches"`
					Schema  dataset.Schema `json:"schema"`
				}
				out := make([]relationInfo, len(rels))
				for i, r := range rels {
					out[i] = relationInfo{Name: r.Name(), Batches: r.NumBatches(), Schema: r.Schema()}
				}
				return printJSON(out)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RELATION\tBATCHES\tFIELDS")
			for _, dt := range dataset.DynTables(set) {
				fmt.Fprintf(w, "%s\t%d\t", dt.Name(), dt.NumBatches())
				for _, r := range rels {
					if r.Name() == dt.Name() {
						fmt.Fprint(w, strings.Join(r.Schema().Names(), ","))
					}
				}
				fmt.Fprintln(w)
			}
			w.Flush()

			if head <= 0 {
				return nil
			}
			for _, r := range rels {
				fmt.Printf("\n%s\n", r.Name())
				hw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(hw, strings.ToUpper(strings.Join(r.Schema().Names(), "\t")))
				for _, row := range dataset.Head(r, head) {
					cells := make([]string, len(row))
					for i, v := range row {
						cells[i] = truncate(dataset.Text(v), 24)
					}
					fmt.Fprintln(hw, strings.Join(cells, "\t"))
				}
				hw.Flush()
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	showCmd.Flags().IntVar(&head, "head", 0, "Print the first N rows of every relation")

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
