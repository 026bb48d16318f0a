package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newRowsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rows <dataset>",
		Short: "Fetch one dataset and print its rows as JSON",
		Long: `Fetches a single dataset exactly the way a binder would and prints the
decoded rows. Logical names (metrics, country, ...) are remapped through the
"datasets" config section.`,
		Example: `  fundview --demo rows metrics
  fundview --workbook export.xlsx rows contributors`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset := args[0]
			if name, ok := a.cfg.Datasets[dataset]; ok && name != "" {
				dataset = name
			}

			rows, err := a.newSource().Rows(cmd.Context(), dataset)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", dataset, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}
}
