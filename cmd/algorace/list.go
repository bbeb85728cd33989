package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/catalog"
	"github.com/katalvlaran/algotrace/cmd/algorace/ui"
)

func listCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			algs := catalog.List()
			if category != "" {
				algs = catalog.ByCategory(catalog.Category(category))
				if len(algs) == 0 {
					return fmt.Errorf("unknown category %q (want sorting, searching or graph)", category)
				}
			}

			rows := make([][]string, 0, len(algs))
			for _, a := range algs {
				rows = append(rows, []string{a.Key, a.Name, string(a.Category), a.TimeComplexity, strconv.Itoa(a.SpeedFactor)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Table([]string{"Key", "Name", "Category", "Complexity", "Speed"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list one category: sorting, searching or graph")
	return cmd
}
