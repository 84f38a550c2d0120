package cmd

import (
	"fmt"
	"strings"

	"github.com/hosthans/ids-wasteseparation/internal/waste"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print every bin with the items that belong in it",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := resolveCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		byBin := waste.Categorize(catalog)
		for _, bin := range waste.BinLabels(byBin) {
			fmt.Printf("%s (%d)\n", bin, len(byBin[bin]))
			fmt.Println(strings.Repeat("─", 40))
			for _, name := range byBin[bin] {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println()
		}
		return nil
	},
}
