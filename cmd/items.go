package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the catalog items (optionally filtered by difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetInt("difficulty")

		catalog, err := resolveCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		fmt.Printf("%-28s  %-10s  %s\n", "Name", "Stufe", "Tonnen")
		fmt.Println(strings.Repeat("─", 72))

		count := 0
		for _, item := range catalog {
			if difficulty != 0 && item.Difficulty != difficulty {
				continue
			}
			binLabels := make([]string, 0, len(item.Types))
			for _, t := range item.Types {
				binLabels = append(binLabels, t.BinLabel())
			}
			fmt.Printf("%-28s  %-10d  %s\n", item.Name, item.Difficulty, strings.Join(binLabels, ", "))
			count++
		}

		fmt.Printf("\n%d items\n", count)
		return nil
	},
}

func init() {
	itemsCmd.Flags().Int("difficulty", 0, "Filter by difficulty (1, 2 or 3)")
}
