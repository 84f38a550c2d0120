package cmd

import (
	"github.com/hosthans/ids-wasteseparation/internal/store"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wastesep",
	Short: "Interactive waste separation trainer",
	Long:  "Wastesep — terminal trainer that teaches German household waste separation with adaptive difficulty and AI explanations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WASTESEP_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON item catalog (defaults to the built-in one)")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WASTESEP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalog loads the catalog from --catalog, falling back to the
// built-in item set.
func resolveCatalog(cmd *cobra.Command) (waste.Catalog, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return waste.Load(p)
	}
	return waste.Default(), nil
}
