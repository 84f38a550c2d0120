package cmd

import (
	"fmt"
	"os"

	"github.com/hosthans/ids-wasteseparation/internal/app"
	"github.com/hosthans/ids-wasteseparation/internal/feedback"
	"github.com/hosthans/ids-wasteseparation/internal/llm"
	"github.com/hosthans/ids-wasteseparation/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	catalog, err := resolveCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Catalog:   catalog,
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Text generation provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Explanations for wrong answers will be unavailable.")
	}
	opts.Composer = feedback.NewComposer(provider, feedback.DefaultConfig())

	return app.Run(opts)
}
