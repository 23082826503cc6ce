package cmd

import (
	"fmt"
	"os"

	"github.com/dverbin/phrasal/internal/app"
	"github.com/dverbin/phrasal/internal/audio"
	"github.com/dverbin/phrasal/internal/llm"
	"github.com/dverbin/phrasal/internal/store"
	"github.com/dverbin/phrasal/internal/suggest"
	"github.com/spf13/cobra"
)

// openStore opens the lesson store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildOptions assembles the app dependencies. The suggestion provider
// and audio library are optional; their absence is reported but never
// fatal.
func buildOptions(cmd *cobra.Command, st *store.Store) app.Options {
	opts := app.Options{
		Lessons: st.LessonRepo(),
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Activity suggestion will be unavailable.")
	} else {
		opts.Suggest = suggest.NewService(provider, suggest.DefaultConfig())
	}

	if dir, err := store.DataDir(); err == nil {
		if svc, err := audio.NewLocalService(dir); err == nil {
			opts.Audio = svc
		} else {
			fmt.Fprintln(os.Stderr, "Audio library unavailable:", err)
		}
	}

	return opts
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(buildOptions(cmd, st))
}
