package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/dverbin/phrasal/internal/app"
	"github.com/dverbin/phrasal/internal/screens/author"
	"github.com/dverbin/phrasal/internal/store"
	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author [lesson-id]",
	Short: "Open the lesson builder",
	Long:  "Opens the authoring flow. With no argument it starts a new lesson; with a lesson ID it opens that lesson for editing.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		opts := buildOptions(cmd, st)

		if len(args) == 0 {
			return app.RunScreen(author.New(opts.Lessons, opts.Suggest, opts.Audio, author.StartNew))
		}

		l, err := opts.Lessons.Get(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no lesson with ID %q", args[0])
			}
			return fmt.Errorf("load lesson: %w", err)
		}
		return app.RunScreen(author.NewForLesson(opts.Lessons, opts.Suggest, opts.Audio, l))
	},
}
