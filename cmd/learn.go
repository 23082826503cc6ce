package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/dverbin/phrasal/internal/app"
	"github.com/dverbin/phrasal/internal/screens/player"
	"github.com/dverbin/phrasal/internal/store"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn <lesson-id>",
	Short: "Play a lesson as a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		l, err := st.LessonRepo().Get(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no lesson with ID %q", args[0])
			}
			return fmt.Errorf("load lesson: %w", err)
		}
		if len(l.Activities) == 0 {
			return fmt.Errorf("lesson %q has no activities yet", l.Title)
		}

		return app.RunScreen(player.New(l))
	},
}
