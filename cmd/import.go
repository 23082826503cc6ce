package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a lesson from a JSON document",
	Long:  "Validates the document against the lesson schema, checks format version compatibility and saves the lesson. An existing lesson with the same ID is overwritten.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		l, err := lesson.Import(data)
		if err != nil {
			return fmt.Errorf("import lesson: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.LessonRepo().Upsert(context.Background(), l); err != nil {
			return fmt.Errorf("save lesson: %w", err)
		}

		fmt.Printf("Imported %q (%d activities) as %s.\n", l.Title, len(l.Activities), l.ID)
		return nil
	},
}
