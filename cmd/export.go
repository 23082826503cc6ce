package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <lesson-id>",
	Short: "Export a lesson as a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

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

		data, err := lesson.Export(l)
		if err != nil {
			return fmt.Errorf("export lesson: %w", err)
		}

		if out == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Exported %q to %s.\n", l.Title, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
