package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dverbin/phrasal/internal/store"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <lesson-id>",
	Short: "Delete a saved lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.LessonRepo()

		l, err := repo.Get(ctx, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no lesson with ID %q", args[0])
			}
			return fmt.Errorf("load lesson: %w", err)
		}

		if !yes {
			fmt.Printf("Delete lesson %q (%d activities)? [y/N] ", l.Title, len(l.Activities))
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := repo.Delete(ctx, l.ID); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}
		fmt.Printf("Deleted %q.\n", l.Title)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
