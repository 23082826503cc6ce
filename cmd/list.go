package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lessons, err := st.LessonRepo().LoadAll(context.Background())
		if err != nil {
			return fmt.Errorf("load lessons: %w", err)
		}

		if len(lessons) == 0 {
			fmt.Println("No lessons saved yet. Run phrasal author to create one.")
			return nil
		}

		fmt.Printf("%-36s  %-28s  %-12s  %10s  %-16s\n",
			"ID", "Title", "Level", "Activities", "Updated")
		fmt.Println(strings.Repeat("─", 110))

		for _, l := range lessons {
			title := l.Title
			if title == "" {
				title = "(untitled)"
			}
			if len(title) > 28 {
				title = title[:25] + "..."
			}
			fmt.Printf("%-36s  %-28s  %-12s  %10d  %-16s\n",
				l.ID, title, l.Level, len(l.Activities),
				l.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}
