package cmd

import (
	"fmt"

	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("phrasal", version)
		fmt.Println("lesson document format", lesson.FormatVersion)
	},
}
