package main

import (
	"os"

	"github.com/dverbin/phrasal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
