package main

import (
	"os"

	"github.com/arthur-debert/docrender/cmd/docrender"
	"github.com/arthur-debert/docrender/pkg/ui"
)

func main() {
	rootCmd := docrender.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
