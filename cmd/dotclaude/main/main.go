package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotclaude/cmd/dotclaude"
)

func main() {
	rootCmd := dotclaude.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
