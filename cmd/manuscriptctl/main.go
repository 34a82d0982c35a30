package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "manuscriptctl",
		Short: "Run the manuscript analysis pipeline on local files",
	}

	root.AddCommand(analyzeCmd())
	root.AddCommand(convertCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
