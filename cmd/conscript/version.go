package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conscript-cli/conscript"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of conscript",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("conscript version %s\n", conscript.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
