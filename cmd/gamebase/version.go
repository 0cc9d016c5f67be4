package main

import (
	"fmt"
	"strings"

	"github.com/ianw11/gamebase"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gamebase",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gamebase version %s\n", strings.TrimSpace(gamebase.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
