package main

import (
	"github.com/ianw11/gamebase/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the turn history of a bot game",
	Long: `Plays a game with every seat taken by a bot and outputs a Mermaid
diagram (graph TD) of its turn history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		_, err = cli.Play(cmd.Context(), cli.PlayOptions{
			Config: cfg,
			Quiet:  true,
			Graph:  true,
			Out:    cmd.OutOrStdout(),
			Err:    cmd.ErrOrStderr(),
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
