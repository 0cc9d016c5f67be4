package main

import (
	"fmt"
	"os"

	"github.com/ianw11/gamebase/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of Nim",
	Long: `Starts a game with the players from the config file. Human seats are
asked at the terminal; when stdin is not a terminal they are played by bots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("pile") {
			if cfg.Pile, err = cmd.Flags().GetInt("pile"); err != nil {
				return err
			}
		}
		showGraph, err := cmd.Flags().GetBool("graph")
		if err != nil {
			return err
		}
		showMetrics, err := cmd.Flags().GetBool("metrics")
		if err != nil {
			return err
		}
		plain, err := cmd.Flags().GetBool("plain")
		if err != nil {
			return err
		}

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		rich := !plain && term.IsTerminal(int(os.Stdout.Fd()))

		interrupt := cli.WatchInterrupts(cmd.Context())
		defer interrupt.Stop()

		_, err = cli.Play(interrupt.Context(), cli.PlayOptions{
			Config:      cfg,
			Interactive: interactive,
			Rich:        rich,
			Graph:       showGraph,
			Metrics:     showMetrics,
			In:          interrupt.Reader(os.Stdin),
			Out:         cmd.OutOrStdout(),
			Err:         cmd.ErrOrStderr(),
		})
		if sig := interrupt.Signal(); sig != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "game interrupted by %s\n", sig)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Int("pile", 0, "Stones in the pile (overrides the config)")
	playCmd.Flags().Bool("graph", false, "Print the turn history as a Mermaid graph after the game")
	playCmd.Flags().Bool("metrics", false, "Print the game metrics after the game")
	playCmd.Flags().Bool("plain", false, "Do not render the summary as rich text")

	// 'play' is the default command.
	rootCmd.RunE = playCmd.RunE
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}
