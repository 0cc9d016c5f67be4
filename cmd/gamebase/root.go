package main

import (
	"fmt"
	"os"

	"github.com/ianw11/gamebase/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gamebase",
	Short: "gamebase plays turn-based games on a round/turn rules engine",
	Long: `gamebase runs games on a generic engine of rounds and turns.
The bundled game is Nim: take stones from a pile, the last stone wins.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Game config file (YAML or JSON)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		if cfg.Seed, err = cmd.Flags().GetUint64("seed"); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("debug") {
		if cfg.Debug, err = cmd.Flags().GetBool("debug"); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
