// mines is a terminal mine-clearing puzzle on a 9x9 board with 10 mines.
//
// Usage:
//
//	mines play               - Play in the local terminal
//	mines serve              - Start SSH server for remote play
//	mines layout             - Print the mine layout for --seed
//	mines config             - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible layout
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Mines - clear a minefield in your terminal",
	Long: `Mines is a terminal mine-clearing puzzle. Flag all ten mines to win;
reveal a mine and the game is lost.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  layout   - Print the hidden layout for a seed
  config   - Print the default configuration

Examples:
  mines play
  mines play --seed 42
  mines serve --ssh :2222
  mines layout --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
// Errors are fatal.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// gameFactory returns a constructor for games using the configured theme.
func gameFactory(cfg config.Config) func() *minesweeper.Game {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return func() *minesweeper.Game {
		return minesweeper.New(palette)
	}
}

// runtimeConfig builds the runtime config for a screen of the given size.
func runtimeConfig(cfg config.Config, w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}
}
