package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/logging"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the local terminal.

Controls (default bindings, see 'mines config'):
  Arrows/hjkl  - Move cursor
  Space/Enter  - Reveal cell
  F            - Toggle flag
  Left click   - Reveal clicked cell
  Right click  - Toggle flag on clicked cell
  R            - New game
  Q/Ctrl+C     - Quit

Log output goes to the file named by log.file in the config
(default ~/.mines/mines.log).

Examples:
  mines play
  mines play --seed 42
  mines play --config ./my-mines.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closer, err := logging.NewFile(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := gameFactory(cfg)()
	runErr := tui.Run(game, runtimeConfig(cfg, width, height), tui.NewKeyMap(cfg.Keys), logger)
	if runErr != nil {
		logger.Error("game aborted", "error", runErr)
	}

	// Close the log before potential exit
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
