package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhromenko/tui-invasion/internal/config"
	"github.com/okhromenko/tui-invasion/internal/core"
	"github.com/okhromenko/tui-invasion/internal/game"
	"github.com/okhromenko/tui-invasion/internal/platform/tui"
	"github.com/okhromenko/tui-invasion/internal/registry"
	"github.com/okhromenko/tui-invasion/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  Space      - Fire
  Enter      - Start (or click the Play button)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, slower fleet
  normal - Defaults
  hard   - Fewer lives, faster fleet
  fixed  - No speed-up between levels

Examples:
  invasion play
  invasion play --difficulty easy
  invasion play --config ./my-invasion.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetScoresPath(scoresFilePath())
	if flagDifficulty != "" {
		game.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	}

	g, err := registry.Create("invasion")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
