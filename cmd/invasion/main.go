// invasion is a terminal rendition of the sideways alien invasion game:
// pilot a ship on the left edge, fire right at a scrolling fleet.
//
// Usage:
//
//	invasion play            - Play the game
//	invasion scores          - Show the session history
//	invasion serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Session database path (default: ~/.invasion/scores.db)
//	--scores-file <path> - High score JSON path (default: ~/.invasion/hi_score.json)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/okhromenko/tui-invasion/internal/game"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - a sideways shooter in your terminal",
	Long: `Alien Invasion is a terminal shooter. Your ship holds the left edge
of the screen while a fleet of aliens scrolls down the right half,
dropping closer on every edge contact. Clear the fleet to advance a
level; each level is faster than the last.

Available commands:
  play     - Play the game
  scores   - View the session history
  serve    - Start SSH server for remote play

Examples:
  invasion play
  invasion play --difficulty hard
  invasion scores
  invasion serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invasion/scores.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "", "Path to high score JSON (default: ~/.invasion/hi_score.json)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// scoresFilePath resolves the high score file location.
func scoresFilePath() string {
	if flagScoresFile != "" {
		return flagScoresFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hi_score.json"
	}
	return filepath.Join(home, ".invasion", "hi_score.json")
}
