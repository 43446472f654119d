// seeker is Seeker Ball, a falling-obstacle dodging game for the terminal.
//
// Usage:
//
//	seeker                   - Open the main menu and play
//	seeker play              - Same as above
//	seeker serve             - Start SSH server for remote play
//	seeker scores            - Show the best runs
//	seeker profile           - Show XP, skins and run statistics
//	seeker catalog           - List the ball skins for sale
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.seeker/seeker.db)
//	--profile <name>       - Progress profile (default: local)
//	--config <path>        - Custom tuning YAML
//	--difficulty <preset>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>    - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seeker-ball/internal/config"
	"github.com/vovakirdan/seeker-ball/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagProfile    string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seeker",
	Short: "Seeker Ball - dodge the falling bars in your terminal",
	Long: `Seeker Ball is a terminal arcade game. Steer the ball left and right to
dodge falling bars, collect the glowing bonus bars, and spend the XP you earn
on new ball skins.

Available commands:
  play     - Open the menu and play (default)
  serve    - Start SSH server for remote play
  scores   - View the best runs
  profile  - Show or reset a progress profile
  catalog  - List ball skins

Examples:
  seeker
  seeker play --difficulty hard
  seeker serve --ssh :2222
  seeker scores --tui
  seeker profile --profile alice`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.seeker/seeker.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadConfig loads the tuning YAML named by --config, or the default search path.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// slopeOverride resolves --difficulty. A nil result keeps the persisted slope.
func slopeOverride() (*float64, error) {
	if flagDifficulty == "" {
		return nil, nil
	}
	slope, ok := config.SlopeForPreset(config.DifficultyPreset(flagDifficulty))
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return &slope, nil
}

// newLogger builds the CLI logger. The game owns the terminal while it runs,
// so interactive play logs to ~/.seeker/seeker.log instead of stderr.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	cleanup := func() {}
	if toFile {
		if f, ferr := openLogFile(); ferr != nil {
			w = io.Discard
		} else {
			w = f
			cleanup = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "seeker",
		Level:           level,
	})
	return logger, cleanup, nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".seeker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "seeker.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openStore opens the database named by --db.
func openStore() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}
