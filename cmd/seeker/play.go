package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/platform/tui"
	"github.com/vovakirdan/seeker-ball/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the menu and play",
	Long: `Start Seeker Ball in the main menu.

Controls:
  Left/A/H     - Steer left
  Right/D/L    - Steer right
  Space/S      - Stop
  Mouse        - Hold left or right of centre to steer
  R/Enter      - Restart (after game over)
  M/Esc        - Back to menu (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options (bar speed gained per second survived):
  easy   - 1 unit/s per second
  normal - 2 units/s per second
  hard   - 4 units/s per second
  fixed  - Bars never speed up

A preset applies to this run of the program only; the slope chosen in
Settings is what gets saved.

Examples:
  seeker play
  seeker play --difficulty hard
  seeker play --profile alice
  seeker play --config ./my-seeker.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slope, err := slopeOverride()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()

	// Open progress storage
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:   store,
		Profile: flagProfile,
		Slope:   slope,
		Logger:  logger,
	})

	// Close store before reporting
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// profileOrDefault returns --profile, falling back to the default profile.
func profileOrDefault() string {
	if flagProfile == "" {
		return storage.DefaultProfile
	}
	return flagProfile
}

// terminalSize returns the size of stdout, or the default runtime size when
// stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	d := core.DefaultConfig()
	return d.ScreenW, d.ScreenH
}
