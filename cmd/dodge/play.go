package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a session at the menu.

Controls:
  Arrows/WASD  - Move
  Enter/Click  - Start
  R            - Retry (after a crash)
  Esc          - Quit (menu and while playing)
  Q/Ctrl+C     - Quit

Examples:
  dodge play
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml
  dodge play --spawn-policy reset --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Get terminal size until the first WindowSizeMsg arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Bubble Tea owns the terminal while running; stderr output would tear
	// the display.
	playLogger := logger
	if flagLogFile == "" {
		playLogger = log.New(io.Discard)
	}

	logger.Debug("starting session", "fps", cfg.Timing.FPS, "spawn_policy", cfg.Spawn.Policy, "seed", rt.Seed)
	if err := tui.Run(cfg, rt, playLogger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// loadConfig loads the config file and applies flags that were set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command) (config.DodgeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DodgeConfig{}, err
	}

	if err := applyFlags(cmd, &cfg); err != nil {
		return config.DodgeConfig{}, err
	}
	return cfg, nil
}

// applyFlags overrides config values with changed flags and revalidates.
func applyFlags(cmd *cobra.Command, cfg *config.DodgeConfig) error {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}
	if flags.Changed("spawn-policy") {
		cfg.Spawn.Policy = config.SpawnPolicy(flagSpawnPolicy)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
