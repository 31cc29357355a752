// dodge is a terminal game: steer a square around a field and dodge the
// blocks that fly in from every side for as long as you can.
//
// Usage:
//
//	dodge                 - Play (same as dodge play)
//	dodge play            - Play
//	dodge config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>       - Config file (.yaml/.yml or .toml)
//	--fps <rate>          - Override the frame rate
//	--seed <value>        - RNG seed for reproducible gameplay (0 = time based)
//	--spawn-policy <p>    - carry or reset
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file (needed to see logs while playing)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig      string
	flagFPS         int
	flagSeed        int64
	flagSpawnPolicy string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the Blocks - a terminal survival game",
	Long: `Dodge the Blocks puts a square in the middle of the field and sends
blocks at it from all four sides. Survive as long as you can.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  dodge
  dodge --seed 42
  dodge play --config ./my-dodge.toml --spawn-policy reset
  dodge config > ~/.dodge/config.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSpawnPolicy, "spawn-policy", "", "Spawn timer policy: carry or reset (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. It writes to the log file when one
// is given and to stderr otherwise. The returned closer must be called on
// exit.
func newLogger(level, file string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if file != "" {
		f, openErr := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           lvl,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
