package dodge

import (
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// quietConfig returns the default config with spawning pushed far out, so
// tests control exactly which obstacles exist.
func quietConfig() config.DodgeConfig {
	cfg := config.DefaultConfig()
	cfg.Spawn.Interval = time.Hour
	return cfg
}

// frame is a shorthand for building input frames.
func frame(mutate func(f *core.InputFrame)) core.InputFrame {
	var f core.InputFrame
	if mutate != nil {
		mutate(&f)
	}
	return f
}

var (
	noInput  = core.InputFrame{}
	confirm  = frame(func(f *core.InputFrame) { f.Confirm = true })
	restart  = frame(func(f *core.InputFrame) { f.Restart = true })
	frame16  = 16 * time.Millisecond
	oneFrame = time.Second / 60
)

// playing returns a game that has just left the menu.
func playing(cfg config.DodgeConfig, seed int64) *Game {
	g := New(cfg, seed)
	g.Step(confirm, 0)
	return g
}
