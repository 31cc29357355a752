package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Timing.FPS > 0, "fps must be positive, got %d", c.Timing.FPS)
	check(c.Timing.MaxDelta >= 0, "max_delta must not be negative, got %v", c.Timing.MaxDelta)
	check(c.Player.Size > 0, "player size must be positive, got %v", c.Player.Size)
	check(c.Player.Size <= c.Playfield.Width && c.Player.Size <= c.Playfield.Height,
		"player size %v does not fit the playfield", c.Player.Size)
	check(c.Player.Speed >= 0, "player speed must not be negative, got %v", c.Player.Speed)
	check(c.Obstacles.MinSize > 0 && c.Obstacles.MinSize <= c.Obstacles.MaxSize,
		"obstacle size range [%d,%d] is invalid", c.Obstacles.MinSize, c.Obstacles.MaxSize)
	check(c.Obstacles.MinSpeed > 0 && c.Obstacles.MinSpeed <= c.Obstacles.MaxSpeed,
		"obstacle speed range [%d,%d] is invalid", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	check(c.Obstacles.RemovalMargin >= 0, "removal_margin must not be negative, got %v", c.Obstacles.RemovalMargin)
	check(c.Spawn.Interval >= 0, "spawn interval must not be negative, got %v", c.Spawn.Interval)
	check(c.Spawn.Policy == SpawnCarry || c.Spawn.Policy == SpawnReset,
		"unknown spawn policy %q (want %q or %q)", c.Spawn.Policy, SpawnCarry, SpawnReset)
	check(c.Input.InitialHold >= 0 && c.Input.RepeatHold >= 0, "hold durations must not be negative")

	return errors.Join(errs...)
}
