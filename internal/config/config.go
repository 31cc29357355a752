// Package config provides file-based game configuration loading for dodge.
// Files may be YAML or TOML; environment variables override file values.
package config

import "time"

// DodgeConfig contains all tuning for a dodge session.
// It is built once at startup and treated as immutable afterwards.
type DodgeConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Timing    TimingConfig    `yaml:"timing" toml:"timing"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles" toml:"obstacles"`
	Spawn     SpawnConfig     `yaml:"spawn" toml:"spawn"`
	Menu      MenuConfig      `yaml:"menu" toml:"menu"`
	Input     InputConfig     `yaml:"input" toml:"input"`
}

// PlayfieldConfig defines the world dimensions in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width" toml:"width" env:"DODGE_WIDTH"`
	Height float64 `yaml:"height" toml:"height" env:"DODGE_HEIGHT"`
}

// TimingConfig defines the frame cadence.
type TimingConfig struct {
	FPS      int           `yaml:"fps" toml:"fps" env:"DODGE_FPS"`
	MaxDelta time.Duration `yaml:"max_delta" toml:"max_delta" env:"DODGE_MAX_DELTA"` // Cap on a single frame's delta
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size  float64 `yaml:"size" toml:"size" env:"DODGE_PLAYER_SIZE"`
	Speed float64 `yaml:"speed" toml:"speed" env:"DODGE_PLAYER_SPEED"` // Units per second
}

// ObstacleConfig defines the random ranges for spawned obstacles.
type ObstacleConfig struct {
	MinSize       int     `yaml:"min_size" toml:"min_size" env:"DODGE_OBSTACLE_MIN_SIZE"`
	MaxSize       int     `yaml:"max_size" toml:"max_size" env:"DODGE_OBSTACLE_MAX_SIZE"`
	MinSpeed      int     `yaml:"min_speed" toml:"min_speed" env:"DODGE_OBSTACLE_MIN_SPEED"`
	MaxSpeed      int     `yaml:"max_speed" toml:"max_speed" env:"DODGE_OBSTACLE_MAX_SPEED"`
	RemovalMargin float64 `yaml:"removal_margin" toml:"removal_margin" env:"DODGE_REMOVAL_MARGIN"`
}

// SpawnPolicy decides what happens to the spawn timer when a frame overshoots
// the interval.
type SpawnPolicy string

const (
	// SpawnCarry subtracts the interval and keeps the remainder, so long
	// frames never lose spawns.
	SpawnCarry SpawnPolicy = "carry"
	// SpawnReset zeroes the timer after a spawn; overshoot is dropped.
	SpawnReset SpawnPolicy = "reset"
)

// SpawnConfig defines the spawn timer.
type SpawnConfig struct {
	Interval time.Duration `yaml:"interval" toml:"interval" env:"DODGE_SPAWN_INTERVAL"`
	Policy   SpawnPolicy   `yaml:"policy" toml:"policy" env:"DODGE_SPAWN_POLICY"`
}

// MenuConfig defines the start button geometry.
type MenuConfig struct {
	ButtonWidth  float64 `yaml:"button_width" toml:"button_width"`
	ButtonHeight float64 `yaml:"button_height" toml:"button_height"`
	OffsetY      float64 `yaml:"offset_y" toml:"offset_y"` // Button center below the playfield center
}

// InputConfig defines how key presses are turned into held keys.
type InputConfig struct {
	// Terminals do not report key releases, so a key counts as held for a
	// while after each press. The first press has to bridge the keyboard's
	// auto-repeat delay; repeats only have to bridge the repeat rate.
	InitialHold time.Duration `yaml:"initial_hold" toml:"initial_hold" env:"DODGE_INITIAL_HOLD"`
	RepeatHold  time.Duration `yaml:"repeat_hold" toml:"repeat_hold" env:"DODGE_REPEAT_HOLD"`
}
