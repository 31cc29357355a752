package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultConfig returns the default dodge configuration.
func DefaultConfig() DodgeConfig {
	return DodgeConfig{
		Playfield: PlayfieldConfig{
			Width:  640,
			Height: 360,
		},
		Timing: TimingConfig{
			FPS:      60,
			MaxDelta: 250 * time.Millisecond,
		},
		Player: PlayerConfig{
			Size:  32,
			Speed: 280,
		},
		Obstacles: ObstacleConfig{
			MinSize:       16,
			MaxSize:       50,
			MinSpeed:      90,
			MaxSpeed:      180,
			RemovalMargin: 60,
		},
		Spawn: SpawnConfig{
			Interval: 700 * time.Millisecond,
			Policy:   SpawnCarry,
		},
		Menu: MenuConfig{
			ButtonWidth:  220,
			ButtonHeight: 60,
			OffsetY:      40,
		},
		Input: InputConfig{
			InitialHold: 500 * time.Millisecond,
			RepeatHold:  120 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
