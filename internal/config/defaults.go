package config

import (
	_ "embed"
)

//go:embed defaults/runlane.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with defaults/runlane.yaml; used as the last-resort
// fallback if the embedded YAML ever fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:       0.045,
			JumpImpulse:   -0.85,
			JumpBoost:     0.08,
			Accel:         0.06,
			MaxSpeed:      0.9,
			Friction:      0.86,
			SnapEpsilon:   0.02,
			MinRightSpeed: 0.12,
		},
		Player: RunnerPlayer{
			StartX: 8,
			Width:  3,
			Height: 3,
		},
		World: RunnerWorld{
			GroundOffset: 3,
			EdgeMargin:   1,
			Scroll:       1.0,
			CullMargin:   4,
			Mobility:     0.05,
		},
		Score: RunnerScore{
			RatePerSecond: 10,
			PickupBonus:   25,
		},
		Shield: RunnerShield{
			BaseCharges: 1,
			InvulnMs:    1500,
		},
		Upgrades: RunnerUpgrades{
			BaseCost:  3,
			Increment: 2,
			MaxLevel:  9,
		},
	}
}
