package runner

import "github.com/avoronkov/runlane/internal/config"

// UpgradeKind identifies an upgrade category.
type UpgradeKind int

const (
	UpgradeMobility UpgradeKind = iota // Entities scroll faster, score ramps sooner
	UpgradeJump                        // Higher jump impulse
	UpgradeShield                      // Extra shield charge per run
)

// String returns a human-readable name for the category.
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeMobility:
		return "mobility"
	case UpgradeJump:
		return "jump"
	case UpgradeShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Upgrades holds the three independent upgrade levels. Levels persist
// across runs within a session and only ever increase.
type Upgrades struct {
	Mobility int
	Jump     int
	Shield   int
}

// Level returns the current level of a category.
func (u Upgrades) Level(k UpgradeKind) int {
	switch k {
	case UpgradeMobility:
		return u.Mobility
	case UpgradeJump:
		return u.Jump
	case UpgradeShield:
		return u.Shield
	default:
		return 0
	}
}

// Cost returns the price of the next level of a category: the base cost
// plus a fixed increment per existing level.
func (u Upgrades) Cost(k UpgradeKind, cfg config.RunnerUpgrades) int {
	return cfg.BaseCost + cfg.Increment*u.Level(k)
}

// bump increments a category's level.
func (u *Upgrades) bump(k UpgradeKind) {
	switch k {
	case UpgradeMobility:
		u.Mobility++
	case UpgradeJump:
		u.Jump++
	case UpgradeShield:
		u.Shield++
	}
}
