// Package config provides YAML-based tuning configuration loading for the
// runner with embedded defaults.
package config

// RunnerConfig contains all tuning parameters for the runner simulation.
type RunnerConfig struct {
	Physics  RunnerPhysics  `yaml:"physics"`
	Player   RunnerPlayer   `yaml:"player"`
	World    RunnerWorld    `yaml:"world"`
	Score    RunnerScore    `yaml:"score"`
	Shield   RunnerShield   `yaml:"shield"`
	Upgrades RunnerUpgrades `yaml:"upgrades"`
}

// RunnerPhysics defines the player motion parameters.
// Speeds and accelerations are in cells per reference (60 Hz) tick.
type RunnerPhysics struct {
	Gravity       float64 `yaml:"gravity"`         // Added to vertical velocity every tick
	JumpImpulse   float64 `yaml:"jump_impulse"`    // Upward velocity on jump (negative = up)
	JumpBoost     float64 `yaml:"jump_boost"`      // Extra impulse per jump upgrade level
	Accel         float64 `yaml:"accel"`           // Horizontal acceleration while held
	MaxSpeed      float64 `yaml:"max_speed"`       // Horizontal speed cap
	Friction      float64 `yaml:"friction"`        // Velocity decay factor with no input
	SnapEpsilon   float64 `yaml:"snap_epsilon"`    // Below this speed, velocity snaps to zero
	MinRightSpeed float64 `yaml:"min_right_speed"` // Floor applied while moving right
}

// RunnerPlayer defines the player avatar geometry.
type RunnerPlayer struct {
	StartX float64 `yaml:"start_x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerWorld defines playfield geometry and scroll behavior.
type RunnerWorld struct {
	GroundOffset int     `yaml:"ground_offset"` // Rows between screen bottom and ground line
	EdgeMargin   float64 `yaml:"edge_margin"`   // Horizontal clamp margin on both sides
	Scroll       float64 `yaml:"scroll"`        // World scroll constant applied to entity speed
	CullMargin   float64 `yaml:"cull_margin"`   // How far past the left edge entities survive
	Mobility     float64 `yaml:"mobility"`      // Entity speed added per mobility upgrade level
}

// RunnerScore defines score accrual parameters.
type RunnerScore struct {
	RatePerSecond float64 `yaml:"rate_per_second"` // Base accrual while running, scaled by tier
	PickupBonus   float64 `yaml:"pickup_bonus"`    // Fixed bonus per collected pickup
}

// RunnerShield defines shield and invulnerability parameters.
type RunnerShield struct {
	BaseCharges int `yaml:"base_charges"` // Charges at shield level zero
	InvulnMs    int `yaml:"invuln_ms"`    // Invulnerability window after a shielded hit
}

// RunnerUpgrades defines upgrade purchase pricing.
type RunnerUpgrades struct {
	BaseCost  int `yaml:"base_cost"`  // Cost of the first level of any category
	Increment int `yaml:"increment"`  // Added to cost per existing level
	MaxLevel  int `yaml:"max_level"`  // Purchases beyond this level are rejected
}
