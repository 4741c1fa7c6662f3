package runner

import (
	"math/rand"
	"time"

	"github.com/avoronkov/runlane/internal/config"
	"github.com/avoronkov/runlane/internal/core"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Event is a side effect emitted by one tick, consumed by the platform
// layer (audio cues, game-over handling).
type Event int

const (
	EventPickup Event = iota
	EventShieldHit
	EventGameOver
)

// StepResult is returned by Advance after each simulation tick.
type StepResult struct {
	Status   Status
	Score    int // Floored display score
	Currency int
	Events   []Event
}

// Player is the avatar for a single run.
type Player struct {
	X, Y   float64 // Top-left corner in playfield cells
	W, H   float64
	VX, VY float64 // Velocity in cells per reference tick

	OnGround    bool
	Shields     int
	InvulnUntil time.Duration // Invulnerability expiry on the run clock
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// refFrame is the reference tick duration motion is normalized against.
const refFrame = time.Second / 60

// maxElapsed caps a single tick's delta so a suspended terminal cannot
// teleport the simulation on wake.
const maxElapsed = 250 * time.Millisecond

// Run is one play-through: the player, the live entity collection, spawn
// timers, score, currency and difficulty tier. A Run is created on start,
// replaced wholesale on restart, and frozen once its status is terminal.
// All time-dependent state lives on the run's own accumulated clock, so
// pausing freezes spawn debt and invulnerability windows alike.
type Run struct {
	cfg      config.RunnerConfig
	upgrades *Upgrades
	rng      *rand.Rand

	status Status

	width   float64
	groundY float64

	player   Player
	entities []Entity

	lastSpawn [kindCount]time.Duration
	clock     time.Duration
	frame     int

	score    float64
	currency int
	tier     Tier

	input core.Input
}

// newRun allocates a fresh run in the running state.
func newRun(cfg config.RunnerConfig, up *Upgrades, rt core.RuntimeConfig, seed int64) *Run {
	groundY := float64(rt.ScreenH - cfg.World.GroundOffset)
	r := &Run{
		cfg:      cfg,
		upgrades: up,
		rng:      rand.New(rand.NewSource(seed)),
		status:   StatusRunning,
		width:    float64(rt.ScreenW),
		groundY:  groundY,
		entities: make([]Entity, 0, 16),
		tier:     TierForScore(0),
	}
	r.player = Player{
		X:        cfg.Player.StartX,
		Y:        groundY - cfg.Player.Height,
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		OnGround: true,
		Shields:  cfg.Shield.BaseCharges + up.Shield,
	}
	return r
}

// SetInput records the input surface for the next tick. Jump is
// edge-triggered: once set it stays pending until the integrator consumes
// it.
func (r *Run) SetInput(in core.Input) {
	r.input.Left = in.Left
	r.input.Right = in.Right
	if in.Jump {
		r.input.Jump = true
	}
}

// Advance runs one simulation tick: integrate player physics, spawn due
// entities, scroll and bob the live ones, resolve collisions, then accrue
// time-based score. Elapsed is real time since the previous tick; motion
// is normalized against the 60 Hz reference frame. A run that is not
// running is frozen and Advance is a no-op.
func (r *Run) Advance(elapsed time.Duration) StepResult {
	if r.status != StatusRunning {
		return r.result(nil)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxElapsed {
		elapsed = maxElapsed
	}

	dt := float64(elapsed) / float64(refFrame)
	r.clock += elapsed
	r.frame++
	r.tier = TierForScore(r.score)

	r.integratePlayer(dt)
	r.spawnEntities()
	r.advanceEntities(dt)
	events := r.resolveCollisions()

	// Continuous accrual stops the moment the run ends.
	if r.status == StatusRunning {
		r.score += elapsed.Seconds() * r.cfg.Score.RatePerSecond * r.tier.SpeedScale
	}

	return r.result(events)
}

func (r *Run) result(events []Event) StepResult {
	return StepResult{
		Status:   r.status,
		Score:    int(r.score),
		Currency: r.currency,
		Events:   events,
	}
}

// Status returns the run's lifecycle state.
func (r *Run) Status() Status {
	return r.status
}

// Score returns the floored display score.
func (r *Run) Score() int {
	return int(r.score)
}

// Currency returns the pickups earned and not yet spent this run.
func (r *Run) Currency() int {
	return r.currency
}

// Tier returns the current difficulty tier.
func (r *Run) Tier() Tier {
	return r.tier
}

// invulnerable reports whether the player is inside an invulnerability
// window at the current run clock.
func (r *Run) invulnerable() bool {
	return r.clock < r.player.InvulnUntil
}
