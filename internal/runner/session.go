package runner

import (
	"time"

	"github.com/avoronkov/runlane/internal/config"
	"github.com/avoronkov/runlane/internal/core"
)

// Session is the explicitly owned simulation context: it holds the active
// run (at most one), the upgrade levels that persist across runs, and the
// lifecycle state machine. The platform layer threads a *Session through
// every operation; there is no package-level simulation state.
type Session struct {
	cfg config.RunnerConfig
	rt  core.RuntimeConfig

	upgrades Upgrades
	run      *Run
}

// NewSession creates an idle session with no active run.
func NewSession(cfg config.RunnerConfig, rt core.RuntimeConfig) *Session {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return &Session{cfg: cfg, rt: rt}
}

// Status returns the lifecycle state: idle until the first start, then the
// active run's status.
func (s *Session) Status() Status {
	if s.run == nil {
		return StatusIdle
	}
	return s.run.status
}

// Start begins a fresh run. Valid from idle or over; a no-op otherwise.
// The new player gets shield charges derived from the shield upgrade.
func (s *Session) Start() {
	switch s.Status() {
	case StatusIdle, StatusOver:
		s.run = newRun(s.cfg, &s.upgrades, s.rt, s.rt.Seed)
	}
}

// Pause suspends a running run. Valid from running only.
func (s *Session) Pause() {
	if s.Status() == StatusRunning {
		s.run.status = StatusPaused
	}
}

// Resume continues a paused run. Valid from paused only. The platform must
// reset its last-tick stamp so the paused interval does not arrive as one
// giant delta; the run clock itself never advanced while paused.
func (s *Session) Resume() {
	if s.Status() == StatusPaused {
		s.run.status = StatusRunning
	}
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() {
	switch s.Status() {
	case StatusRunning:
		s.Pause()
	case StatusPaused:
		s.Resume()
	}
}

// Restart abandons the current run and starts a new one. Valid from any
// non-idle state.
func (s *Session) Restart() {
	if s.Status() == StatusIdle {
		return
	}
	s.run = newRun(s.cfg, &s.upgrades, s.rt, s.rt.Seed)
}

// Advance records the tick's input surface and advances the active run.
// A pause request is handled here and freezes the tick. With no active
// run, or a paused or finished one, the state is left untouched.
func (s *Session) Advance(elapsed time.Duration, in core.Input) StepResult {
	if s.run == nil {
		return StepResult{Status: StatusIdle}
	}
	if in.Pause {
		s.TogglePause()
		in.Pause = false
		return s.run.result(nil)
	}
	s.run.SetInput(in)
	return s.run.Advance(elapsed)
}

// Resize updates the playfield dimensions. An unfinished run restarts
// with the new geometry; finished runs keep their result.
func (s *Session) Resize(w, h int) {
	s.rt.ScreenW = w
	s.rt.ScreenH = h
	if s.run != nil && s.run.status != StatusOver {
		s.run = newRun(s.cfg, &s.upgrades, s.rt, s.rt.Seed)
	}
}

// Upgrades returns the session's current upgrade levels.
func (s *Session) Upgrades() Upgrades {
	return s.upgrades
}

// UpgradeCost returns the price of the next level of a category.
func (s *Session) UpgradeCost(k UpgradeKind) int {
	return s.upgrades.Cost(k, s.cfg.Upgrades)
}

// Buy purchases one level of an upgrade category with the active run's
// earned currency. Unaffordable or maxed purchases are silently rejected.
// A shield purchase immediately grants a charge to the active player.
func (s *Session) Buy(k UpgradeKind) bool {
	if s.run == nil || s.run.status != StatusRunning {
		return false
	}
	if s.upgrades.Level(k) >= s.cfg.Upgrades.MaxLevel {
		return false
	}
	cost := s.upgrades.Cost(k, s.cfg.Upgrades)
	if s.run.currency < cost {
		return false
	}
	s.run.currency -= cost
	s.upgrades.bump(k)
	if k == UpgradeShield {
		s.run.player.Shields++
	}
	return true
}
