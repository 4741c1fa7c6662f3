package runner

import (
	"testing"

	"github.com/avoronkov/runlane/internal/config"
	"github.com/avoronkov/runlane/internal/core"
)

func TestLifecycleTransitions(t *testing.T) {
	s := testSession(t, 30)

	if s.Status() != StatusRunning {
		t.Fatalf("after Start, status = %v", s.Status())
	}

	// pause is valid from running only
	s.Pause()
	if s.Status() != StatusPaused {
		t.Errorf("after Pause, status = %v", s.Status())
	}
	s.Pause() // no-op
	if s.Status() != StatusPaused {
		t.Error("Pause from paused should be a no-op")
	}

	s.Resume()
	if s.Status() != StatusRunning {
		t.Errorf("after Resume, status = %v", s.Status())
	}
	s.Resume() // no-op
	if s.Status() != StatusRunning {
		t.Error("Resume from running should be a no-op")
	}

	// start is a no-op while a run is active
	run := s.run
	s.Start()
	if s.run != run {
		t.Error("Start from running should not replace the run")
	}

	// restart replaces the run wholesale
	s.Restart()
	if s.run == run {
		t.Error("Restart should allocate a fresh run")
	}
	if s.Status() != StatusRunning {
		t.Errorf("after Restart, status = %v", s.Status())
	}
}

func TestIdleSessionIsInert(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	s := NewSession(config.DefaultRunnerConfig(), rt)

	if s.Status() != StatusIdle {
		t.Fatalf("new session status = %v, expected idle", s.Status())
	}

	res := s.Advance(testTick, core.Input{Jump: true})
	if res.Status != StatusIdle {
		t.Error("Advance on an idle session should report idle")
	}

	s.Pause()
	s.Resume()
	s.Restart()
	if s.Status() != StatusIdle {
		t.Error("pause/resume/restart must not leave idle without a start")
	}
}

func TestStartAfterGameOver(t *testing.T) {
	s := testSession(t, 31)
	r := s.run

	r.player.Shields = 0
	plantEntity(r, KindGroundHazard)
	s.Advance(testTick, core.Input{})
	if s.Status() != StatusOver {
		t.Fatal("run should be over")
	}

	s.Start()
	if s.Status() != StatusRunning {
		t.Errorf("Start from over should begin a new run, status = %v", s.Status())
	}
	if s.run.score != 0 || s.run.currency != 0 {
		t.Error("new run should start with zeroed score and currency")
	}
	if len(s.run.entities) != 0 {
		t.Error("new run should start with an empty entity collection")
	}
}

func TestPauseFreezesState(t *testing.T) {
	s := testSession(t, 32)
	r := s.run

	for i := 0; i < 30; i++ {
		s.Advance(testTick, core.Input{})
	}
	scoreBefore := r.score
	clockBefore := r.clock

	s.Pause()
	for i := 0; i < 30; i++ {
		s.Advance(testTick, core.Input{Right: true})
	}

	if r.score != scoreBefore {
		t.Error("score advanced while paused")
	}
	if r.clock != clockBefore {
		t.Error("run clock advanced while paused")
	}
}

func TestPauseToggleViaInput(t *testing.T) {
	s := testSession(t, 33)

	s.Advance(testTick, core.Input{Pause: true})
	if s.Status() != StatusPaused {
		t.Errorf("pause input should pause, status = %v", s.Status())
	}
	s.Advance(testTick, core.Input{Pause: true})
	if s.Status() != StatusRunning {
		t.Errorf("pause input should resume, status = %v", s.Status())
	}
}

func TestUpgradePurchaseExactCost(t *testing.T) {
	s := testSession(t, 34)
	r := s.run

	cost := s.UpgradeCost(UpgradeJump)

	// One short: rejected, state unchanged
	r.currency = cost - 1
	if s.Buy(UpgradeJump) {
		t.Error("purchase below cost should be rejected")
	}
	if r.currency != cost-1 || s.upgrades.Jump != 0 {
		t.Error("rejected purchase must not change state")
	}

	// Exactly affordable: succeeds, currency lands at zero
	r.currency = cost
	if !s.Buy(UpgradeJump) {
		t.Error("purchase at exact cost should succeed")
	}
	if r.currency != 0 {
		t.Errorf("currency = %d, expected 0", r.currency)
	}
	if s.upgrades.Jump != 1 {
		t.Errorf("jump level = %d, expected 1", s.upgrades.Jump)
	}
}

func TestUpgradeCostIncreases(t *testing.T) {
	s := testSession(t, 35)
	cfg := s.cfg.Upgrades

	base := s.UpgradeCost(UpgradeMobility)
	s.run.currency = 1000
	s.Buy(UpgradeMobility)

	if got := s.UpgradeCost(UpgradeMobility); got != base+cfg.Increment {
		t.Errorf("cost after purchase = %d, expected %d", got, base+cfg.Increment)
	}
}

func TestShieldPurchaseGrantsChargeImmediately(t *testing.T) {
	s := testSession(t, 36)
	r := s.run

	before := r.player.Shields
	r.currency = 1000
	if !s.Buy(UpgradeShield) {
		t.Fatal("shield purchase should succeed")
	}
	if r.player.Shields != before+1 {
		t.Errorf("shields = %d, expected %d", r.player.Shields, before+1)
	}
}

func TestUpgradesPersistAcrossRuns(t *testing.T) {
	s := testSession(t, 37)
	s.run.currency = 1000
	s.Buy(UpgradeShield)

	s.Restart()
	if s.upgrades.Shield != 1 {
		t.Error("upgrades should persist across runs")
	}
	// New player starts with base charges plus the shield level
	want := s.cfg.Shield.BaseCharges + 1
	if s.run.player.Shields != want {
		t.Errorf("new run shields = %d, expected %d", s.run.player.Shields, want)
	}
}

func TestBuyRejectedWhenNotRunning(t *testing.T) {
	s := testSession(t, 38)
	s.run.currency = 1000
	s.Pause()

	if s.Buy(UpgradeJump) {
		t.Error("purchase while paused should be rejected")
	}
}
