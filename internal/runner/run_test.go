package runner

import (
	"math"
	"testing"

	"github.com/avoronkov/runlane/internal/config"
	"github.com/avoronkov/runlane/internal/core"
)

func TestScoreStrictlyIncreasesWhileRunning(t *testing.T) {
	s := testSession(t, 40)
	r := s.run

	prev := r.score
	for i := 0; i < 1000; i++ {
		s.Advance(testTick, core.Input{})
		if r.status != StatusRunning {
			break // hazards may legitimately end the run
		}
		if r.score <= prev {
			t.Fatalf("tick %d: score did not strictly increase: %f -> %f", i, prev, r.score)
		}
		prev = r.score
	}
}

func TestPickupCollisionExactDelta(t *testing.T) {
	s := testSession(t, 41)
	r := s.run

	// Plant a pickup dead on the player; its bob amplitude stays well
	// inside the player box over one tick
	e := Entity{
		ID:   nextEntityID(),
		Kind: KindPickup,
		X:    r.player.X + 1,
		Y:    r.player.Y + 1,
		W:    1,
		H:    1,
		Osc:  Oscillation{Amplitude: 0.3},
	}
	r.entities = append(r.entities, e)

	scoreBefore := r.score
	currencyBefore := r.currency
	s.Advance(testTick, core.Input{})

	accrual := testTick.Seconds() * r.cfg.Score.RatePerSecond * r.tier.SpeedScale
	expected := scoreBefore + r.cfg.Score.PickupBonus + accrual
	if math.Abs(r.score-expected) > 1e-6 {
		t.Errorf("score = %f, expected %f (bonus + time accrual)", r.score, expected)
	}
	if r.currency != currencyBefore+1 {
		t.Errorf("currency = %d, expected %d", r.currency, currencyBefore+1)
	}
}

func TestRunDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical results
	play := func() (int, int, Status) {
		s := testSession(t, 12345)
		for i := 0; i < 600; i++ {
			in := core.Input{}
			if i%25 == 0 {
				in.Jump = true
			}
			if i%7 == 0 {
				in.Right = true
			}
			res := s.Advance(testTick, in)
			if res.Status == StatusOver {
				return res.Score, s.run.frame, res.Status
			}
		}
		return s.run.Score(), s.run.frame, s.Status()
	}

	score1, frames1, status1 := play()
	score2, frames2, status2 := play()

	if score1 != score2 || frames1 != frames2 || status1 != status2 {
		t.Errorf("determinism failed: (%d, %d, %v) vs (%d, %d, %v)",
			score1, frames1, status1, score2, frames2, status2)
	}
}

func TestElapsedClamping(t *testing.T) {
	s := testSession(t, 42)
	r := s.run

	// A giant delta (suspended terminal) must be clamped
	s.Advance(10*refFrame*60, core.Input{}) // 10 seconds
	if r.clock > maxElapsed {
		t.Errorf("run clock advanced by %v, expected at most %v", r.clock, maxElapsed)
	}

	// Negative deltas are ignored
	clockBefore := r.clock
	s.Advance(-refFrame, core.Input{})
	if r.clock != clockBefore {
		t.Error("negative elapsed should not rewind the clock")
	}
}

func TestTierProgressionDuringRun(t *testing.T) {
	s := testSession(t, 43)
	r := s.run

	r.score = tiers[1].Threshold
	s.Advance(testTick, core.Input{})

	if r.tier.Level != 2 {
		t.Errorf("tier = %d, expected 2 at score %f", r.tier.Level, r.score)
	}
}

func TestSnapshotReflectsRun(t *testing.T) {
	s := testSession(t, 44)
	r := s.run

	for i := 0; i < 300; i++ {
		s.Advance(testTick, core.Input{})
		if r.status != StatusRunning {
			break
		}
	}

	snap := s.Snapshot()
	if snap.Status != r.status {
		t.Errorf("snapshot status = %v, run status = %v", snap.Status, r.status)
	}
	if snap.Score != int(r.score) {
		t.Errorf("snapshot score = %d, expected %d", snap.Score, int(r.score))
	}
	if len(snap.Entities) != len(r.entities) {
		t.Errorf("snapshot entities = %d, run entities = %d", len(snap.Entities), len(r.entities))
	}
	if snap.Player.W != r.player.W || snap.Player.H != r.player.H {
		t.Error("snapshot player box does not match run player")
	}
}

func TestIdleSnapshot(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	s := NewSession(config.DefaultRunnerConfig(), rt)

	snap := s.Snapshot()
	if snap.Status != StatusIdle {
		t.Errorf("idle snapshot status = %v", snap.Status)
	}
	if snap.Tier.Level != 1 {
		t.Error("idle snapshot should carry the base tier")
	}
}
