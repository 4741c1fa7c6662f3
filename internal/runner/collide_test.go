package runner

import (
	"testing"
	"time"

	"github.com/avoronkov/runlane/internal/core"
)

// plantEntity injects an entity overlapping the player for collision tests.
func plantEntity(r *Run, kind EntityKind) uint64 {
	e := Entity{
		ID:   nextEntityID(),
		Kind: kind,
		X:    r.player.X,
		Y:    r.player.Y,
		W:    1,
		H:    1,
	}
	r.entities = append(r.entities, e)
	return e.ID
}

func TestPickupCollision(t *testing.T) {
	s := testSession(t, 10)
	r := s.run

	scoreBefore := r.score
	plantEntity(r, KindPickup)
	events := r.resolveCollisions()

	if r.currency != 1 {
		t.Errorf("currency = %d, expected 1", r.currency)
	}
	if r.score != scoreBefore+r.cfg.Score.PickupBonus {
		t.Errorf("score = %f, expected %f", r.score, scoreBefore+r.cfg.Score.PickupBonus)
	}
	if len(events) != 1 || events[0] != EventPickup {
		t.Errorf("events = %v, expected [EventPickup]", events)
	}
	if len(r.entities) != 0 {
		t.Errorf("pickup should be removed, %d entities remain", len(r.entities))
	}

	// Idempotent: the removed entity cannot be collided with again
	events = r.resolveCollisions()
	if len(events) != 0 || r.currency != 1 {
		t.Error("consumed pickup was collided with again")
	}
}

func TestHazardConsumesShield(t *testing.T) {
	s := testSession(t, 11)
	r := s.run

	if r.player.Shields != 1 {
		t.Fatalf("expected 1 base shield charge, got %d", r.player.Shields)
	}

	plantEntity(r, KindGroundHazard)
	events := r.resolveCollisions()

	if r.player.Shields != 0 {
		t.Errorf("shield charge not consumed, %d remain", r.player.Shields)
	}
	if !r.invulnerable() {
		t.Error("shielded hit should open an invulnerability window")
	}
	if r.status != StatusRunning {
		t.Error("shielded hit should not end the run")
	}
	if len(events) != 1 || events[0] != EventShieldHit {
		t.Errorf("events = %v, expected [EventShieldHit]", events)
	}
	if len(r.entities) != 0 {
		t.Error("absorbed hazard should be removed")
	}
}

func TestHazardIgnoredWhileInvulnerable(t *testing.T) {
	s := testSession(t, 12)
	r := s.run

	r.player.Shields = 0
	r.player.InvulnUntil = r.clock + time.Second

	plantEntity(r, KindFloatingHazard)
	events := r.resolveCollisions()

	if len(events) != 0 {
		t.Errorf("invulnerable hit produced events: %v", events)
	}
	if r.status != StatusRunning {
		t.Error("invulnerable hit must not change status")
	}
	if len(r.entities) != 1 {
		t.Error("invulnerable hit must not consume the hazard")
	}
}

func TestLethalHazardEndsRunOnce(t *testing.T) {
	s := testSession(t, 13)
	r := s.run

	r.player.Shields = 0
	plantEntity(r, KindGroundHazard)
	plantEntity(r, KindGroundHazard)

	events := r.resolveCollisions()

	over := 0
	for _, ev := range events {
		if ev == EventGameOver {
			over++
		}
	}
	if over != 1 {
		t.Errorf("expected exactly one game-over event, got %d", over)
	}
	if r.status != StatusOver {
		t.Errorf("status = %v, expected over", r.status)
	}
}

func TestNoScoreAccrualAfterGameOver(t *testing.T) {
	s := testSession(t, 14)
	r := s.run

	r.player.Shields = 0
	plantEntity(r, KindGroundHazard)
	s.Advance(testTick, core.Input{})

	if r.status != StatusOver {
		t.Fatal("run should be over")
	}

	scoreAfter := r.score
	for i := 0; i < 10; i++ {
		s.Advance(testTick, core.Input{})
	}
	if r.score != scoreAfter {
		t.Errorf("score accrued after game over: %f -> %f", scoreAfter, r.score)
	}
}

func TestPickupResolvedBeforeLethalHazard(t *testing.T) {
	s := testSession(t, 15)
	r := s.run

	r.player.Shields = 0
	plantEntity(r, KindGroundHazard)
	plantEntity(r, KindPickup)

	scoreBefore := r.score
	events := r.resolveCollisions()

	// Both are processed in the same tick, pickup first
	if len(events) != 2 || events[0] != EventPickup || events[1] != EventGameOver {
		t.Errorf("events = %v, expected [EventPickup EventGameOver]", events)
	}
	if r.currency != 1 {
		t.Errorf("pickup currency should land before death, got %d", r.currency)
	}
	if r.score != scoreBefore+r.cfg.Score.PickupBonus {
		t.Errorf("pickup bonus should land before death")
	}
	if r.status != StatusOver {
		t.Error("lethal hazard should still end the run")
	}
}

func TestShieldDepletionSequence(t *testing.T) {
	s := testSession(t, 16)
	r := s.run

	// Two charges: base plus one granted directly for the test
	r.player.Shields = 2

	for hit := 0; hit < 2; hit++ {
		plantEntity(r, KindGroundHazard)
		r.resolveCollisions()
		if r.status != StatusRunning {
			t.Fatalf("hit %d should have been absorbed", hit+1)
		}
		// Let the invulnerability window elapse between hits
		r.player.InvulnUntil = r.clock
	}

	if r.player.Shields != 0 {
		t.Fatalf("expected depleted shields, got %d", r.player.Shields)
	}

	// The (N+1)-th contact with zero charges ends the run
	plantEntity(r, KindGroundHazard)
	r.resolveCollisions()
	if r.status != StatusOver {
		t.Error("contact with zero charges should end the run")
	}
}
