package runner

import "time"

// resolveCollisions tests the player box against every live entity and
// applies kind-specific effects. Pickups are resolved before hazards, so
// when both overlap the player in the same tick the pickup's score and
// currency land before a potential lethal hit.
func (r *Run) resolveCollisions() []Event {
	playerBox := r.player.Box()
	var events []Event
	var removed []uint64

	// Pickup pass: score bonus, one currency, entity consumed.
	for i := range r.entities {
		e := &r.entities[i]
		if e.Kind != KindPickup {
			continue
		}
		if !playerBox.Overlaps(e.EffectiveBox()) {
			continue
		}
		r.score += r.cfg.Score.PickupBonus
		r.currency++
		removed = append(removed, e.ID)
		events = append(events, EventPickup)
	}

	// Hazard pass: invulnerability ignores the hit entirely; a shield
	// charge absorbs it and opens an invulnerability window; with no
	// charges left the run ends. This is the only gameplay path to a
	// terminal run.
	for i := range r.entities {
		e := &r.entities[i]
		if e.Kind == KindPickup {
			continue
		}
		if !playerBox.Overlaps(e.EffectiveBox()) {
			continue
		}
		if r.invulnerable() {
			continue
		}
		if r.player.Shields > 0 {
			r.player.Shields--
			r.player.InvulnUntil = r.clock + time.Duration(r.cfg.Shield.InvulnMs)*time.Millisecond
			removed = append(removed, e.ID)
			events = append(events, EventShieldHit)
			continue
		}
		r.status = StatusOver
		events = append(events, EventGameOver)
		break
	}

	if len(removed) > 0 {
		r.removeEntities(removed)
	}
	return events
}

// removeEntities drops consumed entities from the collection, preserving
// order. A consumed entity can never be collided with again.
func (r *Run) removeEntities(ids []uint64) {
	consumed := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		consumed[id] = true
	}
	kept := r.entities[:0]
	for _, e := range r.entities {
		if !consumed[e.ID] {
			kept = append(kept, e)
		}
	}
	r.entities = kept
}
