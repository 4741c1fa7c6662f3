package runner

import "time"

// spawnInterval returns the current tier's interval for a kind.
func (r *Run) spawnInterval(k EntityKind) time.Duration {
	switch k {
	case KindGroundHazard:
		return r.tier.GroundHazardEvery
	case KindFloatingHazard:
		return r.tier.FloatingHazardEvery
	default:
		return r.tier.PickupEvery
	}
}

// spawnEntities emits new entities for every kind whose interval has
// elapsed on the run clock. Kinds are independent; all three may spawn in
// the same tick.
func (r *Run) spawnEntities() {
	right := r.width
	for _, k := range []EntityKind{KindGroundHazard, KindFloatingHazard, KindPickup} {
		if r.clock-r.lastSpawn[k] < r.spawnInterval(k) {
			continue
		}
		var e Entity
		switch k {
		case KindGroundHazard:
			e = NewGroundHazard(r.rng, right, r.groundY)
		case KindFloatingHazard:
			e = NewFloatingHazard(r.rng, right, r.groundY)
		default:
			e = NewPickup(r.rng, right, r.groundY)
		}
		r.entities = append(r.entities, e)
		r.lastSpawn[k] = r.clock
	}
}
