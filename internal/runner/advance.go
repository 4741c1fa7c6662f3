package runner

import "math"

// bobRate is the angular step of the oscillation wave per frame.
const bobRate = 0.12

// advanceEntities scrolls every live entity leftward, updates the bob
// offset of non-ground kinds, and culls entities that have fully left the
// playfield. Culling bounds the entity collection under sustained play.
func (r *Run) advanceEntities(dt float64) {
	mobility := r.cfg.World.Mobility * float64(r.upgrades.Mobility)
	scale := r.tier.SpeedScale * r.cfg.World.Scroll

	for i := range r.entities {
		e := &r.entities[i]
		e.X -= (e.Speed + mobility) * scale * dt
		if e.Kind != KindGroundHazard {
			e.Bob = math.Sin(float64(r.frame)*bobRate+e.Osc.Phase) * e.Osc.Amplitude * dt
		}
	}

	kept := r.entities[:0]
	for _, e := range r.entities {
		if e.Right() > -r.cfg.World.CullMargin {
			kept = append(kept, e)
		}
	}
	r.entities = kept
}
