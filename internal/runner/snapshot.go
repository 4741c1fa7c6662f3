package runner

import "github.com/avoronkov/runlane/internal/core"

// EntityView is the render-facing projection of one live entity.
type EntityView struct {
	Kind EntityKind
	Box  core.Box
}

// Snapshot is the render-facing projection of the whole session for one
// frame. The renderer performs no simulation logic; it draws exactly what
// the snapshot says.
type Snapshot struct {
	Status Status

	Player       core.Box
	OnGround     bool
	Shields      int
	Invulnerable bool

	Entities []EntityView

	Score    int
	Currency int
	Tier     Tier
	Frame    int
	GroundY  int

	Upgrades Upgrades
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:   s.Status(),
		Upgrades: s.upgrades,
		Tier:     TierForScore(0),
	}
	r := s.run
	if r == nil {
		return snap
	}

	snap.Player = r.player.Box()
	snap.OnGround = r.player.OnGround
	snap.Shields = r.player.Shields
	snap.Invulnerable = r.invulnerable()
	snap.Score = int(r.score)
	snap.Currency = r.currency
	snap.Tier = r.tier
	snap.Frame = r.frame
	snap.GroundY = int(r.groundY)

	snap.Entities = make([]EntityView, 0, len(r.entities))
	for i := range r.entities {
		e := &r.entities[i]
		snap.Entities = append(snap.Entities, EntityView{
			Kind: e.Kind,
			Box:  e.EffectiveBox(),
		})
	}
	return snap
}
