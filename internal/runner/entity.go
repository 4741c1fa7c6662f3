// Package runner implements the side-scrolling runner simulation: player
// physics, entity spawning and movement, collision resolution, difficulty
// tiers, upgrades, and the run lifecycle state machine. The package is
// dependency-free game logic; the platform layer owns scheduling, input
// mapping, rendering, audio, and persistence.
package runner

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/avoronkov/runlane/internal/core"
)

// EntityKind discriminates the entity variants.
type EntityKind int

const (
	KindPickup EntityKind = iota
	KindGroundHazard
	KindFloatingHazard

	kindCount = 3
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPickup:
		return "pickup"
	case KindGroundHazard:
		return "ground-hazard"
	case KindFloatingHazard:
		return "floating-hazard"
	default:
		return "unknown"
	}
}

// Oscillation is the kind-specific payload carried only by non-ground
// entities: the vertical bob wave they ride while scrolling.
type Oscillation struct {
	Amplitude float64
	Phase     float64
}

// Entity is one live object in the lane: a coin pickup, a ground hazard
// the player jumps over, or a floating hazard that bobs at jump height.
// Entities are owned exclusively by their Run and mutated in place.
type Entity struct {
	ID   uint64
	Kind EntityKind

	X, Y float64 // Top-left corner; Y is the oscillation baseline
	W, H float64

	Speed float64 // Base leftward speed in cells per reference tick

	Osc Oscillation // Zero value for ground hazards
	Bob float64     // Current vertical bob offset, updated each tick
}

// EffectiveBox returns the collision box at the entity's current bobbed
// position.
func (e *Entity) EffectiveBox() core.Box {
	return core.NewBox(e.X, e.Y+e.Bob, e.W, e.H)
}

// Right returns the x-coordinate of the entity's right edge.
func (e *Entity) Right() float64 {
	return e.X + e.W
}

// entitySeq is the process-wide monotonic entity identifier counter.
var entitySeq atomic.Uint64

func nextEntityID() uint64 {
	return entitySeq.Add(1)
}

// Base leftward speeds per kind, in cells per reference tick, before the
// tier speed scale and mobility contribution are applied.
const (
	groundHazardSpeed   = 0.55
	floatingHazardSpeed = 0.45
	pickupSpeed         = 0.40
)

// NewGroundHazard constructs a ground hazard just beyond the right edge of
// the playfield, with randomized width and height sitting on the ground.
func NewGroundHazard(rng *rand.Rand, right, groundY float64) Entity {
	w := float64(1 + rng.Intn(3)) // 1-3 cells wide
	h := float64(2 + rng.Intn(3)) // 2-4 cells tall
	return Entity{
		ID:    nextEntityID(),
		Kind:  KindGroundHazard,
		X:     right + 1,
		Y:     groundY - h,
		W:     w,
		H:     h,
		Speed: groundHazardSpeed,
	}
}

// NewFloatingHazard constructs a bobbing hazard at a randomized height
// above the ground with a random oscillation phase.
func NewFloatingHazard(rng *rand.Rand, right, groundY float64) Entity {
	baseY := groundY - float64(4+rng.Intn(4)) // 4-7 cells above ground
	return Entity{
		ID:    nextEntityID(),
		Kind:  KindFloatingHazard,
		X:     right + 1,
		Y:     baseY,
		W:     2,
		H:     1,
		Speed: floatingHazardSpeed,
		Osc: Oscillation{
			Amplitude: 0.6 + rng.Float64()*0.8,
			Phase:     rng.Float64() * 2 * math.Pi,
		},
	}
}

// Pickup heights above the ground plane: one reachable while running, one
// only at the top of a jump.
const (
	pickupLowOffset  = 2
	pickupHighOffset = 6
)

// NewPickup constructs a coin pickup at one of two discrete heights with a
// gentle random-phase bob.
func NewPickup(rng *rand.Rand, right, groundY float64) Entity {
	offset := float64(pickupLowOffset)
	if rng.Intn(2) == 1 {
		offset = pickupHighOffset
	}
	return Entity{
		ID:    nextEntityID(),
		Kind:  KindPickup,
		X:     right + 1,
		Y:     groundY - offset,
		W:     1,
		H:     1,
		Speed: pickupSpeed,
		Osc: Oscillation{
			Amplitude: 0.3,
			Phase:     rng.Float64() * 2 * math.Pi,
		},
	}
}
