package runner

import (
	"math"

	"github.com/avoronkov/runlane/internal/core"
)

// integratePlayer advances player position and velocity by one tick from
// the held input state, gravity, and the ground plane.
func (r *Run) integratePlayer(dt float64) {
	p := &r.player
	ph := r.cfg.Physics

	// Horizontal: accelerate toward max speed in the held direction,
	// otherwise decay toward zero and snap below the epsilon.
	switch {
	case r.input.Left && !r.input.Right:
		p.VX -= ph.Accel * dt
		if p.VX < -ph.MaxSpeed {
			p.VX = -ph.MaxSpeed
		}
	case r.input.Right && !r.input.Left:
		p.VX += ph.Accel * dt
		if p.VX > ph.MaxSpeed {
			p.VX = ph.MaxSpeed
		}
		// Guarantee perceptible motion against the scroll.
		if p.VX < ph.MinRightSpeed {
			p.VX = ph.MinRightSpeed
		}
	default:
		p.VX *= math.Pow(ph.Friction, dt)
		if math.Abs(p.VX) < ph.SnapEpsilon {
			p.VX = 0
		}
	}

	p.X += p.VX * dt
	minX := r.cfg.World.EdgeMargin
	maxX := r.width - p.W - r.cfg.World.EdgeMargin
	if clamped := core.ClampF(p.X, minX, maxX); clamped != p.X {
		// Pinned against a wall: kill the velocity into it.
		if (clamped == minX && p.VX < 0) || (clamped == maxX && p.VX > 0) {
			p.VX = 0
		}
		p.X = clamped
	}

	// Vertical: a jump request is honored only when grounded, and the
	// request is consumed either way.
	if r.input.Jump {
		if p.OnGround {
			boost := 1 + ph.JumpBoost*float64(r.upgrades.Jump)
			p.VY = ph.JumpImpulse * boost
			p.OnGround = false
		}
		r.input.Jump = false
	}

	p.VY += ph.Gravity * dt
	p.Y += p.VY * dt

	// Ground plane clamp re-grounds the player and kills fall velocity.
	if p.Y+p.H >= r.groundY {
		p.Y = r.groundY - p.H
		p.VY = 0
		p.OnGround = true
	}
}
