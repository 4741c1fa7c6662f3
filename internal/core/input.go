package core

// Input is the input surface consumed by one simulation tick.
// Left and Right are hold-state flags: true while the key is considered
// held down. Jump is edge-triggered and is cleared by the integrator once
// consumed. Pause toggles the run state and is handled by the lifecycle,
// not the integrator.
type Input struct {
	Left  bool // Move left held
	Right bool // Move right held
	Jump  bool // Jump requested this frame
	Pause bool // Pause toggle requested this frame
}
