package player

import "github.com/go-gl/mathgl/mgl32"

// Input is the polled input snapshot for a single tick. The controller never
// subscribes to device events; whoever owns the input device pushes a fresh
// snapshot every tick.
type Input struct {
	// Move is the desired movement on the horizontal plane: x strafes, y is
	// forward. Values are expected in [-1, 1].
	Move mgl32.Vec2

	Sprint bool
	Jump   bool
}

// Moving reports whether the snapshot carries any movement input.
func (i Input) Moving() bool {
	return i.Move.LenSqr() > 1e-6
}
