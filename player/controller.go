package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/loags/stepheight/entity"
	"github.com/loags/stepheight/phys"
	"github.com/loags/stepheight/step"
)

const (
	DefaultWalkSpeed        = float32(3.0)
	DefaultSprintMultiplier = float32(1.6)
	DefaultJumpSpeed        = float32(4.2)
	DefaultGravity          = float32(9.81)

	// groundProbeDist is how far below the feet the support check looks.
	groundProbeDist = float32(0.1)
	groundSnapDist  = float32(0.05)
)

// Controller is the demo locomotion driver: it owns a kinematic character
// body, applies walking and gravity, and hands position control to the step
// controller whenever a step-up begins.
type Controller struct {
	log   *logrus.Logger
	world phys.Source
	body  *entity.KinematicBody
	step  *step.Controller

	WalkSpeed        float32
	SprintMultiplier float32
	JumpSpeed        float32
	Gravity          float32

	grounded bool
}

func NewController(world phys.Source, body *entity.KinematicBody, stepCfg step.Config, log *logrus.Logger) *Controller {
	return &Controller{
		log:   log,
		world: world,
		body:  body,
		step:  step.NewController(stepCfg, world, body, log),

		WalkSpeed:        DefaultWalkSpeed,
		SprintMultiplier: DefaultSprintMultiplier,
		JumpSpeed:        DefaultJumpSpeed,
		Gravity:          DefaultGravity,
	}
}

func (c *Controller) Body() *entity.KinematicBody {
	return c.body
}

func (c *Controller) Step() *step.Controller {
	return c.step
}

func (c *Controller) Grounded() bool {
	return c.grounded
}

// Tick advances the character by one simulation tick. The step controller
// runs first; while it is stepping it owns the body's position and normal
// integration is suspended.
func (c *Controller) Tick(dt float32, input Input) {
	surface, supported := c.probeGround()
	c.grounded = supported

	// Descending characters within snapping range are pulled onto the
	// surface before their vertical velocity is zeroed, so they stand on the
	// ground instead of hovering just above it.
	if supported && !c.step.Stepping() && c.body.Velocity().Y() <= 0 {
		if pos := c.body.Position(); pos.Y() > surface {
			c.body.MoveTo(mgl32.Vec3{pos.X(), surface, pos.Z()})
		}
	}

	vel := c.desiredVelocity(dt, input)
	c.body.SetVelocity(vel)

	c.step.Update(dt, c.grounded, input.Moving())
	if c.step.Stepping() {
		return
	}

	c.body.Move(vel.Mul(dt))
}

func (c *Controller) desiredVelocity(dt float32, input Input) mgl32.Vec3 {
	move := input.Move
	if move.LenSqr() > 1 {
		move = move.Normalize()
	}
	speed := c.WalkSpeed
	if input.Sprint {
		speed *= c.SprintMultiplier
	}

	vel := mgl32.Vec3{move.X() * speed, c.body.Velocity().Y(), move.Y() * speed}
	switch {
	case c.grounded && input.Jump:
		vel[1] = c.JumpSpeed
	case c.grounded:
		vel[1] = 0
	default:
		vel[1] -= c.Gravity * dt
	}
	return vel
}

// probeGround sweeps the character capsule a short distance downward and
// returns the height of the support surface within snapping range of the
// feet.
func (c *Controller) probeGround() (float32, bool) {
	pos := c.body.Position()
	bounds := c.body.BoundingBox()
	radius := (bounds.Max().X() - bounds.Min().X()) * 0.5
	top := mgl32.Vec3{pos.X(), bounds.Max().Y(), pos.Z()}

	surface, found := c.world.CapsuleCastDown(top, pos, radius, groundProbeDist, phys.LayerCharacter)
	if !found || pos.Y()-surface.Y() > groundSnapDist {
		return 0, false
	}
	return surface.Y(), true
}
