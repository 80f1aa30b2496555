package step

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
)

// Body is the narrow rigid body surface the executor drives. MoveTo is an
// absolute, collision-respecting position write; while a step runs the
// executor is the only writer of the body's position.
type Body interface {
	Position() mgl32.Vec3
	Velocity() mgl32.Vec3
	MoveTo(target mgl32.Vec3)
}

// Executor carries the body from its position onto a validated step target
// over a bounded duration. It is an explicit state machine advanced once per
// tick; there is no scheduler behind it.
type Executor struct {
	source  phys.Source
	body    Body
	profile *Profile
	cfg     Config
	log     *logrus.Logger

	state   State
	elapsed float32
	start   mgl32.Vec3
	result  StepResult
}

func NewExecutor(source phys.Source, body Body, profile *Profile, cfg Config, log *logrus.Logger) *Executor {
	return &Executor{source: source, body: body, profile: profile, cfg: cfg, log: log}
}

func (x *Executor) State() State {
	return x.state
}

func (x *Executor) Stepping() bool {
	return x.state == StateStepping
}

// Begin starts a step toward the given result's aligned target. A request
// made while a step is already running is rejected and reported; the running
// step is unaffected.
func (x *Executor) Begin(result StepResult) bool {
	if x.state == StateStepping {
		x.log.Errorf("step: step requested while already stepping toward %v, ignoring", x.result.AlignedTarget)
		return false
	}

	x.state = StateStepping
	x.elapsed = 0
	x.start = x.body.Position()
	x.result = result
	x.cfg.debugf("step: begin start=%v target=%v duration=%v", x.start, result.AlignedTarget, 1/x.cfg.StepSmoothFactor)
	return true
}

// Tick advances a running step by dt. hasInput reports whether movement input
// is still held; losing input abandons the step at the current interpolated
// position. A zero dt delays completion, it never errors.
func (x *Executor) Tick(dt float32, hasInput bool) {
	if x.state != StateStepping {
		return
	}
	if !hasInput {
		x.finish("movement input released")
		return
	}

	x.elapsed += dt
	progress := game.SmoothStep(x.elapsed * x.cfg.StepSmoothFactor)
	x.body.MoveTo(game.LerpVec3(x.start, x.result.AlignedTarget, progress))

	if x.arrived() {
		x.finish("arrived on step surface")
		return
	}
	if x.elapsed*x.cfg.StepSmoothFactor >= 1 {
		x.finish("step duration elapsed")
	}
}

// arrived checks whether the character is already supported by the surface it
// is stepping onto, allowing the step to complete before its nominal duration.
func (x *Executor) arrived() bool {
	lift := x.profile.Height() + game.ArrivalProbeLift
	origin := x.body.Position().Add(mgl32.Vec3{0, lift, 0})
	hit, found := x.source.RaycastDown(origin, lift+x.cfg.StepHeight, x.cfg.LayersToIgnore|phys.LayerCharacter)
	return found && hit.Handle == x.result.Contact.Surface
}

func (x *Executor) finish(reason string) {
	x.cfg.debugf("step: finished at %v (%s)", x.body.Position(), reason)
	x.state = StateIdle
	x.elapsed = 0
}
