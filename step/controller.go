package step

import (
	"github.com/sirupsen/logrus"

	"github.com/loags/stepheight/assert"
	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
)

// CharacterBody combines the rigid body surface with shape access so that a
// single injected dependency covers both motion and profiling.
type CharacterBody interface {
	Body
	ShapeSource
}

// Controller fuses scanning, evaluation and execution into the single
// per-tick operation exposed to locomotion code: attempt a step if the
// character is grounded and moving.
type Controller struct {
	cfg  Config
	log  *logrus.Logger
	body CharacterBody

	profile   *Profile
	scanner   *Scanner
	evaluator *Evaluator
	executor  *Executor
}

func NewController(cfg Config, source phys.Source, body CharacterBody, log *logrus.Logger) *Controller {
	assert.IsTrue(source != nil, "step controller requires a collision source")
	assert.IsTrue(body != nil, "step controller requires a character body")
	assert.IsTrue(cfg.StepHeight > 0, "step height must be positive, got %v", cfg.StepHeight)
	assert.IsTrue(cfg.StepSmoothFactor > 0, "step smooth factor must be positive, got %v", cfg.StepSmoothFactor)
	assert.IsTrue(cfg.StepAngleThreshold >= 0 && cfg.StepAngleThreshold <= 180,
		"step angle threshold must be within [0°,180°], got %v", cfg.StepAngleThreshold)

	profile := NewProfile(body, log)
	return &Controller{
		cfg:       cfg,
		log:       log,
		body:      body,
		profile:   profile,
		scanner:   NewScanner(source, cfg.LayersToIgnore),
		evaluator: NewEvaluator(source, profile, cfg, log),
		executor:  NewExecutor(source, body, profile, cfg, log),
	}
}

// Profile returns the character's collider profile cache, so that shape
// changes can be followed by an explicit Refresh.
func (c *Controller) Profile() *Profile {
	return c.profile
}

// State returns the current step state.
func (c *Controller) State() State {
	return c.executor.State()
}

// Stepping reports whether a step is in progress. While it returns true, the
// owning locomotion controller must not write the body's position.
func (c *Controller) Stepping() bool {
	return c.executor.Stepping()
}

// Update is the once-per-tick entry point. grounded and moving are polled
// state pushed down by the locomotion controller; dt is the tick's time
// delta. A running step is advanced, otherwise a new step is attempted.
func (c *Controller) Update(dt float32, grounded, moving bool) {
	if !c.cfg.Enabled {
		return
	}
	if c.executor.Stepping() {
		c.executor.Tick(dt, moving)
		return
	}
	if !grounded || !moving {
		return
	}
	c.attemptStep()
}

func (c *Controller) attemptStep() {
	moveDir := game.HorizontalVec(c.body.Velocity())
	if moveDir.LenSqr() < game.DirectionEpsilonSqr {
		return
	}
	moveDir = moveDir.Normalize()

	contacts := c.scanner.Scan(c.body.Position())
	defer c.scanner.Release(contacts)

	result, found := c.evaluator.TryFindStep(c.body.Position(), moveDir, contacts)
	if !found {
		return
	}
	if !c.evaluator.IsCloseEnough(result.Contact, result.Target) {
		c.cfg.debugf("step: contact %v too far from target %v, deferring", result.Contact.Point, result.Target)
		return
	}
	c.executor.Begin(result)
}
