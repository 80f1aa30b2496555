package step

import (
	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
)

// Config holds the tunables for a single character's step controller. It is
// immutable for the lifetime of the controller.
type Config struct {
	// StepHeight is the tallest obstacle the character steps onto without a
	// jump. Must be positive.
	StepHeight float32
	// StepSmoothFactor is the inverse of the nominal step duration, so a step
	// takes 1/StepSmoothFactor time units unless arrival is detected earlier.
	// Must be positive.
	StepSmoothFactor float32
	// StepAngleThreshold is the widest angle, in degrees, between the movement
	// direction and a contact for the contact to count as a step candidate.
	StepAngleThreshold float32
	// LayersToIgnore is merged into every collision query the controller
	// issues. The character's own layer is always ignored.
	LayersToIgnore phys.Layer

	Enabled bool

	// Debugf receives internal step trace logs for callers that need deep
	// diagnostics. May be nil.
	Debugf func(format string, args ...any)
}

func DefaultConfig() Config {
	return Config{
		StepHeight:         game.DefaultStepHeight,
		StepSmoothFactor:   game.DefaultStepSmoothFactor,
		StepAngleThreshold: game.DefaultStepAngleThreshold,
		Enabled:            true,
	}
}

func (c Config) debugf(format string, args ...any) {
	if c.Debugf != nil {
		c.Debugf(format, args...)
	}
}
