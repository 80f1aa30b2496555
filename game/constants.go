package game

const (
	// Fallback dimensions used when a character has no enabled collision shapes.
	DefaultColliderRadius = float32(0.5)
	DefaultColliderHeight = float32(2.0)

	// Contact scanning.
	ContactScanRadius  = float32(0.6)
	MaxTrackedContacts = 10
	ContactHeightSnap  = float32(0.01)
	ScanOriginLift     = float32(0.05)

	// Step probing. The vertical probe starts StepProbeReach step heights above
	// the contact and is nudged StepProbeForward along the movement direction.
	StepProbeReach   = float32(1.5)
	StepProbeForward = float32(0.1)
	ProbePadding     = float32(0.05)

	// Admission and completion.
	StepReachSlack         = float32(0.1)
	ArrivalProbeLift       = float32(0.5)
	CeilingProbeMultiplier = float32(2)

	// Squared length below which a direction vector is considered degenerate.
	DirectionEpsilonSqr = float32(1e-4)

	DefaultStepHeight         = float32(0.4)
	DefaultStepSmoothFactor   = float32(5)
	DefaultStepAngleThreshold = float32(65)
)
