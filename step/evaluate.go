package step

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
)

// StepResult describes a validated step-up.
type StepResult struct {
	// Target is the landing position: the character's horizontal position at
	// the height of the step surface.
	Target mgl32.Vec3
	// AlignedTarget is Target nudged one unit along the horizontal movement
	// direction, so the character carries onto the step instead of stalling
	// at its edge.
	AlignedTarget mgl32.Vec3
	// Contact is the contact point the step was derived from.
	Contact ContactPoint
}

// Evaluator decides, once per tick, whether a legal step-up exists for the
// character's current movement. Every rejection is a normal outcome, not an
// error; the next tick re-evaluates from scratch.
type Evaluator struct {
	source  phys.Source
	profile *Profile
	cfg     Config
	log     *logrus.Logger
}

func NewEvaluator(source phys.Source, profile *Profile, cfg Config, log *logrus.Logger) *Evaluator {
	return &Evaluator{source: source, profile: profile, cfg: cfg, log: log}
}

// TryFindStep searches the scanned contacts for a legal step-up in the given
// movement direction. groundPos is the character's current ground position.
func (e *Evaluator) TryFindStep(groundPos, moveDir mgl32.Vec3, contacts []ContactPoint) (StepResult, bool) {
	if len(contacts) == 0 {
		return StepResult{}, false
	}
	ignore := e.cfg.LayersToIgnore | phys.LayerCharacter

	// The scan origin sits just above the lowest contact, so height
	// differences are measured from the surface the character stands on
	// rather than from its transform.
	minY := contacts[0].Point.Y()
	for _, contact := range contacts[1:] {
		minY = math32.Min(minY, contact.Point.Y())
	}
	origin := mgl32.Vec3{groundPos.X(), minY + game.ScanOriginLift, groundPos.Z()}

	chosen, ok := e.selectContact(origin, moveDir, contacts)
	if !ok {
		e.cfg.debugf("step: no contact within %v° of movement direction", e.cfg.StepAngleThreshold)
		return StepResult{}, false
	}

	probeOrigin := chosen.Point.
		Add(mgl32.Vec3{0, e.cfg.StepHeight * game.StepProbeReach, 0}).
		Add(moveDir.Mul(game.StepProbeForward))
	if e.source.PointInside(probeOrigin, game.ProbePadding, ignore) {
		e.cfg.debugf("step: probe origin %v is inside solid geometry", probeOrigin)
		return StepResult{}, false
	}

	hit, found := e.source.RaycastDown(probeOrigin, e.cfg.StepHeight*game.StepProbeReach, ignore)
	if !found {
		e.cfg.debugf("step: vertical probe from %v found no surface", probeOrigin)
		return StepResult{}, false
	}

	heightDiff := hit.Point.Y() - origin.Y()
	if heightDiff <= 0 || heightDiff > e.cfg.StepHeight {
		e.cfg.debugf("step: height difference %v outside (0, %v]", heightDiff, e.cfg.StepHeight)
		return StepResult{}, false
	}

	target := mgl32.Vec3{groundPos.X(), hit.Point.Y(), groundPos.Z()}
	if e.ceilingBlocked(target) {
		e.cfg.debugf("step: ceiling blocked above target %v", target)
		return StepResult{}, false
	}

	result := StepResult{
		Target:        target,
		AlignedTarget: target.Add(game.HorizontalVec(moveDir)),
		Contact:       chosen,
	}
	e.cfg.debugf("step: found target=%v aligned=%v via contact=%v", result.Target, result.AlignedTarget, chosen.Point)
	return result, true
}

// selectContact picks the contact most aligned with the movement direction
// among those within the angle threshold. Ties keep the earliest contact.
func (e *Evaluator) selectContact(origin, moveDir mgl32.Vec3, contacts []ContactPoint) (ContactPoint, bool) {
	var (
		chosen  ContactPoint
		bestDot float32
		found   bool
	)
	for _, contact := range contacts {
		toContact := contact.Point.Sub(origin)
		if moveDir.LenSqr() < game.DirectionEpsilonSqr || toContact.LenSqr() < game.DirectionEpsilonSqr {
			e.log.Warnf("step: degenerate direction toward contact %v, skipping", contact.Point)
			continue
		}
		toContact = toContact.Normalize()
		if game.AngleBetween(moveDir, toContact) > e.cfg.StepAngleThreshold {
			continue
		}
		if dot := moveDir.Dot(toContact); !found || dot > bestDot {
			chosen, bestDot, found = contact, dot, true
		}
	}
	return chosen, found
}

// ceilingBlocked sweeps a sphere of the character's radius upward from the
// landing position for the character's full height. Any obstruction within
// twice the radius means the space is too short to stand in.
func (e *Evaluator) ceilingBlocked(target mgl32.Vec3) bool {
	hits := e.source.SphereCastUp(target, e.profile.Radius(), e.profile.Height(), e.cfg.LayersToIgnore|phys.LayerCharacter)
	for _, hit := range hits {
		if hit.Distance < e.profile.Radius()*game.CeilingProbeMultiplier {
			return true
		}
	}
	return false
}

// IsCloseEnough reports whether the chosen contact is horizontally reachable
// from the step target. This is the final admission gate before a step
// begins; a contact failing it is deferred to the next tick, not failed.
func (e *Evaluator) IsCloseEnough(contact ContactPoint, target mgl32.Vec3) bool {
	return game.Vec3HzDist(contact.Point.Sub(target)) < e.profile.Radius()+game.StepReachSlack
}
