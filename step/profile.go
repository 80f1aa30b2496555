package step

import (
	"github.com/chewxy/math32"
	"github.com/sirupsen/logrus"

	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
)

// ShapeSource exposes the collision shapes attached to a character body.
type ShapeSource interface {
	Shapes() []phys.Shape
}

// Profile caches the character's effective horizontal radius and vertical
// height, derived from the union of its enabled collision shapes. The cache
// is recomputed only on Refresh, never per tick.
type Profile struct {
	source ShapeSource
	log    *logrus.Logger

	radius float32
	height float32
}

func NewProfile(source ShapeSource, log *logrus.Logger) *Profile {
	p := &Profile{source: source, log: log}
	p.Refresh()
	return p
}

// Refresh recomputes the cached dimensions. With no enabled shapes the
// profile falls back to the documented defaults and logs a warning.
func (p *Profile) Refresh() {
	var (
		radius, height float32
		found          bool
	)
	for _, shape := range p.source.Shapes() {
		if !shape.Enabled {
			continue
		}
		found = true
		box := shape.Box
		halfX := (box.Max().X() - box.Min().X()) * 0.5
		halfZ := (box.Max().Z() - box.Min().Z()) * 0.5
		radius = math32.Max(radius, math32.Max(halfX, halfZ))
		height = math32.Max(height, box.Max().Y()-box.Min().Y())
	}

	if !found {
		p.log.Warnf("step: no enabled collision shapes on character, falling back to radius=%v height=%v",
			game.DefaultColliderRadius, game.DefaultColliderHeight)
		p.radius, p.height = game.DefaultColliderRadius, game.DefaultColliderHeight
		return
	}
	p.radius, p.height = radius, height
}

// Radius returns the last cached horizontal radius.
func (p *Profile) Radius() float32 {
	return p.radius
}

// Height returns the last cached vertical height.
func (p *Profile) Height() float32 {
	return p.height
}
