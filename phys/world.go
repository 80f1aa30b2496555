package phys

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/loags/stepheight/assert"
	"github.com/loags/stepheight/game"
)

// maxOverlapResults bounds the broad-phase result list so that a single query
// can never scale with total world size.
const maxOverlapResults = 32

// World is an ordered registry of static colliders implementing Source.
// Iteration follows insertion order, which keeps query results deterministic
// for a given build order.
type World struct {
	colliders *orderedmap.OrderedMap[Handle, *Collider]
}

func NewWorld() *World {
	return &World{colliders: orderedmap.NewOrderedMap[Handle, *Collider]()}
}

// Add registers a collider and returns it for chaining.
func (w *World) Add(c *Collider) *Collider {
	assert.IsTrue(c != nil, "nil collider added to world")
	w.colliders.Set(c.Handle(), c)
	return c
}

// Remove unregisters the collider with the given handle.
func (w *World) Remove(h Handle) bool {
	return w.colliders.Delete(h)
}

// Collider looks up a registered collider by handle.
func (w *World) Collider(h Handle) (*Collider, bool) {
	return w.colliders.Get(h)
}

func (w *World) Len() int {
	return w.colliders.Len()
}

// each visits every queryable collider in insertion order. Disabled colliders,
// triggers and ignored layers are skipped. The visit func returns false to
// stop iteration.
func (w *World) each(ignore Layer, visit func(c *Collider) bool) {
	for el := w.colliders.Front(); el != nil; el = el.Next() {
		c := el.Value
		if !c.enabled || c.trigger || ignore.Contains(c.layer) {
			continue
		}
		if !visit(c) {
			return
		}
	}
}

func (w *World) OverlapSphere(center mgl32.Vec3, radius float32, ignore Layer) []Overlap {
	var results []Overlap
	w.each(ignore, func(c *Collider) bool {
		if game.AABBVectorDistance(c.box, center) <= radius {
			results = append(results, Overlap{Handle: c.handle, Box: c.box})
		}
		return len(results) < maxOverlapResults
	})
	return results
}

func (w *World) RaycastDown(origin mgl32.Vec3, maxDist float32, ignore Layer) (RayHit, bool) {
	var (
		hit   RayHit
		found bool
	)
	w.each(ignore, func(c *Collider) bool {
		box := c.box
		if origin.X() < box.Min().X() || origin.X() > box.Max().X() ||
			origin.Z() < box.Min().Z() || origin.Z() > box.Max().Z() {
			return true
		}
		top := box.Max().Y()
		if top > origin.Y() || origin.Y()-top > maxDist {
			return true
		}
		if !found || top > hit.Point.Y() {
			hit = RayHit{Point: mgl32.Vec3{origin.X(), top, origin.Z()}, Handle: c.handle}
			found = true
		}
		return true
	})
	return hit, found
}

func (w *World) CapsuleCastDown(top, bottom mgl32.Vec3, radius, maxDist float32, ignore Layer) (mgl32.Vec3, bool) {
	assert.IsTrue(top.Y() >= bottom.Y(), "capsule top %v below bottom %v", top, bottom)

	var (
		point mgl32.Vec3
		found bool
	)
	w.each(ignore, func(c *Collider) bool {
		box := c.box
		if game.AABBHzDistance(box, bottom) > radius {
			return true
		}
		surface := box.Max().Y()
		if surface > bottom.Y() || bottom.Y()-surface > maxDist {
			return true
		}
		if !found || surface > point.Y() {
			point = mgl32.Vec3{bottom.X(), surface, bottom.Z()}
			found = true
		}
		return true
	})
	return point, found
}

func (w *World) SphereCastUp(origin mgl32.Vec3, radius, maxDist float32, ignore Layer) []SphereHit {
	var hits []SphereHit
	w.each(ignore, func(c *Collider) bool {
		box := c.box
		if game.AABBHzDistance(box, origin) > radius {
			return true
		}
		// The sweep starts on the surface being stepped onto: anything whose
		// top sits at or below the origin is support, not obstruction.
		if box.Max().Y() <= origin.Y() || box.Min().Y() > origin.Y()+maxDist {
			return true
		}
		dist := box.Min().Y() - origin.Y()
		if dist < 0 {
			dist = 0
		}
		hits = append(hits, SphereHit{Handle: c.handle, Distance: dist})
		return len(hits) < maxOverlapResults
	})
	return hits
}

func (w *World) PointInside(p mgl32.Vec3, radius float32, ignore Layer) bool {
	inside := false
	w.each(ignore, func(c *Collider) bool {
		box := c.box.Grow(radius)
		if p.X() >= box.Min().X() && p.X() <= box.Max().X() &&
			p.Y() >= box.Min().Y() && p.Y() <= box.Max().Y() &&
			p.Z() >= box.Min().Z() && p.Z() <= box.Max().Z() {
			inside = true
			return false
		}
		return true
	})
	return inside
}

func (w *World) NearbyBoxes(aabb cube.BBox, ignore Layer) []cube.BBox {
	var boxes []cube.BBox
	w.each(ignore, func(c *Collider) bool {
		if c.box.IntersectsWith(aabb) {
			boxes = append(boxes, c.box)
		}
		return true
	})
	return boxes
}
