package phys

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Overlap is a single collider returned by a broad-phase overlap query.
type Overlap struct {
	Handle Handle
	Box    cube.BBox
}

// RayHit is the result of a downward ray query.
type RayHit struct {
	Point  mgl32.Vec3
	Handle Handle
}

// SphereHit is a single collider found by an upward sphere sweep, with the
// vertical distance from the sweep origin to the collider's underside.
type SphereHit struct {
	Handle   Handle
	Distance float32
}

// Shape is a single collision volume attached to a character body.
type Shape struct {
	Box     cube.BBox
	Enabled bool
}

// Source is the collision query surface consumed by the step system. Every
// query skips disabled colliders, trigger volumes and any collider whose layer
// is in the ignore mask.
type Source interface {
	// OverlapSphere returns the colliders within radius of center, bounded to a
	// fixed maximum count.
	OverlapSphere(center mgl32.Vec3, radius float32, ignore Layer) []Overlap
	// RaycastDown casts straight down from origin and returns the nearest
	// top-face intersection within maxDist.
	RaycastDown(origin mgl32.Vec3, maxDist float32, ignore Layer) (RayHit, bool)
	// CapsuleCastDown sweeps a vertical capsule downward from its bottom point
	// and returns the nearest surface point hit within maxDist.
	CapsuleCastDown(top, bottom mgl32.Vec3, radius, maxDist float32, ignore Layer) (mgl32.Vec3, bool)
	// SphereCastUp sweeps a sphere upward from origin and returns every
	// collider it touches within maxDist.
	SphereCastUp(origin mgl32.Vec3, radius, maxDist float32, ignore Layer) []SphereHit
	// PointInside reports whether the point, padded by radius, lies inside any
	// collider.
	PointInside(p mgl32.Vec3, radius float32, ignore Layer) bool
	// NearbyBoxes returns the bounding boxes overlapping the given box, used
	// for movement clipping.
	NearbyBoxes(aabb cube.BBox, ignore Layer) []cube.BBox
}
