package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions, centered
// horizontally on the origin with its base at y=0.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	return math32.Sqrt(x*x + y*y + z*z)
}

// ClosestPointOnAABB returns the point on the box surface closest to v.
// Interior points project outward to the nearest face.
func ClosestPointOnAABB(a cube.BBox, v mgl32.Vec3) mgl32.Vec3 {
	p := mgl32.Vec3{
		ClampFloat(v.X(), a.Min().X(), a.Max().X()),
		ClampFloat(v.Y(), a.Min().Y(), a.Max().Y()),
		ClampFloat(v.Z(), a.Min().Z(), a.Max().Z()),
	}
	if p != v {
		return p
	}

	bestAxis, bestDist, bestFace := 0, float32(math32.MaxFloat32), float32(0)
	for i := 0; i < 3; i++ {
		if d := v[i] - a.Min()[i]; d < bestDist {
			bestAxis, bestDist, bestFace = i, d, a.Min()[i]
		}
		if d := a.Max()[i] - v[i]; d < bestDist {
			bestAxis, bestDist, bestFace = i, d, a.Max()[i]
		}
	}
	p[bestAxis] = bestFace
	return p
}

// AABBHzDistance calculates the horizontal distance between an AABB and a vector,
// ignoring the vertical axis entirely.
func AABBHzDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))
	return math32.Sqrt(x*x + z*z)
}
