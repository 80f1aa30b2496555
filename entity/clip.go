package entity

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// ClipVelocity clips the velocity of a moving bounding box against a
// stationary one, so that applying the returned velocity never pushes the
// moving box into the stationary box.
func ClipVelocity(stationary, moving cube.BBox, velocity mgl32.Vec3) mgl32.Vec3 {
	if bbHasZeroVolume(stationary) {
		return velocity
	}

	axisPenetrations := [3]float32{}
	normalDirs := [3]float32{}
	separatingAxes, separatingAxis := 0, 0

	for i := 0; i < 3; i++ {
		minPenetration := moving.Max()[i] - stationary.Min()[i]
		maxPenetration := stationary.Max()[i] - moving.Min()[i]

		if math32.Abs(minPenetration) <= 1e-7 {
			minPenetration = 0
		}
		if math32.Abs(maxPenetration) <= 1e-7 {
			maxPenetration = 0
		}

		minPositive := math32.Max(0, minPenetration)
		maxPositive := math32.Max(0, maxPenetration)

		if minPositive == 0 {
			axisPenetrations[i] = minPenetration
			normalDirs[i] = -1
			separatingAxes++
			separatingAxis = i
		} else if maxPositive == 0 {
			axisPenetrations[i] = maxPenetration
			normalDirs[i] = 1
			separatingAxes++
			separatingAxis = i
		} else if minPositive < maxPositive {
			axisPenetrations[i] = minPositive
			normalDirs[i] = -1
		} else {
			axisPenetrations[i] = maxPositive
			normalDirs[i] = 1
		}

		if separatingAxes > 1 {
			// Separated on two axes, the boxes cannot touch this move.
			return velocity
		}
	}

	if separatingAxes == 0 {
		// Already overlapping, leave depenetration to ResolvePenetration.
		return velocity
	}

	sweptPenetration := axisPenetrations[separatingAxis] - (normalDirs[separatingAxis] * velocity[separatingAxis])
	if sweptPenetration <= 0 {
		return velocity
	}

	velocity[separatingAxis] = axisPenetrations[separatingAxis] * normalDirs[separatingAxis]
	return velocity
}

// ResolvePenetration returns the minimal translation that separates the moving
// box from the stationary one along a single axis, or the zero vector when the
// boxes do not overlap.
func ResolvePenetration(stationary, moving cube.BBox) mgl32.Vec3 {
	if bbHasZeroVolume(stationary) {
		return mgl32.Vec3{}
	}

	axisPenetrations := [3]float32{}
	normalDirs := [3]float32{}

	for i := 0; i < 3; i++ {
		minPenetration := moving.Max()[i] - stationary.Min()[i]
		maxPenetration := stationary.Max()[i] - moving.Min()[i]

		minPositive := math32.Max(0, minPenetration)
		maxPositive := math32.Max(0, maxPenetration)
		if minPositive == 0 || maxPositive == 0 {
			// A separating axis exists, no overlap.
			return mgl32.Vec3{}
		}

		if minPositive < maxPositive {
			axisPenetrations[i] = minPositive
			normalDirs[i] = -1
		} else {
			axisPenetrations[i] = maxPositive
			normalDirs[i] = 1
		}
	}

	bestAxis := 0
	for i := 1; i < 3; i++ {
		if axisPenetrations[i] < axisPenetrations[bestAxis] {
			bestAxis = i
		}
	}

	resolution := mgl32.Vec3{}
	resolution[bestAxis] = axisPenetrations[bestAxis] * normalDirs[bestAxis]
	return resolution
}

func bbHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
