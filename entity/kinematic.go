package entity

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
)

// KinematicBody is a character body moved by direct position writes rather
// than by a dynamics solver. It satisfies the rigid body surface the step
// system drives, and resolves its own collisions against the world.
type KinematicBody struct {
	world phys.Source

	pos mgl32.Vec3
	vel mgl32.Vec3

	shapes []phys.Shape
}

// NewKinematicBody creates a body of the given dimensions at pos. The body
// carries a single box shape matching its dimensions.
func NewKinematicBody(world phys.Source, pos mgl32.Vec3, width, height float32) *KinematicBody {
	return &KinematicBody{
		world: world,
		pos:   pos,
		shapes: []phys.Shape{
			{Box: game.AABBFromDimensions(width, height), Enabled: true},
		},
	}
}

func (b *KinematicBody) Position() mgl32.Vec3 {
	return b.pos
}

func (b *KinematicBody) Velocity() mgl32.Vec3 {
	return b.vel
}

func (b *KinematicBody) SetVelocity(vel mgl32.Vec3) {
	b.vel = vel
}

// Shapes returns the collision shapes attached to the body.
func (b *KinematicBody) Shapes() []phys.Shape {
	return b.shapes
}

// AttachShape adds a collision shape. The shape's box is relative to the
// body's position.
func (b *KinematicBody) AttachShape(shape phys.Shape) {
	b.shapes = append(b.shapes, shape)
}

// BoundingBox returns the union of the enabled shapes translated to the
// current position. The box is shrunk by a hair on the horizontal axes so
// that standing flush against a wall does not register as overlap.
func (b *KinematicBody) BoundingBox() cube.BBox {
	box, ok := b.localBounds()
	if !ok {
		box = game.AABBFromDimensions(game.DefaultColliderRadius*2, game.DefaultColliderHeight)
	}
	return box.Translate(b.pos).GrowVec3(mgl32.Vec3{-1e-4, 0, -1e-4})
}

func (b *KinematicBody) localBounds() (cube.BBox, bool) {
	var (
		box   cube.BBox
		found bool
	)
	for _, shape := range b.shapes {
		if !shape.Enabled {
			continue
		}
		if !found {
			box, found = shape.Box, true
			continue
		}
		box = cube.Box(
			math32.Min(box.Min().X(), shape.Box.Min().X()),
			math32.Min(box.Min().Y(), shape.Box.Min().Y()),
			math32.Min(box.Min().Z(), shape.Box.Min().Z()),
			math32.Max(box.Max().X(), shape.Box.Max().X()),
			math32.Max(box.Max().Y(), shape.Box.Max().Y()),
			math32.Max(box.Max().Z(), shape.Box.Max().Z()),
		)
	}
	return box, found
}

// Move displaces the body by delta, clipping the displacement against nearby
// world geometry axis by axis (vertical first) so the body never tunnels into
// a solid. It returns the displacement actually applied.
func (b *KinematicBody) Move(delta mgl32.Vec3) mgl32.Vec3 {
	bb := b.BoundingBox()
	boxes := b.world.NearbyBoxes(bb.Extend(delta), phys.LayerCharacter)

	yVel := mgl32.Vec3{0, delta.Y()}
	xVel := mgl32.Vec3{delta.X()}
	zVel := mgl32.Vec3{0, 0, delta.Z()}

	for index := len(boxes) - 1; index >= 0; index-- {
		yVel = ClipVelocity(boxes[index], bb, yVel)
	}
	bb = bb.Translate(yVel)

	for index := len(boxes) - 1; index >= 0; index-- {
		xVel = ClipVelocity(boxes[index], bb, xVel)
	}
	bb = bb.Translate(xVel)

	for index := len(boxes) - 1; index >= 0; index-- {
		zVel = ClipVelocity(boxes[index], bb, zVel)
	}

	applied := yVel.Add(xVel).Add(zVel)
	b.pos = b.pos.Add(applied)
	return applied
}

// MoveTo writes an absolute position and then pushes the body out of any
// geometry it ended up overlapping, along the axis of least penetration. This
// is the exclusive position override used while a step is in progress; the
// validated step target is known to be clear, intermediate positions may
// brush the step's edge and are resolved here.
func (b *KinematicBody) MoveTo(target mgl32.Vec3) {
	b.pos = target

	// Two passes: resolving against one box can push the body into another.
	for pass := 0; pass < 2; pass++ {
		bb := b.BoundingBox()
		resolved := mgl32.Vec3{}
		for _, box := range b.world.NearbyBoxes(bb, phys.LayerCharacter) {
			resolved = resolved.Add(ResolvePenetration(box, bb.Translate(resolved)))
		}
		if resolved == (mgl32.Vec3{}) {
			return
		}
		b.pos = b.pos.Add(resolved)
	}
}
