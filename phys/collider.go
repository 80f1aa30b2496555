package phys

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/zeebo/xxh3"
)

// Handle identifies a collider for the duration of its registration. Handles
// are derived from the collider name, so names must be unique per world.
type Handle uint64

// NoHandle marks the absence of a collider.
const NoHandle Handle = 0

// Collider is a static axis-aligned box registered in a World.
type Collider struct {
	handle  Handle
	name    string
	box     cube.BBox
	layer   Layer
	trigger bool
	enabled bool
}

func NewCollider(name string, box cube.BBox, layer Layer) *Collider {
	return &Collider{
		handle:  Handle(xxh3.HashString(name)),
		name:    name,
		box:     box,
		layer:   layer,
		enabled: true,
	}
}

func (c *Collider) Handle() Handle {
	return c.handle
}

func (c *Collider) Name() string {
	return c.name
}

func (c *Collider) Box() cube.BBox {
	return c.box
}

func (c *Collider) Layer() Layer {
	return c.layer
}

// Trigger reports whether the collider is a trigger volume. Triggers are
// invisible to every query in this package.
func (c *Collider) Trigger() bool {
	return c.trigger
}

func (c *Collider) SetTrigger(trigger bool) *Collider {
	c.trigger = trigger
	return c
}

func (c *Collider) Enabled() bool {
	return c.enabled
}

func (c *Collider) SetEnabled(enabled bool) {
	c.enabled = enabled
}
