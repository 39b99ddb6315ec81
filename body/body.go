// Package body holds the rigid body state shared by the simulation systems.
package body

import (
	"github.com/automoto/edgebound/geometry"
	"github.com/automoto/edgebound/shared/gamemath"
)

// Body is a rigid body. Angle is the angular position in radians.
type Body struct {
	ID              int
	Position        gamemath.Vec2
	Velocity        gamemath.Vec2
	Angle           float64
	AngularVelocity float64
	Fixed           bool

	// Material coefficients read by the collision resolver.
	Restitution float64
	Friction    float64

	Geometry geometry.Shape

	aabb gamemath.AABB
}

// New creates a movable body at pos. Its AABB is computed immediately.
func New(id int, pos gamemath.Vec2, shape geometry.Shape) *Body {
	b := &Body{
		ID:          id,
		Position:    pos,
		Restitution: 1,
		Friction:    0,
		Geometry:    shape,
	}
	b.RefreshAABB()
	return b
}

// NewDummy returns the fixed stand-in body for the world boundary.
func NewDummy(restitution, friction float64) *Body {
	return &Body{
		ID:          -1,
		Fixed:       true,
		Restitution: restitution,
		Friction:    friction,
	}
}

// AABB returns the cached world-space bounding box.
func (b *Body) AABB() gamemath.AABB {
	return b.aabb
}

// SetAABB overrides the cached bounding box.
func (b *Body) SetAABB(box gamemath.AABB) {
	b.aabb = box
}

// RefreshAABB recomputes the cached box from the geometry, position and angle.
// Bodies without geometry collapse to a point at their position.
func (b *Body) RefreshAABB() {
	if b.Geometry == nil {
		b.aabb = gamemath.AABB{Center: b.Position}
		return
	}
	box := b.Geometry.Bounds(b.Angle)
	box.Center = box.Center.Add(b.Position)
	b.aabb = box
}
