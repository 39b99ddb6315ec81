package gamemath

import "math"

// Vec2 is a 2D vector in simulation space. +Y points down, matching screen
// coordinates, so "bottom" is the max Y edge.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated a quarter turn clockwise on screen (+X toward +Y).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// RotateInv returns v rotated by -angle radians.
func (v Vec2) RotateInv(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{X: v.X*c + v.Y*s, Y: -v.X*s + v.Y*c}
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Transform caches the sine and cosine of a rotation so repeated rotations
// by the same angle don't recompute them. Call SetRotation or Reset before
// use; the zero value collapses every vector to zero.
type Transform struct {
	Angle    float64
	cos, sin float64
}

// SetRotation sets the transform's angle and returns it for chaining.
func (t *Transform) SetRotation(angle float64) *Transform {
	t.Angle = angle
	t.sin, t.cos = math.Sincos(angle)
	return t
}

// Rotate applies the transform's rotation to v.
func (t *Transform) Rotate(v Vec2) Vec2 {
	return Vec2{X: v.X*t.cos - v.Y*t.sin, Y: v.X*t.sin + v.Y*t.cos}
}

// RotateInv applies the inverse of the transform's rotation to v.
func (t *Transform) RotateInv(v Vec2) Vec2 {
	return Vec2{X: v.X*t.cos + v.Y*t.sin, Y: -v.X*t.sin + v.Y*t.cos}
}

// Reset returns the transform to the identity rotation.
func (t *Transform) Reset() {
	t.Angle = 0
	t.cos, t.sin = 1, 0
}
