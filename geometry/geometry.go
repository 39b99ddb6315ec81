// Package geometry provides the body shapes used by the simulation. Shapes live
// in their body's local frame, centered on the body's position, and answer
// support queries along a local-frame direction.
package geometry

import (
	"errors"
	"math"

	"github.com/automoto/edgebound/shared/gamemath"
	"github.com/solarlune/resolv"
)

var ErrDegeneratePolygon = errors.New("geometry: polygon needs at least three vertices")

// Shape is the capability a body's geometry must provide.
type Shape interface {
	// FarthestHullPoint returns the point of the hull farthest along dir.
	// Both dir and the result are in the shape's local frame.
	FarthestHullPoint(dir gamemath.Vec2) gamemath.Vec2

	// Bounds returns the axis-aligned box around the shape rotated by angle
	// radians, relative to the body's origin.
	Bounds(angle float64) gamemath.AABB
}

// Circle is a disc centered on the body's origin.
type Circle struct {
	hull *resolv.Circle
}

func NewCircle(radius float64) *Circle {
	return &Circle{hull: resolv.NewCircle(0, 0, radius)}
}

func (c *Circle) Radius() float64 {
	return c.hull.Radius()
}

func (c *Circle) FarthestHullPoint(dir gamemath.Vec2) gamemath.Vec2 {
	return dir.Normalize().Scale(c.hull.Radius())
}

func (c *Circle) Bounds(float64) gamemath.AABB {
	r := c.hull.Radius()
	return gamemath.AABB{HalfX: r, HalfY: r}
}

// Polygon is a convex polygon whose vertices are given relative to the body's
// origin. The resolv hull sits at the origin and holds the vertices.
type Polygon struct {
	hull *resolv.ConvexPolygon
}

// NewPolygon builds a polygon from flat x, y pairs.
func NewPolygon(points ...float64) (*Polygon, error) {
	if len(points) < 6 || len(points)%2 != 0 {
		return nil, ErrDegeneratePolygon
	}

	return &Polygon{hull: resolv.NewConvexPolygon(0, 0, points...)}, nil
}

// NewBox builds a w by h rectangle centered on the origin.
func NewBox(w, h float64) *Polygon {
	hw, hh := w/2, h/2
	p, _ := NewPolygon(
		-hw, -hh,
		hw, -hh,
		hw, hh,
		-hw, hh,
	)
	return p
}

// Vertices returns a copy of the polygon's local-frame vertices in winding
// order.
func (p *Polygon) Vertices() []gamemath.Vec2 {
	vertices := make([]gamemath.Vec2, len(p.hull.Points))
	for i := range p.hull.Points {
		vertices[i] = p.vertex(i)
	}
	return vertices
}

func (p *Polygon) vertex(i int) gamemath.Vec2 {
	pt := p.hull.Points[i]
	return gamemath.Vec2{X: pt.X(), Y: pt.Y()}
}

// FarthestHullPoint scans the vertices. On a tie the earliest vertex wins.
func (p *Polygon) FarthestHullPoint(dir gamemath.Vec2) gamemath.Vec2 {
	best := p.vertex(0)
	bestDot := best.Dot(dir)
	for i := 1; i < len(p.hull.Points); i++ {
		v := p.vertex(i)
		if d := v.Dot(dir); d > bestDot {
			best, bestDot = v, d
		}
	}
	return best
}

func (p *Polygon) Bounds(angle float64) gamemath.AABB {
	var tr gamemath.Transform
	tr.SetRotation(angle)

	first := tr.Rotate(p.vertex(0))
	min, max := first, first
	for i := 1; i < len(p.hull.Points); i++ {
		r := tr.Rotate(p.vertex(i))
		min.X, max.X = math.Min(min.X, r.X), math.Max(max.X, r.X)
		min.Y, max.Y = math.Min(min.Y, r.Y), math.Max(max.Y, r.Y)
	}
	return gamemath.NewAABBFromMinMax(min, max)
}
