// Package collision detects bodies penetrating the world boundary.
package collision

import (
	"fmt"

	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/scratch"
	"github.com/automoto/edgebound/shared/gamemath"
)

// Overlap tests run in this order. Each is independent, so a body in a
// corner produces one record per touched edge.
var edges = [...]struct {
	edge    Edge
	overlap func(box gamemath.AABB, b Boundary) float64
}{
	{EdgeRight, func(box gamemath.AABB, b Boundary) float64 {
		return (box.Center.X + box.HalfX) - b.Max.X
	}},
	{EdgeBottom, func(box gamemath.AABB, b Boundary) float64 {
		return (box.Center.Y + box.HalfY) - b.Max.Y
	}},
	{EdgeLeft, func(box gamemath.AABB, b Boundary) float64 {
		return b.Min.X - (box.Center.X - box.HalfX)
	}},
	{EdgeTop, func(box gamemath.AABB, b Boundary) float64 {
		return b.Min.Y - (box.Center.Y - box.HalfY)
	}},
}

// Detector finds boundary penetrations for single bodies.
type Detector struct {
	pool *scratch.Pool
}

// NewDetector returns a detector drawing temporaries from pool. A nil pool
// gets a private one.
func NewDetector(pool *scratch.Pool) *Detector {
	if pool == nil {
		pool = scratch.NewPool()
	}
	return &Detector{pool: pool}
}

// Pool returns the scratch pool the detector draws from.
func (d *Detector) Pool() *scratch.Pool {
	return d.pool
}

// Detect returns one record per boundary edge b's AABB touches or crosses.
// A body without geometry is an error and yields no records.
//
// Record.Pos is relative to b's position, not absolute. Use
// Record.ContactPoint for the world-space point.
//
// The overlap comes from the cached AABB while the contact point comes from
// the hull, so for rotated bodies Pos need not lie on the edge of the AABB
// that triggered the record.
func (d *Detector) Detect(b *body.Body, bounds Boundary, dummy *body.Body) ([]Record, error) {
	return d.AppendDetect(nil, b, bounds, dummy)
}

// AppendDetect is Detect appending to dst. On error dst is returned unchanged.
func (d *Detector) AppendDetect(dst []Record, b *body.Body, bounds Boundary, dummy *body.Body) ([]Record, error) {
	if b.Geometry == nil {
		return dst, fmt.Errorf("body %d: %w", b.ID, ErrNoSupport)
	}

	pad := d.pool.Acquire()
	defer pad.Done()

	n := len(dst)
	box := b.AABB()
	for _, e := range edges {
		overlap := e.overlap(box, bounds)
		if overlap < 0 {
			continue
		}

		norm := e.edge.Normal()
		pos, err := FarthestPoint(pad, b, norm)
		if err != nil {
			return dst[:n], err
		}

		dst = append(dst, Record{
			BodyA:   b,
			BodyB:   dummy,
			Edge:    e.edge,
			Overlap: overlap,
			Norm:    norm,
			MTV:     norm.Scale(overlap),
			Pos:     pos,
		})
	}

	return dst, nil
}
