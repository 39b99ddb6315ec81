package collision

import (
	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/shared/gamemath"
)

// Edge identifies a side of the boundary.
type Edge int

const (
	EdgeRight Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	default:
		return "unknown"
	}
}

// Normal is the edge's outward normal.
func (e Edge) Normal() gamemath.Vec2 {
	switch e {
	case EdgeRight:
		return gamemath.Vec2{X: 1}
	case EdgeBottom:
		return gamemath.Vec2{Y: 1}
	case EdgeLeft:
		return gamemath.Vec2{X: -1}
	case EdgeTop:
		return gamemath.Vec2{Y: -1}
	default:
		return gamemath.Vec2{}
	}
}

// Record describes one body penetrating one boundary edge.
//
// Pos is the contact point relative to BodyA's position, in world
// orientation. MTV is Norm scaled by Overlap.
type Record struct {
	BodyA   *body.Body
	BodyB   *body.Body
	Edge    Edge
	Overlap float64
	Norm    gamemath.Vec2
	MTV     gamemath.Vec2
	Pos     gamemath.Vec2
}

// ContactPoint returns Pos in absolute world coordinates.
func (r Record) ContactPoint() gamemath.Vec2 {
	return r.BodyA.Position.Add(r.Pos)
}
