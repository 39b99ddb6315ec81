package collision

import (
	"errors"
	"fmt"

	"github.com/automoto/edgebound/shared/gamemath"
	"github.com/solarlune/resolv"
)

var (
	ErrNoBoundary      = errors.New("collision: boundary not set")
	ErrInvalidBoundary = errors.New("collision: boundary has negative extents")
)

// Rect is a rectangle given as a center and half extents.
type Rect struct {
	Center gamemath.Vec2
	HalfX  float64
	HalfY  float64
}

// RectProvider is anything that can report a rectangle, such as a level
// object or a camera viewport.
type RectProvider interface {
	Rect() Rect
}

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceRect
	sourceProvider
)

// Source is either a raw Rect or a RectProvider. The zero value is empty.
type Source struct {
	kind     sourceKind
	rect     Rect
	provider RectProvider
}

func FromRect(r Rect) Source {
	return Source{kind: sourceRect, rect: r}
}

// FromMinMax builds a source from opposite corners.
func FromMinMax(min, max gamemath.Vec2) Source {
	box := gamemath.NewAABBFromMinMax(min, max)
	return FromRect(Rect{Center: box.Center, HalfX: box.HalfX, HalfY: box.HalfY})
}

func FromProvider(p RectProvider) Source {
	if p == nil {
		return Source{}
	}
	return Source{kind: sourceProvider, provider: p}
}

// FromObject uses a resolv object's bounds as the boundary.
func FromObject(obj *resolv.Object) Source {
	if obj == nil {
		return Source{}
	}
	return FromProvider(objectRect{obj})
}

// IsZero reports whether the source carries no rectangle.
func (s Source) IsZero() bool {
	return s.kind == sourceNone
}

func (s Source) resolve() (Rect, error) {
	switch s.kind {
	case sourceRect:
		return s.rect, nil
	case sourceProvider:
		return s.provider.Rect(), nil
	default:
		return Rect{}, ErrNoBoundary
	}
}

type objectRect struct {
	obj *resolv.Object
}

func (o objectRect) Rect() Rect {
	return Rect{
		Center: gamemath.Vec2{X: o.obj.X + o.obj.W/2, Y: o.obj.Y + o.obj.H/2},
		HalfX:  o.obj.W / 2,
		HalfY:  o.obj.H / 2,
	}
}

// Boundary is the world rectangle bodies are kept inside of.
type Boundary struct {
	Min gamemath.Vec2
	Max gamemath.Vec2
}

// NewBoundary resolves src once and returns the edges it describes.
func NewBoundary(src Source) (Boundary, error) {
	r, err := src.resolve()
	if err != nil {
		return Boundary{}, err
	}
	if r.HalfX < 0 || r.HalfY < 0 {
		return Boundary{}, fmt.Errorf("%w: half extents %v x %v", ErrInvalidBoundary, r.HalfX, r.HalfY)
	}

	return Boundary{
		Min: gamemath.Vec2{X: r.Center.X - r.HalfX, Y: r.Center.Y - r.HalfY},
		Max: gamemath.Vec2{X: r.Center.X + r.HalfX, Y: r.Center.Y + r.HalfY},
	}, nil
}

func (b Boundary) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Boundary) Height() float64 {
	return b.Max.Y - b.Min.Y
}
