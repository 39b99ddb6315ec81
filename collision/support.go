package collision

import (
	"errors"
	"fmt"

	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/scratch"
	"github.com/automoto/edgebound/shared/gamemath"
)

var ErrNoSupport = errors.New("collision: body has no geometry to query")

// FarthestPoint returns the point of b's hull farthest along the world
// direction dir. The result is in world orientation, relative to b's position.
// Temporaries come from pad; b is not modified.
func FarthestPoint(pad *scratch.Pad, b *body.Body, dir gamemath.Vec2) (gamemath.Vec2, error) {
	if b.Geometry == nil {
		return gamemath.Vec2{}, fmt.Errorf("body %d: %w", b.ID, ErrNoSupport)
	}

	trans := pad.Transform().SetRotation(b.Angle)
	local := pad.Vector()
	*local = trans.RotateInv(dir)

	return trans.Rotate(b.Geometry.FarthestHullPoint(*local)), nil
}
