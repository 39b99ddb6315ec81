package factory

import (
	"github.com/automoto/edgebound/archetypes"
	"github.com/automoto/edgebound/collision"
	"github.com/automoto/edgebound/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// NewBoundaryObject builds the resolv object for a boundary rectangle with
// its top-left corner at x, y.
func NewBoundaryObject(x, y, w, h float64) *resolv.Object {
	return resolv.NewObject(x, y, w, h)
}

// CreateBoundary spawns the boundary singleton. Only one may exist.
func CreateBoundary(w donburi.World, bounds collision.Boundary) *donburi.Entry {
	e := archetypes.Boundary.Spawn(w)

	components.Boundary.SetValue(e, components.BoundaryData{Bounds: bounds})
	components.Contacts.SetValue(e, components.ContactsData{})
	return e
}
