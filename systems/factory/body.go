package factory

import (
	"github.com/automoto/edgebound/archetypes"
	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/components"
	"github.com/yohamta/donburi"
)

// CreateBody spawns an entity for b. Fixed bodies get the Fixed tag.
func CreateBody(w donburi.World, b *body.Body) *donburi.Entry {
	var e *donburi.Entry
	if b.Fixed {
		e = archetypes.FixedBody.Spawn(w)
	} else {
		e = archetypes.Body.Spawn(w)
	}

	b.RefreshAABB()
	components.RigidBody.SetValue(e, components.RigidBodyData{Body: b})
	return e
}
