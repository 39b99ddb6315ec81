package archetypes

import (
	"github.com/automoto/edgebound/components"
	"github.com/automoto/edgebound/tags"
	"github.com/yohamta/donburi"
)

var (
	Body = newArchetype(
		tags.Body,
		components.RigidBody,
	)
	FixedBody = newArchetype(
		tags.Body,
		tags.Fixed,
		components.RigidBody,
	)
	Boundary = newArchetype(
		tags.Boundary,
		components.Boundary,
		components.Contacts,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
