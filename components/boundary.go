package components

import (
	"github.com/automoto/edgebound/collision"
	"github.com/yohamta/donburi"
)

// BoundaryData is a singleton describing the world boundary
type BoundaryData struct {
	Bounds collision.Boundary
}

var Boundary = donburi.NewComponentType[BoundaryData]()

// ContactsData is a singleton holding the last step's boundary collisions
type ContactsData struct {
	Records []collision.Record
	Step    int // Step the records belong to
	Total   int // Records seen since the world started
}

var Contacts = donburi.NewComponentType[ContactsData]()
