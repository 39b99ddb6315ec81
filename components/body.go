package components

import (
	"github.com/automoto/edgebound/body"
	"github.com/yohamta/donburi"
)

type RigidBodyData struct {
	*body.Body
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()
