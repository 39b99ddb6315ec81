package tags

import "github.com/yohamta/donburi"

var (
	Body     = donburi.NewTag().SetName("Body")
	Fixed    = donburi.NewTag().SetName("Fixed")
	Boundary = donburi.NewTag().SetName("Boundary")
)
