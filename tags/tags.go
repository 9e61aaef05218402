package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Bounds = donburi.NewTag().SetName("Bounds")
)

// Resolv tags for objects in the collision space
const (
	ResolvPlayer  = "Player"
	ResolvFloor   = "floor"
	ResolvCeiling = "ceiling"
)
