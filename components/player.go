package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	VelY     float64 // vertical velocity in Y-up world units/s
	Flaps    int     // flap count this run
	Grounded bool    // floor clamp engaged this tick
}

var Player = donburi.NewComponentType[PlayerData]()
