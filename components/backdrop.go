package components

import (
	"github.com/pixelbeak/flappy/assets"
	"github.com/yohamta/donburi"
)

type BackdropData struct {
	Backdrop *assets.Backdrop
}

var Backdrop = donburi.NewComponentType[BackdropData]()
