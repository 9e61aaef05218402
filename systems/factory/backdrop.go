package factory

import (
	"github.com/pixelbeak/flappy/archetypes"
	"github.com/pixelbeak/flappy/assets"
	"github.com/pixelbeak/flappy/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBackdrop(e *ecs.ECS) *donburi.Entry {
	backdrop := archetypes.Backdrop.Spawn(e)
	components.Backdrop.SetValue(backdrop, components.BackdropData{
		Backdrop: assets.MustLoadBackdrop("maps/city.tmx"),
	})
	return backdrop
}
