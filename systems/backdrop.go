package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelbeak/flappy/components"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackdrop paints the pre-rendered city backdrop. Runs before any
// other renderer on the layer.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Backdrop.First(e.World)
	if !ok {
		return
	}
	backdrop := components.Backdrop.Get(entry)
	if backdrop.Backdrop == nil || backdrop.Backdrop.Image == nil {
		return
	}
	screen.DrawImage(backdrop.Backdrop.Image, nil)
}
