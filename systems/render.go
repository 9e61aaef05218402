package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// ScreenY converts a Y-up world coordinate to a screen Y coordinate.
func ScreenY(worldY float64) float64 {
	return cfg.World.ScreenHeight - worldY
}

// DrawAnimated renders entities carrying an Animation component at
// their object rect, flipping world space to screen space.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		frame := anim.FrameImage()
		if frame == nil {
			return
		}
		obj := components.Object.Get(entry)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(obj.X, ScreenY(obj.Y+obj.H))
		screen.DrawImage(frame, drawOp)
	})
}

// DrawSprites renders entities carrying a plain Sprite component.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if sprite.Image == nil || !entry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(entry)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(obj.X, ScreenY(obj.Y+obj.H))
		screen.DrawImage(sprite.Image, drawOp)
	})
}
