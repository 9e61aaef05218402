package systems

import (
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics runs the per-tick simulation for the player: gravity,
// bounds clamp, then position integration, in that fixed order.
func UpdatePhysics(e *ecs.ECS) {
	dt := Delta(e)

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		obj := components.Object.Get(entry)

		player.VelY = gamemath.ApplyGravity(player.VelY, dt, cfg.World.Gravity)

		lower := cfg.World.LowerBound()
		upper := cfg.World.UpperBound()

		y := obj.CenterY()
		wasFalling := player.VelY < 0
		y, player.VelY = gamemath.ClampToBounds(y, player.VelY, lower, upper)
		player.Grounded = wasFalling && y == lower && player.VelY == 0

		y = gamemath.Integrate(y, player.VelY, dt)
		obj.SetCenterY(y)
	})
}
