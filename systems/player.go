package systems

import (
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the flap impulse. Runs after UpdateInput and
// before UpdatePhysics: the impulse replaces the velocity outright and
// gravity then acts on it within the same tick.
func UpdatePlayer(e *ecs.ECS) {
	input := getOrCreateInput(e)
	flap := FlapEdge(input)

	// The edge signal is computed regardless; without a player entity
	// it simply has no effect.
	if !flap {
		return
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.VelY = cfg.World.JumpVelocity
		player.Flaps++

		if cfg.Player.FlapResetWing && entry.HasComponent(components.Animation) {
			anim := components.Animation.Get(entry)
			if anim.Current != nil {
				anim.Current.Restart()
			}
		}

		PlaySFX(e, cfg.SoundWing)
	})
}
