package factory

import (
	"github.com/pixelbeak/flappy/archetypes"
	"github.com/pixelbeak/flappy/assets"
	"github.com/pixelbeak/flappy/assets/animations"
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/shared/gamemath"
	"github.com/pixelbeak/flappy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the single player entity at the configured spawn
// point. Exactly one player exists per run.
func CreatePlayer(e *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	w := float64(cfg.Player.FrameWidth)
	h := float64(cfg.Player.FrameHeight)
	spawnX := gamemath.Lerp(cfg.Player.SpawnFracX, 0, float64(cfg.C.Width))
	spawnY := gamemath.Lerp(cfg.Player.SpawnFracY, 0, cfg.World.ScreenHeight)

	obj := resolv.NewObject(spawnX-w/2, spawnY-h/2, w, h)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		VelY: 0,
	})

	sheet := assets.GetImage("bird.png")
	components.Animation.SetValue(player, components.AnimationData{
		Frames: assets.SliceFrames(sheet,
			cfg.Player.FrameWidth, cfg.Player.FrameHeight, cfg.Player.WingFrames),
		Current: animations.NewAnimation(0, cfg.Player.WingFrames-1, cfg.Player.WingFrameTPS),
	})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
	}

	return player
}
