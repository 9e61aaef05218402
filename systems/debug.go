package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/fonts"
	"github.com/pixelbeak/flappy/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay on the debug key edge.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionDebugToggle).JustPressed {
		debug := getOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug renders the collision space rects and a live
// position/velocity readout.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debug := getOrCreateDebug(e)
	if !debug.Enabled {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Debug.BoundsColor
			if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Debug.PlayerColor
			}
			vector.StrokeRect(screen,
				float32(obj.X), float32(ScreenY(obj.Y+obj.H)),
				float32(obj.W), float32(obj.H),
				1, c, false)
		}
	}

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	readout := fmt.Sprintf("y %.1f  vy %.1f", obj.CenterY(), player.VelY)
	text.Draw(screen, readout, fonts.Small.Get(),
		int(cfg.HUD.Margin), cfg.C.Height-int(cfg.HUD.Margin), cfg.Debug.TextColor)
}

func getOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}
