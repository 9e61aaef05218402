package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the run timer, flap counter and best time.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	scoreEntry, ok := components.Score.First(e.World)
	if !ok {
		return
	}
	score := components.Score.Get(scoreEntry)

	face := fonts.Small.Get()
	margin := int(cfg.HUD.Margin)
	lineHeight := 10

	text.Draw(screen, fmt.Sprintf("%.1fs", score.Elapsed),
		face, margin, margin+lineHeight, cfg.HUD.TextColor)

	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		text.Draw(screen, fmt.Sprintf("%d flaps", player.Flaps),
			face, margin, margin+2*lineHeight, cfg.HUD.TextColor)
	}

	if score.Best > 0 {
		best := fmt.Sprintf("best %.1fs", score.Best)
		w := text.BoundString(face, best).Dx()
		text.Draw(screen, best,
			face, cfg.C.Width-margin-w, margin+lineHeight, cfg.HUD.BestColor)
	}
}
