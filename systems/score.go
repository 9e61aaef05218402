package systems

import (
	"github.com/pixelbeak/flappy/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore accumulates survival time while the run lasts.
func UpdateScore(e *ecs.ECS) {
	entry, ok := components.Score.First(e.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	score.Elapsed += Delta(e)
	if score.Elapsed > score.Best {
		score.Best = score.Elapsed
		score.NewBest = true
	}
}
