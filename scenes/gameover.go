package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/systems"
	"github.com/pixelbeak/flappy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	finalTime float64
	bestTime  float64
	newBest   bool
}

// NewGameOverScene creates a new game over scene carrying the results
// of the run that just ended.
func NewGameOverScene(sc SceneChanger, finalTime, bestTime float64, newBest bool) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		finalTime:    finalTime,
		bestTime:     bestTime,
		newBest:      newBest,
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createGameScene := func() interface{} {
		return NewGameScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateClock)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createGameScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	factory.CreateBackdrop(gs.ecs)
	systems.InitGameOver(gs.ecs, gs.finalTime, gs.bestTime, gs.newBest)

	// The thud that ended the run plays over this screen
	systems.PlaySFX(gs.ecs, cfg.SoundHit)
}
