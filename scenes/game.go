package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelbeak/flappy/archetypes"
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/systems"
	"github.com/pixelbeak/flappy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one flight.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a new game scene
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if final, best, newBest, dead := gs.checkRunOver(); dead {
		if newBest {
			systems.SaveBestTime(best)
		}
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, final, best, newBest))
	}
}

// checkRunOver reports whether the run ended this tick: the floor
// clamp engaged while the player was falling.
func (gs *GameScene) checkRunOver() (final, best float64, newBest, dead bool) {
	if gs.ecs == nil {
		return 0, 0, false, false
	}

	playerEntry, ok := components.Player.First(gs.ecs.World)
	if !ok {
		return 0, 0, false, false
	}
	if !components.Player.Get(playerEntry).Grounded {
		return 0, 0, false, false
	}

	if scoreEntry, ok := components.Score.First(gs.ecs.World); ok {
		score := components.Score.Get(scoreEntry)
		final, best, newBest = score.Elapsed, score.Best, score.NewBest
	}
	return final, best, newBest, true
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// Preload SFX to avoid decode lag on the first flap
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Audio runs first; the queue drained here was filled last tick
	e.AddSystem(systems.UpdateAudio)

	// Fixed per-tick order: clock, input, flap, physics, then bookkeeping
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateScore)
	e.AddSystem(systems.UpdateAnimations)

	e.AddRenderer(cfg.Default, systems.DrawBackdrop)
	e.AddRenderer(cfg.Default, systems.DrawAnimated)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = e

	// World-space extent includes the clamp margins above and below
	// the visible screen.
	spaceHeight := int(cfg.World.UpperBound()-cfg.World.LowerBound()) + 2*8
	factory.CreateSpace(gs.ecs, cfg.C.Width, spaceHeight, 16, 16)
	factory.CreateBounds(gs.ecs)
	factory.CreateBackdrop(gs.ecs)
	factory.CreatePlayer(gs.ecs)

	score := archetypes.Score.Spawn(gs.ecs)
	components.Score.SetValue(score, components.ScoreData{
		Best: systems.LoadBestTime(),
	})
}
