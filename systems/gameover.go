package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/fonts"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene
// transition capability.
func NewUpdateGameOver(sceneChanger SceneChanger, createGameScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := getOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if gameOver.Fade != nil {
			value, finished := gameOver.Fade.Update(float32(Delta(e)))
			gameOver.FadeAlpha = float64(value)
			if finished {
				gameOver.Fade = nil
			}
		}

		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createGameScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// InitGameOver stores the final run results on the game over screen
// state and arms the fade-in.
func InitGameOver(e *ecs.ECS, finalTime, bestTime float64, newBest bool) {
	gameOver := getOrCreateGameOver(e)
	gameOver.FinalTime = finalTime
	gameOver.BestTime = bestTime
	gameOver.NewBest = newBest
	gameOver.Fade = gween.New(0, float32(cfg.GameOver.OverlayColor.A), cfg.GameOver.FadeDuration, ease.OutQuad)
	gameOver.FadeAlpha = 0
}

// DrawGameOver renders the game over overlay and menu.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := getOrCreateGameOver(e)

	width := float64(cfg.C.Width)

	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(gameOver.FadeAlpha)
	vector.FillRect(screen, 0, 0,
		float32(width), float32(cfg.C.Height), overlay, false)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleW := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont,
		int((width-float64(titleW))/2), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	bodyFont := fonts.Body.Get()
	drawCentered(screen, bodyFont,
		fmt.Sprintf("%.1fs", gameOver.FinalTime),
		cfg.GameOver.ScoreY, cfg.GameOver.TextColorNormal)

	bestLabel := fmt.Sprintf("best %.1fs", gameOver.BestTime)
	if gameOver.NewBest {
		bestLabel = "new best!"
	}
	drawCentered(screen, fonts.Small.Get(), bestLabel,
		cfg.GameOver.ScoreY+12, cfg.HUD.BestColor)

	options := []string{"Retry", "Menu"}
	for i, label := range options {
		c := cfg.GameOver.TextColorNormal
		if i == int(gameOver.SelectedOption) {
			c = cfg.GameOver.TextColorSelected
			label = "> " + label
		}
		y := cfg.GameOver.MenuStartY + float64(i)*cfg.GameOver.MenuItemHeight
		drawCentered(screen, bodyFont, label, y, c)
	}
}

func drawCentered(screen *ebiten.Image, face font.Face, label string, y float64, c color.RGBA) {
	w := text.BoundString(face, label).Dx()
	x := (cfg.C.Width - w) / 2
	text.Draw(screen, label, face, x, int(y), c)
}

func getOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}
