package systems

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelbeak/flappy/assets"
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/fonts"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition
// capability.
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		updateMenuBob(menu, Delta(e))

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		selected := menu.Options[menu.SelectedIndex]

		// Sound row adjusts in place with left/right
		if selected == components.MainMenuSound {
			if GetAction(input, cfg.ActionMenuLeft).JustPressed {
				stepSFXVolume(e, -1)
			}
			if GetAction(input, cfg.ActionMenuRight).JustPressed {
				stepSFXVolume(e, +1)
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch selected {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createGameScene())
			case components.MainMenuSound:
				stepSFXVolume(e, +1)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}
	}
}

func updateMenuBob(menu *components.MenuData, dt float64) {
	if menu.BobTween == nil {
		return
	}
	value, _, seqDone := menu.BobTween.Update(float32(dt))
	menu.BobOffset = float64(value)
	if seqDone {
		menu.BobTween.Reset()
	}
}

func stepSFXVolume(e *ecs.ECS, dir int) {
	steps := cfg.Audio.VolumeSteps
	current := GetSFXVolume()

	// Find the nearest step, then move
	idx := 0
	for i, s := range steps {
		if s <= current {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}

	SetSFXVolume(steps[idx])
	PlaySFX(e, cfg.SoundMenuNavigate)
	SaveCurrentSettings()
}

// DrawMenu renders the main menu.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(cfg.C.Width)

	vector.FillRect(screen, 0, 0,
		float32(width), float32(cfg.C.Height),
		cfg.Menu.BackgroundColor, false)

	// Title and bobbing bird
	titleFont := fonts.Title.Get()
	title := "FLAPPY"
	titleW := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont,
		int((width-float64(titleW))/2), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	bird := assets.GetImage("bird.png")
	birdW := float64(cfg.Player.FrameWidth)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate((width-birdW)/2, cfg.Menu.TitleY+8+menu.BobOffset)
	screen.DrawImage(assets.SliceFrames(bird,
		cfg.Player.FrameWidth, cfg.Player.FrameHeight, cfg.Player.WingFrames)[0], op)

	// Options
	bodyFont := fonts.Body.Get()
	for i, option := range menu.Options {
		label := menuLabel(option)
		color := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			color = cfg.Menu.TextColorSelected
			label = "> " + label
		}
		w := text.BoundString(bodyFont, label).Dx()
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight
		text.Draw(screen, label, bodyFont, int((width-float64(w))/2), int(y), color)
	}
}

func menuLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuSound:
		return fmt.Sprintf("Sound %d%%", int(GetSFXVolume()*100))
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}

// GetOrCreateMenu returns the singleton menu component, creating it
// with the default options and bob tween if needed.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))

		amp := float32(cfg.Menu.BobAmplitude)
		half := cfg.Menu.BobPeriod
		tw := gween.NewSequence()
		tw.Add(
			gween.New(0, amp, half, ease.InOutQuad),
			gween.New(amp, 0, half, ease.InOutQuad),
		)

		components.Menu.SetValue(entry, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuStart,
				components.MainMenuSound,
				components.MainMenuExit,
			},
			BobTween: tw,
		})
	}
	return components.Menu.Get(entry)
}
