package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/fonts"
	"github.com/pixelbeak/flappy/scenes"
	"github.com/pixelbeak/flappy/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 16)
	fonts.LoadFontWithSize(fonts.Body, goregular.TTF, 10)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 8)

	g := &Game{}
	g.scene = scenes.NewMenuScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width*cfg.C.Scale, cfg.C.Height*cfg.C.Scale)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
