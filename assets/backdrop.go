package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

//go:embed all:maps
var mapFS embed.FS

// Backdrop is the static city backdrop, pre-rendered from a Tiled map
// at base resolution.
type Backdrop struct {
	Image  *ebiten.Image
	Width  int // pixels
	Height int // pixels
}

// LoadBackdrop parses the TMX at path and flattens its visible tile
// layers into a single image. The map is static so rendering happens
// once at load time.
func LoadBackdrop(path string) (*Backdrop, error) {
	tmx, err := tiled.LoadFile(path, tiled.WithFileSystem(mapFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	backdrop := &Backdrop{
		Width:  tmx.Width * tmx.TileWidth,
		Height: tmx.Height * tmx.TileHeight,
	}
	backdrop.Image = ebiten.NewImage(backdrop.Width, backdrop.Height)

	renderer, err := render.NewRendererWithFileSystem(tmx, mapFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", path, err)
	}

	for i, layer := range tmx.Layers {
		if !layer.Visible {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %q of %s: %w", layer.Name, path, err)
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		if layer.Opacity > 0 && layer.Opacity < 1 {
			op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		}
		backdrop.Image.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return backdrop, nil
}

// MustLoadBackdrop is LoadBackdrop but panics on failure. Backdrops are
// embedded so a failure here is a build defect.
func MustLoadBackdrop(path string) *Backdrop {
	b, err := LoadBackdrop(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load backdrop: %v", err))
	}
	return b
}
