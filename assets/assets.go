package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:images
var imageFS embed.FS

// ImageLoader handles loading and caching of embedded images.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]*ebiten.Image)}
}

var imageLoader = NewImageLoader()

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img
	return img
}

// GetImage loads an embedded image by path under images/.
func GetImage(name string) *ebiten.Image {
	return imageLoader.MustLoadImage("images/" + name)
}

// SliceFrames cuts a horizontal sprite sheet into equal-width frames.
func SliceFrames(sheet *ebiten.Image, frameWidth, frameHeight, count int) []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, count)
	for i := 0; i < count; i++ {
		rect := image.Rect(i*frameWidth, 0, (i+1)*frameWidth, frameHeight)
		frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
	}
	return frames
}
