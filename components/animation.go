package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelbeak/flappy/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds a sprite sheet sliced into frames plus the
// running frame cycle.
type AnimationData struct {
	Frames  []*ebiten.Image // pre-sliced sub-images of the sheet
	Current *animations.Animation
}

// FrameImage returns the sub-image for the current animation frame.
func (a *AnimationData) FrameImage() *ebiten.Image {
	if a.Current == nil || len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.Current.Frame()%len(a.Frames)]
}

var Animation = donburi.NewComponentType[AnimationData]()
