package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps a resolv object holding the entity's world-space
// rect. X/Y are the rect's bottom-left corner in Y-up world space.
type ObjectData struct {
	*resolv.Object
}

// CenterY returns the vertical center of the rect, the coordinate the
// simulation rules operate on.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// SetCenterY moves the rect so its vertical center is at y.
func (o *ObjectData) SetCenterY(y float64) {
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
