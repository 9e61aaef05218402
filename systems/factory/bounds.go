package factory

import (
	"github.com/pixelbeak/flappy/archetypes"
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const boundsBandHeight = 8.0

// CreateBounds spawns the floor and ceiling band entities. They mark
// the clamp interval in the collision space; the clamp itself is
// arithmetic, so these exist for the debug overlay and future contact
// queries.
func CreateBounds(e *ecs.ECS) (floor, ceiling *donburi.Entry) {
	width := float64(cfg.C.Width)
	floor = createBand(e, cfg.World.LowerBound()-boundsBandHeight, width, tags.ResolvFloor)
	ceiling = createBand(e, cfg.World.UpperBound(), width, tags.ResolvCeiling)
	return floor, ceiling
}

func createBand(e *ecs.ECS, y, width float64, tag string) *donburi.Entry {
	band := archetypes.Bounds.Spawn(e)
	obj := resolv.NewObject(0, y, width, boundsBandHeight)
	obj.AddTags(tag)
	obj.Data = band
	components.Object.SetValue(band, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
	}
	return band
}
