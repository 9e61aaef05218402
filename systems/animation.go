package systems

import (
	"github.com/pixelbeak/flappy/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every running frame cycle by one tick.
func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.Current != nil {
			anim.Current.Update()
		}
	})
}
