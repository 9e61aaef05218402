package systems

import (
	"time"

	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the singleton tick clock. Must run first each
// tick; every dt-dependent system reads Delta from it.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	now := time.Now()

	if clock.LastTick.IsZero() {
		clock.Delta = 0
	} else {
		clock.Delta = now.Sub(clock.LastTick).Seconds()
		if clock.Delta < 0 {
			clock.Delta = 0
		}
		if clock.Delta > cfg.World.MaxDelta {
			// A long stall (window drag, suspend) must not turn into a
			// huge integration step.
			clock.Delta = cfg.World.MaxDelta
		}
	}
	clock.LastTick = now
}

// Delta returns the elapsed seconds for the current tick.
func Delta(e *ecs.ECS) float64 {
	return getOrCreateClock(e).Delta
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
