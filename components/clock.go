package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the singleton tick clock. Delta is the elapsed seconds
// since the previous tick, never negative, capped by config.
type ClockData struct {
	LastTick time.Time
	Delta    float64
}

var Clock = donburi.NewComponentType[ClockData]()
