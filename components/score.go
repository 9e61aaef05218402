package components

import "github.com/yohamta/donburi"

// ScoreData tracks the current run (singleton in the game scene).
type ScoreData struct {
	Elapsed float64 // seconds survived this run
	Best    float64 // best survival time on record
	NewBest bool    // this run beat the record
}

var Score = donburi.NewComponentType[ScoreData]()
