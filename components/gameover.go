package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the state of the game over screen
type GameOverData struct {
	SelectedOption GameOverOption
	FinalTime      float64
	BestTime       float64
	NewBest        bool
	Fade           *gween.Tween // overlay alpha fade-in
	FadeAlpha      float64
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
