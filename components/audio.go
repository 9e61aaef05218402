package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component).
// PendingSFX is the fire-and-forget queue: systems append sound IDs and
// the audio system drains the queue once per tick.
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
