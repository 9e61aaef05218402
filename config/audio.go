package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundWing
	SoundHit
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	VolumeSteps   []float64
}

// SoundConfig maps sound IDs to embedded file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
		VolumeSteps:   []float64{0, 0.25, 0.5, 0.75, 1.0},
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundWing:         "audio/sfx/wing.wav",
			SoundHit:          "audio/sfx/hit.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWing: 0.8,
		},
	}
}
