package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
}

// SavedRecord represents the best-run data stored on disk
type SavedRecord struct {
	BestTime float64 `json:"bestTime"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and
// record storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "flappy",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Returns nil when nothing is
// saved yet; callers keep defaults in that case.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveCurrentSettings snapshots the live audio settings to disk.
func SaveCurrentSettings() {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(&SavedSettings{SFXVolume: GetSFXVolume()})
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings applies loaded settings at startup.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(saved.SFXVolume)
}

// LoadBestTime returns the recorded best survival time, or 0 when no
// record exists.
func LoadBestTime() float64 {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("record")
	if err != nil || len(data) == 0 {
		return 0
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return 0
	}
	return record.BestTime
}

// SaveBestTime stores a new best survival time.
func SaveBestTime(best float64) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(&SavedRecord{BestTime: best})
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return
	}
	if err := gdataManager.SaveItem("record", data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
	}
}
