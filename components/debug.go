package components

import "github.com/yohamta/donburi"

// DebugData toggles the debug overlay (singleton).
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
