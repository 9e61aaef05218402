package systems

import (
	"testing"

	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
)

func TestGetActionEdges(t *testing.T) {
	tests := []struct {
		name     string
		prev     bool
		curr     bool
		expected components.ActionState
	}{
		{
			name: "press edge",
			prev: false, curr: true,
			expected: components.ActionState{Pressed: true, JustPressed: true},
		},
		{
			name: "held",
			prev: true, curr: true,
			expected: components.ActionState{Pressed: true},
		},
		{
			name: "release edge",
			prev: true, curr: false,
			expected: components.ActionState{JustReleased: true},
		},
		{
			name: "idle",
			prev: false, curr: false,
			expected: components.ActionState{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := &components.InputData{}
			input.Previous[cfg.ActionFlapPrimary] = tc.prev
			input.Current[cfg.ActionFlapPrimary] = tc.curr

			got := GetAction(input, cfg.ActionFlapPrimary)
			if got != tc.expected {
				t.Errorf("GetAction() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestFlapEdgeFiresOncePerPress(t *testing.T) {
	input := &components.InputData{}

	// Tick 1: button goes down
	input.Current[cfg.ActionFlapPrimary] = true
	if !FlapEdge(input) {
		t.Fatal("expected flap edge on press tick")
	}

	// Ticks 2 and 3: button stays held, no new edges
	for tick := 2; tick <= 3; tick++ {
		input.Previous = input.Current
		if FlapEdge(input) {
			t.Fatalf("tick %d: flap edge fired while button held", tick)
		}
	}
}

func TestFlapEdgeSecondButtonWhileFirstHeld(t *testing.T) {
	input := &components.InputData{}

	// Primary held since last tick, secondary pressed this tick
	input.Previous[cfg.ActionFlapPrimary] = true
	input.Current[cfg.ActionFlapPrimary] = true
	input.Current[cfg.ActionFlapSecondary] = true

	if !FlapEdge(input) {
		t.Fatal("pressing the second button while the first is held must flap")
	}
}
