package gamemath

import (
	"math"
	"testing"
)

func TestApplyGravity(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		dt       float64
		g        float64
		expected float64
	}{
		{name: "at rest", velocity: 0, dt: 0.1, g: -650, expected: -65},
		{name: "already falling", velocity: -65, dt: 0.1, g: -650, expected: -130},
		{name: "rising after flap", velocity: 150, dt: 0.1, g: -650, expected: 85},
		{name: "zero dt", velocity: 42, dt: 0, g: -650, expected: 42},
		{name: "no clamping inside", velocity: -1e6, dt: 1, g: -650, expected: -1000650},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyGravity(tc.velocity, tc.dt, tc.g)
			if got != tc.expected {
				t.Errorf("ApplyGravity(%v, %v, %v) = %v, expected %v",
					tc.velocity, tc.dt, tc.g, got, tc.expected)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	tests := []struct {
		name        string
		pos, vel    float64
		lower       float64
		upper       float64
		expectedPos float64
		expectedVel float64
	}{
		{
			name: "below floor while falling",
			pos:  -20, vel: -5, lower: -12, upper: 212,
			expectedPos: -12, expectedVel: 0,
		},
		{
			name: "above ceiling while rising",
			pos:  250, vel: 30, lower: -12, upper: 212,
			expectedPos: 212, expectedVel: 0,
		},
		{
			name: "in bounds untouched",
			pos:  50, vel: -5, lower: -12, upper: 212,
			expectedPos: 50, expectedVel: -5,
		},
		{
			name: "idempotent at rest on floor",
			pos:  -12, vel: 0, lower: -12, upper: 212,
			expectedPos: -12, expectedVel: 0,
		},
		{
			name: "below floor but moving up is not re-zeroed",
			pos:  -20, vel: 10, lower: -12, upper: 212,
			expectedPos: -20, expectedVel: 10,
		},
		{
			name: "above ceiling but moving down is not re-zeroed",
			pos:  250, vel: -10, lower: -12, upper: 212,
			expectedPos: 250, expectedVel: -10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, vel := ClampToBounds(tc.pos, tc.vel, tc.lower, tc.upper)
			if pos != tc.expectedPos || vel != tc.expectedVel {
				t.Errorf("ClampToBounds(%v, %v, %v, %v) = (%v, %v), expected (%v, %v)",
					tc.pos, tc.vel, tc.lower, tc.upper,
					pos, vel, tc.expectedPos, tc.expectedVel)
			}
		})
	}
}

func TestIntegrateZeroVelocity(t *testing.T) {
	for _, dt := range []float64{0, 0.016, 0.1, 1, 100} {
		if got := Integrate(100, 0, dt); got != 100 {
			t.Errorf("Integrate(100, 0, %v) = %v, expected 100", dt, got)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		t, a, b  float64
		expected float64
	}{
		{0, 0, 144, 0},
		{1, 0, 144, 144},
		{0.5, 0, 200, 100},
		{1.0 / 3.0, 0, 144, 48},
	}
	for _, tc := range tests {
		if got := Lerp(tc.t, tc.a, tc.b); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.t, tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestFullTick(t *testing.T) {
	// One tick starting at rest: gravity then integration, no clamp.
	const (
		g     = -650.0
		dt    = 0.1
		lower = -12.0
		upper = 212.0
	)

	vel := ApplyGravity(0, dt, g)
	if vel != -65 {
		t.Fatalf("velocity after gravity = %v, expected -65", vel)
	}

	pos, vel := ClampToBounds(100, vel, lower, upper)
	if pos != 100 || vel != -65 {
		t.Fatalf("clamp changed in-bounds state: (%v, %v)", pos, vel)
	}

	pos = Integrate(pos, vel, dt)
	if math.Abs(pos-93.5) > 1e-12 {
		t.Fatalf("position after tick = %v, expected 93.5", pos)
	}
}
