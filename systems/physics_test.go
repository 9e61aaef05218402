package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi/ecs"

	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
)

func setTestDelta(e *ecs.ECS, dt float64) {
	entry := e.World.Entry(e.World.Create(components.Clock))
	clock := components.Clock.Get(entry)
	clock.Delta = dt
}

func TestUpdatePhysicsFreeFallTick(t *testing.T) {
	e := newTestECS(false, false)
	setTestDelta(e, 0.1)
	entry := spawnTestPlayer(e, 100, 0)

	UpdatePhysics(e)

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	if player.VelY != -65 {
		t.Errorf("VelY = %v, expected -65", player.VelY)
	}
	if math.Abs(obj.CenterY()-93.5) > 1e-12 {
		t.Errorf("CenterY = %v, expected 93.5", obj.CenterY())
	}
	if player.Grounded {
		t.Error("player must not be grounded mid-air")
	}
}

func TestUpdatePhysicsFlapThenGravitySameTick(t *testing.T) {
	e := newTestECS(true, false)
	setTestDelta(e, 0.1)
	entry := spawnTestPlayer(e, 100, -40)

	UpdatePlayer(e)
	UpdatePhysics(e)

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	// Impulse to 150, then gravity over 0.1s pulls it to 85.
	if player.VelY != 85 {
		t.Errorf("VelY = %v, expected 85", player.VelY)
	}
	if math.Abs(obj.CenterY()-108.5) > 1e-12 {
		t.Errorf("CenterY = %v, expected 108.5", obj.CenterY())
	}
}

func TestUpdatePhysicsFloorContact(t *testing.T) {
	e := newTestECS(false, false)
	setTestDelta(e, 0.1)
	entry := spawnTestPlayer(e, cfg.World.LowerBound()-8, -5)

	UpdatePhysics(e)

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	if player.VelY != 0 {
		t.Errorf("VelY = %v, floor contact must zero the velocity", player.VelY)
	}
	if obj.CenterY() != cfg.World.LowerBound() {
		t.Errorf("CenterY = %v, expected the lower bound %v", obj.CenterY(), cfg.World.LowerBound())
	}
	if !player.Grounded {
		t.Error("floor contact while falling must set Grounded")
	}
}

func TestUpdatePhysicsCeilingDoesNotGround(t *testing.T) {
	e := newTestECS(false, false)
	setTestDelta(e, 0.01)
	entry := spawnTestPlayer(e, cfg.World.UpperBound()+5, 30)

	UpdatePhysics(e)

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	if player.VelY != 0 {
		t.Errorf("VelY = %v, ceiling contact must zero the velocity", player.VelY)
	}
	if obj.CenterY() != cfg.World.UpperBound() {
		t.Errorf("CenterY = %v, expected the upper bound %v", obj.CenterY(), cfg.World.UpperBound())
	}
	if player.Grounded {
		t.Error("ceiling contact must not set Grounded")
	}
}

func TestUpdatePhysicsFloorResettle(t *testing.T) {
	e := newTestECS(false, false)
	setTestDelta(e, 0.1)
	entry := spawnTestPlayer(e, cfg.World.LowerBound(), 0)

	// A resting player accrues gravity and dips below the bound for one
	// tick; the next tick clamps it back and re-engages Grounded.
	UpdatePhysics(e)
	if components.Player.Get(entry).Grounded {
		t.Error("dip tick must not report Grounded")
	}

	UpdatePhysics(e)

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	if player.VelY != 0 || obj.CenterY() != cfg.World.LowerBound() {
		t.Errorf("player did not resettle: VelY=%v CenterY=%v", player.VelY, obj.CenterY())
	}
	if !player.Grounded {
		t.Error("resettling on the floor must set Grounded")
	}
}
