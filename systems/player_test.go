package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
)

// newTestECS builds a bare world with an input singleton whose flap
// button state can be driven directly.
func newTestECS(flapHeldNow, flapHeldBefore bool) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	entry := e.World.Entry(e.World.Create(components.Input))
	input := components.Input.Get(entry)
	input.Current[cfg.ActionFlapPrimary] = flapHeldNow
	input.Previous[cfg.ActionFlapPrimary] = flapHeldBefore

	return e
}

func spawnTestPlayer(e *ecs.ECS, centerY, velY float64) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Player, components.Object))

	components.Player.SetValue(entry, components.PlayerData{VelY: velY})

	w := float64(cfg.Player.FrameWidth)
	h := float64(cfg.Player.FrameHeight)
	obj := &components.ObjectData{Object: resolv.NewObject(0, centerY-h/2, w, h)}
	components.Object.Set(entry, obj)

	return entry
}

func queuedSFX(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry).PendingSFX
}

func TestUpdatePlayerFlapImpulse(t *testing.T) {
	e := newTestECS(true, false)
	entry := spawnTestPlayer(e, 100, -40)

	UpdatePlayer(e)

	player := components.Player.Get(entry)
	if player.VelY != cfg.World.JumpVelocity {
		t.Errorf("VelY = %v, expected the jump impulse %v", player.VelY, cfg.World.JumpVelocity)
	}
	if player.Flaps != 1 {
		t.Errorf("Flaps = %d, expected 1", player.Flaps)
	}
	if sfx := queuedSFX(e); len(sfx) != 1 || sfx[0] != cfg.SoundWing {
		t.Errorf("queued SFX = %v, expected exactly one wing sound", sfx)
	}
}

func TestUpdatePlayerHeldButtonDoesNotRefire(t *testing.T) {
	e := newTestECS(true, true)
	entry := spawnTestPlayer(e, 100, -40)

	UpdatePlayer(e)

	player := components.Player.Get(entry)
	if player.VelY != -40 {
		t.Errorf("VelY = %v, held button must not re-apply the impulse", player.VelY)
	}
	if player.Flaps != 0 {
		t.Errorf("Flaps = %d, expected 0", player.Flaps)
	}
	if sfx := queuedSFX(e); len(sfx) != 0 {
		t.Errorf("queued SFX = %v, expected none", sfx)
	}
}

func TestUpdatePlayerWithoutPlayerEntity(t *testing.T) {
	e := newTestECS(true, false)

	// Must not panic and must not queue audio for a missing player.
	UpdatePlayer(e)

	if sfx := queuedSFX(e); len(sfx) != 0 {
		t.Errorf("queued SFX = %v, expected none without a player", sfx)
	}
}
