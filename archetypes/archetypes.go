package archetypes

import (
	"github.com/pixelbeak/flappy/components"
	cfg "github.com/pixelbeak/flappy/config"
	"github.com/pixelbeak/flappy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Sprite,
		components.Animation,
	)
	Bounds = newArchetype(
		tags.Bounds,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Backdrop = newArchetype(
		components.Backdrop,
	)
	Score = newArchetype(
		components.Score,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
