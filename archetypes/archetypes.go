package archetypes

import (
	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Input = newArchetype(
		tags.Input,
		components.Input,
		components.BindingsIO,
		components.Pause,
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
