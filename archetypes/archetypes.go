package archetypes

import (
	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Wind,
	)
	Bin = newArchetype(
		tags.Bin,
		components.Bin,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Physics,
		components.Object,
		components.Trail,
	)
	Space = newArchetype(
		components.Space,
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
