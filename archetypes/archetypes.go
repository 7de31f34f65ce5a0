package archetypes

import (
	"github.com/automoto/dojo/components"
	"github.com/automoto/dojo/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Physics,
		components.Health,
		components.State,
		components.Animation,
		components.Attack,
		components.Controller,
	)
	Round = newArchetype(
		components.Round,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
