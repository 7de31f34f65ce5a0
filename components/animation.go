package components

import (
	"github.com/automoto/dojo/assets/animations"
	"github.com/automoto/dojo/config"
	"github.com/yohamta/donburi"
)

// AnimationData is a fighter's playback cursor plus the archetype's clip
// table. The table is shared between fighters of the same archetype.
type AnimationData struct {
	animations.State
	Clips map[config.StateID]*animations.Clip
}

// Current returns the clip being played, or nil if the archetype lacks it.
func (a *AnimationData) Current() *animations.Clip {
	return a.Clips[a.State.Clip]
}

var Animation = donburi.NewComponentType[AnimationData]()
