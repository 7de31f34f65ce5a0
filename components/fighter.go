package components

import (
	"github.com/automoto/dojo/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FighterData holds a fighter's identity and the archetype's static
// dimensions. Position lives on the fighter's Object.
type FighterData struct {
	Slot      int // 0 for player one, 1 for player two
	Archetype string

	// Unscaled sprite frame size, used by hitbox mirroring.
	FrameWidth  float64
	FrameHeight float64
	Scale       float64

	SpawnX  float64
	Hurtbox gamemath.Rect
}

// Width returns the displayed sprite width.
func (f *FighterData) Width() float64 {
	return f.FrameWidth * f.Scale
}

// Height returns the displayed sprite height.
func (f *FighterData) Height() float64 {
	return f.FrameHeight * f.Scale
}

var Fighter = donburi.NewComponentType[FighterData]()
