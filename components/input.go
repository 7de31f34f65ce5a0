package components

import (
	"github.com/automoto/dojo/config"
	"github.com/yohamta/donburi"
)

// Intent is what a fighter's controller wants to do this tick.
type Intent struct {
	Move   float64 // -1 left, 1 right, 0 stop
	Jump   bool
	Dash   bool
	Roll   bool
	Attack *config.AttackKind
}

// IntentSource is polled once per tick for the fighter's next intent.
// Human input and scripted controllers both satisfy it.
type IntentSource interface {
	Poll() Intent
}

// ControllerData binds an intent source to a fighter. A nil source leaves
// the fighter idle.
type ControllerData struct {
	Source IntentSource
}

var Controller = donburi.NewComponentType[ControllerData]()
