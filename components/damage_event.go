package components

import (
	"github.com/automoto/dojo/config"
	"github.com/yohamta/donburi"
)

// DamageEventData is a hit detected this tick and not yet applied. It is
// attached to the defender and removed once processed.
type DamageEventData struct {
	Amount       int
	AttackerSlot int
	Kind         config.AttackKind
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
