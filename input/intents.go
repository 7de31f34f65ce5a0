package input

import (
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
)

// HumanIntents reads a Port the way a player's hands would drive a fighter.
type HumanIntents struct {
	Port Port
}

func NewHumanIntents(p Port) *HumanIntents {
	return &HumanIntents{Port: p}
}

// attackOrder is the priority when several attack buttons land on the same
// tick.
var attackOrder = []struct {
	action cfg.ActionID
	kind   cfg.AttackKind
}{
	{cfg.ActionAttackLight, cfg.AttackKindLight},
	{cfg.ActionAttackMedium, cfg.AttackKindMedium},
	{cfg.ActionAttackHeavy, cfg.AttackKindHeavy},
}

func (h *HumanIntents) Poll() components.Intent {
	var in components.Intent
	if h.Port == nil {
		return in
	}

	switch {
	case h.Port.IsHeld(cfg.ActionLeft):
		in.Move = cfg.DirectionLeft
	case h.Port.IsHeld(cfg.ActionRight):
		in.Move = cfg.DirectionRight
	}

	in.Jump = h.Port.WasPressedThisTick(cfg.ActionJump)
	for _, a := range attackOrder {
		if h.Port.WasPressedThisTick(a.action) {
			kind := a.kind
			in.Attack = &kind
			break
		}
	}
	in.Dash = h.Port.WasPressedThisTick(cfg.ActionDash)
	in.Roll = h.Port.WasPressedThisTick(cfg.ActionRoll)
	return in
}
