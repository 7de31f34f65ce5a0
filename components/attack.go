package components

import (
	"github.com/automoto/dojo/config"
	"github.com/automoto/dojo/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// AttackData is the bookkeeping for one attack activation.
type AttackData struct {
	IsAttacking   bool
	Kind          config.AttackKind
	CooldownMs    float64 // Remaining lifetime of the activation
	HitThisAttack bool    // The activation already connected

	// ActiveHitbox is the world-space hitbox for the current tick, nil on
	// frames without a hitbox definition.
	ActiveHitbox *gamemath.Rect
	Damage       int

	// Probe mirrors ActiveHitbox in the collision space while it is set.
	Probe *resolv.Object
}

// Clear ends the activation.
func (a *AttackData) Clear() {
	a.IsAttacking = false
	a.CooldownMs = 0
	a.HitThisAttack = false
	a.ActiveHitbox = nil
	a.Damage = 0
}

var Attack = donburi.NewComponentType[AttackData]()
