package systems

import (
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/shared/gamemath"
)

// Action is a bit set of the transitions an intent actually performed.
type Action uint8

const (
	ActedJump Action = 1 << iota
	ActedAirJump
	ActedDash
	ActedRoll
	ActedAttack
)

func (a Action) Has(flag Action) bool { return a&flag != 0 }

// ApplyIntent turns a controller's intent into fighter transitions. A
// fighter that is attacking, in hitstun or knocked out ignores its
// controller and stands still; dash and roll keep their own velocity.
func ApplyIntent(f *Fighter, in components.Intent) Action {
	state := f.State()
	physics := components.Physics.Get(f.entry)
	if f.IsAttacking() || state == cfg.Hit || state == cfg.KO {
		physics.SpeedX = 0
		return 0
	}

	if state != cfg.Dash && state != cfg.Roll {
		if dir := gamemath.Sign(in.Move); dir != 0 {
			f.Move(dir, cfg.Physics.MoveSpeed)
		} else if physics.OnGround {
			f.StopMoving()
		}
	}

	var acted Action
	if in.Jump {
		if physics.OnGround {
			if f.Jump() {
				acted |= ActedJump
			}
		} else if f.AirJump() {
			acted |= ActedAirJump
		}
	}
	if in.Attack != nil && f.Attack(*in.Attack) {
		acted |= ActedAttack
	}
	if in.Dash && f.Dash() {
		acted |= ActedDash
	}
	if in.Roll && f.Roll() {
		acted |= ActedRoll
	}
	return acted
}
