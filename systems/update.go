package systems

import (
	"github.com/automoto/dojo/components"
)

// UpdateFighter runs one tick for a fighter: controller intent, timed state
// countdown, physics, hurtbox, animation, facing and attack. The opponent is
// only read, for facing.
func UpdateFighter(stage *Stage, f, opponent *Fighter, dtMs float64) Action {
	e := f.entry

	var acted Action
	if src := components.Controller.Get(e).Source; src != nil {
		acted = ApplyIntent(f, src.Poll())
	}

	updateTimedState(e, dtMs)
	applyPhysics(stage, e)
	updateAirborneState(e)
	updateHurtbox(e)
	updateAnimation(e, dtMs)
	if opponent != nil {
		updateFacing(e, opponent.entry)
	}
	updateAttack(stage, e, dtMs)
	return acted
}
