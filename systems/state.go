package systems

import (
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/yohamta/donburi"
)

// updateTimedState counts down dash, roll and hitstun. The countdown lives
// on the state it was started with, so a state entered since then is never
// reverted.
func updateTimedState(e *donburi.Entry, dtMs float64) {
	state := components.State.Get(e)
	if state.Remaining <= 0 {
		return
	}
	state.Remaining -= dtMs
	if state.Remaining > 0 {
		return
	}

	physics := components.Physics.Get(e)
	switch state.CurrentState {
	case cfg.Dash, cfg.Roll:
		physics.SpeedX = 0
		state.Set(cfg.Idle)
	case cfg.Hit:
		if physics.OnGround {
			state.Set(cfg.Idle)
		} else {
			state.Set(cfg.Fall)
		}
	default:
		state.Remaining = 0
	}
}
