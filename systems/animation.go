package systems

import (
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/yohamta/donburi"
)

// updateAnimation advances the playback cursor and then requests the clip
// matching the current action state.
func updateAnimation(e *donburi.Entry, dtMs float64) {
	anim := components.Animation.Get(e)
	anim.Advance(anim.Current(), dtMs)
	anim.SetAnimation(components.State.Get(e).CurrentState)
}

// updateFacing turns the fighter toward its opponent. Facing is held while an
// attack is active when LockFacingDuringAttack is set.
func updateFacing(e, opponent *donburi.Entry) {
	if opponent == nil {
		return
	}
	if cfg.Combat.LockFacingDuringAttack && components.Attack.Get(e).IsAttacking {
		return
	}
	self := components.Object.Get(e)
	other := components.Object.Get(opponent)
	components.Animation.Get(e).FacingRight = self.X < other.X
}
