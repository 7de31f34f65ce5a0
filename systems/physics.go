package systems

import (
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/shared/gamemath"
	"github.com/yohamta/donburi"
)

// applyPhysics integrates gravity and velocity, keeps the fighter inside the
// arena and resolves contact with the ground line.
func applyPhysics(stage *Stage, e *donburi.Entry) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	physics.SpeedY += cfg.Physics.Gravity
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	obj.X = gamemath.ClampRange(obj.X, 0, stage.Width-obj.W)

	y, grounded := gamemath.SnapToGround(obj.Y, obj.H, stage.GroundY)
	if !grounded {
		physics.OnGround = false
		return
	}

	obj.Y = y
	physics.SpeedY = 0
	if physics.OnGround {
		return
	}

	// Landing
	physics.OnGround = true
	physics.AirJumpAvailable = true
	state := components.State.Get(e)
	if !components.Attack.Get(e).IsAttacking && state.CurrentState != cfg.KO {
		state.Set(cfg.Idle)
	}
}

// updateAirborneState keeps free movement states in step with vertical
// velocity while off the ground.
func updateAirborneState(e *donburi.Entry) {
	if components.Physics.Get(e).OnGround {
		return
	}
	state := components.State.Get(e)
	switch state.CurrentState {
	case cfg.Idle, cfg.Run, cfg.Jump, cfg.Fall:
	default:
		return
	}
	if components.Physics.Get(e).SpeedY < 0 {
		state.Set(cfg.Jump)
	} else {
		state.Set(cfg.Fall)
	}
}

// updateHurtbox copies the body position into the hurtbox and refreshes the
// body's cells in the collision space.
func updateHurtbox(e *donburi.Entry) {
	obj := components.Object.Get(e)
	fd := components.Fighter.Get(e)
	fd.Hurtbox = gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	if obj.Space != nil {
		obj.Update()
	}
}
