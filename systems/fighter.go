package systems

import (
	"github.com/automoto/dojo/assets/animations"
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Fighter is a handle over a fighter entity. It exposes the guarded
// transitions a controller may request; everything else happens in
// UpdateFighter.
type Fighter struct {
	entry *donburi.Entry
}

func NewFighter(e *donburi.Entry) *Fighter {
	return &Fighter{entry: e}
}

func (f *Fighter) Entry() *donburi.Entry { return f.entry }

func (f *Fighter) Slot() int { return components.Fighter.Get(f.entry).Slot }

func (f *Fighter) Health() (current, max int) {
	h := components.Health.Get(f.entry)
	return h.Current, h.Max
}

func (f *Fighter) State() cfg.StateID { return components.State.Get(f.entry).CurrentState }

func (f *Fighter) IsKO() bool { return f.State() == cfg.KO }

func (f *Fighter) Position() (x, y float64) {
	obj := components.Object.Get(f.entry)
	return obj.X, obj.Y
}

func (f *Fighter) Velocity() (vx, vy float64) {
	p := components.Physics.Get(f.entry)
	return p.SpeedX, p.SpeedY
}

func (f *Fighter) OnGround() bool { return components.Physics.Get(f.entry).OnGround }

func (f *Fighter) Hurtbox() gamemath.Rect { return components.Fighter.Get(f.entry).Hurtbox }

// ActiveHitbox returns this tick's attack hitbox, or nil.
func (f *Fighter) ActiveHitbox() *gamemath.Rect {
	hb := components.Attack.Get(f.entry).ActiveHitbox
	if hb == nil {
		return nil
	}
	r := *hb
	return &r
}

func (f *Fighter) IsAttacking() bool { return components.Attack.Get(f.entry).IsAttacking }

func (f *Fighter) HitThisAttack() bool { return components.Attack.Get(f.entry).HitThisAttack }

func (f *Fighter) Animation() animations.State { return components.Animation.Get(f.entry).State }

func (f *Fighter) FacingRight() bool { return components.Animation.Get(f.entry).FacingRight }

// canAct is the shared guard of the grounded player transitions.
func (f *Fighter) canAct() bool {
	return components.Physics.Get(f.entry).OnGround &&
		!components.Attack.Get(f.entry).IsAttacking &&
		!f.IsKO()
}

// Move sets horizontal velocity and starts running.
func (f *Fighter) Move(direction, speed float64) bool {
	if !f.canAct() {
		return false
	}
	components.Physics.Get(f.entry).SpeedX = direction * speed
	components.State.Get(f.entry).Set(cfg.Run)
	return true
}

// StopMoving zeroes horizontal velocity and returns to idle.
func (f *Fighter) StopMoving() bool {
	if !f.canAct() {
		return false
	}
	components.Physics.Get(f.entry).SpeedX = 0
	components.State.Get(f.entry).Set(cfg.Idle)
	return true
}

// Jump leaves the ground with the full jump impulse.
func (f *Fighter) Jump() bool {
	if !f.canAct() {
		return false
	}
	p := components.Physics.Get(f.entry)
	p.SpeedY = -cfg.Physics.JumpSpeed
	p.OnGround = false
	components.State.Get(f.entry).Set(cfg.Jump)
	return true
}

// AirJump is the weaker second jump, available once per airtime.
func (f *Fighter) AirJump() bool {
	p := components.Physics.Get(f.entry)
	if !cfg.Physics.EnableAirJump || p.OnGround || !p.AirJumpAvailable {
		return false
	}
	if components.Attack.Get(f.entry).IsAttacking || f.IsKO() {
		return false
	}
	p.SpeedY = -cfg.Physics.AirJumpSpeed
	p.AirJumpAvailable = false
	components.State.Get(f.entry).Set(cfg.Jump)
	return true
}

// Dash bursts forward along the facing direction for a fixed time.
func (f *Fighter) Dash() bool {
	return f.burst(cfg.Dash, cfg.Physics.DashSpeed, cfg.Physics.DashDuration)
}

// Roll is a slower, longer burst along the facing direction.
func (f *Fighter) Roll() bool {
	return f.burst(cfg.Roll, cfg.Physics.RollSpeed, cfg.Physics.RollDuration)
}

func (f *Fighter) burst(state cfg.StateID, speed, durationMs float64) bool {
	if !f.canAct() {
		return false
	}
	dir := cfg.DirectionLeft
	if f.FacingRight() {
		dir = cfg.DirectionRight
	}
	components.Physics.Get(f.entry).SpeedX = dir * speed
	components.State.Get(f.entry).SetTimed(state, durationMs)
	return true
}

// Attack starts an attack of the given kind. Kinds outside the closed set
// are rejected like any other failed guard.
func (f *Fighter) Attack(kind cfg.AttackKind) bool {
	target, ok := kind.State()
	if !ok {
		return false
	}
	atk := components.Attack.Get(f.entry)
	if atk.IsAttacking || atk.CooldownMs > 0 || !components.Physics.Get(f.entry).OnGround || f.IsKO() {
		return false
	}

	atk.IsAttacking = true
	atk.Kind = kind
	atk.CooldownMs = cfg.Combat.AttackCooldownMs
	atk.HitThisAttack = false
	atk.ActiveHitbox = nil
	atk.Damage = 0

	components.State.Get(f.entry).Set(target)
	components.Animation.Get(f.entry).Restart(target)
	return true
}

// TakeDamage applies damage and reports whether the fighter is now knocked
// out. Health never drops below zero and a knocked out fighter stays KO.
func (f *Fighter) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	h := components.Health.Get(f.entry)
	h.Current -= amount

	state := components.State.Get(f.entry)
	anim := components.Animation.Get(f.entry)
	atk := components.Attack.Get(f.entry)

	if h.Current <= 0 || state.CurrentState == cfg.KO {
		h.Current = 0
		state.Set(cfg.KO)
		anim.SetAnimation(cfg.KO)
		p := components.Physics.Get(f.entry)
		p.SpeedX, p.SpeedY = 0, 0
		atk.Clear()
		return true
	}

	// Hitstun interrupts whatever the fighter was doing, attacks included.
	state.SetTimed(cfg.Hit, cfg.Combat.HitstunMs)
	anim.Restart(cfg.Hit)
	components.Physics.Get(f.entry).SpeedX = 0
	atk.Clear()
	return false
}

// Resize changes the sprite frame size and scale, keeping the fighter's feet
// where they are. Non-positive values keep the current ones.
func (f *Fighter) Resize(stage *Stage, frameW, frameH, scale float64) {
	fd := components.Fighter.Get(f.entry)
	if frameW > 0 && frameH > 0 {
		fd.FrameWidth, fd.FrameHeight = frameW, frameH
	}
	if scale > 0 {
		fd.Scale = scale
	}

	obj := components.Object.Get(f.entry)
	bottom := obj.Y + obj.H
	obj.W, obj.H = fd.Width(), fd.Height()
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.X = gamemath.ClampRange(obj.X, 0, stage.Width-obj.W)
	obj.Y = bottom - obj.H
	updateHurtbox(f.entry)
}

// Reset restores the fighter for a new round without reallocating it.
func (f *Fighter) Reset(stage *Stage) {
	fd := components.Fighter.Get(f.entry)
	obj := components.Object.Get(f.entry)

	h := components.Health.Get(f.entry)
	h.Current = h.Max

	obj.X = gamemath.ClampRange(fd.SpawnX, 0, stage.Width-obj.W)
	obj.Y = stage.GroundY - obj.H

	components.Physics.SetValue(f.entry, components.PhysicsData{
		OnGround:         true,
		AirJumpAvailable: true,
	})
	components.State.SetValue(f.entry, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	anim := components.Animation.Get(f.entry)
	anim.Restart(cfg.Idle)
	anim.FacingRight = fd.Slot == 0

	components.Attack.Get(f.entry).Clear()
	syncProbe(stage, f.entry)
	updateHurtbox(f.entry)
}
