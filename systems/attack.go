package systems

import (
	"github.com/automoto/dojo/assets/animations"
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/shared/gamemath"
	"github.com/yohamta/donburi"
)

// updateAttack ages the current attack and places this tick's hitbox.
// Hitboxes exist only on frames that define one.
func updateAttack(stage *Stage, e *donburi.Entry, dtMs float64) {
	atk := components.Attack.Get(e)
	if atk.IsAttacking {
		atk.CooldownMs -= dtMs
		anim := components.Animation.Get(e)
		if atk.CooldownMs <= 0 || anim.Finished {
			atk.Clear()
			if state := components.State.Get(e); state.CurrentState != cfg.KO {
				state.Set(cfg.Idle)
			}
		} else {
			placeHitbox(e, atk, anim)
		}
	}
	syncProbe(stage, e)
}

func placeHitbox(e *donburi.Entry, atk *components.AttackData, anim *components.AnimationData) {
	def, ok := anim.Current().HitboxAt(anim.Frame)
	if !ok {
		atk.ActiveHitbox = nil
		atk.Damage = 0
		return
	}
	fd := components.Fighter.Get(e)
	obj := components.Object.Get(e)
	hb := HitboxRect(obj.X, obj.Y, fd.FrameWidth, fd.Scale, def, anim.FacingRight)
	atk.ActiveHitbox = &hb
	atk.Damage = def.Damage
}

// HitboxRect converts a frame-local hitbox definition to world space for a
// sprite whose top-left corner is at (spriteLeft, spriteTop). Facing left
// mirrors the box across the unscaled frame width.
func HitboxRect(spriteLeft, spriteTop, originalWidth, scale float64, def animations.HitboxDef, facingRight bool) gamemath.Rect {
	x := spriteLeft + def.X*scale
	if !facingRight {
		x = spriteLeft + (originalWidth-(def.X+def.Width))*scale
	}
	return gamemath.Rect{
		X: x,
		Y: spriteTop + def.Y*scale,
		W: def.Width * scale,
		H: def.Height * scale,
	}
}

// syncProbe keeps the attack probe in the collision space exactly while a
// hitbox is active. The probe is one unit larger than the hitbox so that
// cell lookups cannot miss sub-unit overlaps.
func syncProbe(stage *Stage, e *donburi.Entry) {
	atk := components.Attack.Get(e)
	probe := atk.Probe
	if probe == nil || stage == nil || stage.Space == nil {
		return
	}
	if atk.ActiveHitbox == nil {
		if probe.Space != nil {
			stage.Space.Remove(probe)
		}
		return
	}

	r := atk.ActiveHitbox.Inflate(1)
	probe.X, probe.Y, probe.W, probe.H = r.X, r.Y, r.W, r.H
	if probe.Space == nil {
		stage.Space.Add(probe)
		return
	}
	probe.Update()
}
