package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk shape of a tuning file. Every field is optional;
// absent fields keep the compiled-in defaults.
type Overrides struct {
	Physics *struct {
		Gravity       *float64 `yaml:"gravity"`
		JumpSpeed     *float64 `yaml:"jump_speed"`
		AirJumpSpeed  *float64 `yaml:"air_jump_speed"`
		DashSpeed     *float64 `yaml:"dash_speed"`
		RollSpeed     *float64 `yaml:"roll_speed"`
		MoveSpeed     *float64 `yaml:"move_speed"`
		DashDuration  *float64 `yaml:"dash_duration_ms"`
		RollDuration  *float64 `yaml:"roll_duration_ms"`
		EnableAirJump *bool    `yaml:"enable_air_jump"`
	} `yaml:"physics"`
	Fighter *struct {
		MaxHealth *int `yaml:"max_health"`
	} `yaml:"fighter"`
	Combat *struct {
		AttackCooldownMs       *float64 `yaml:"attack_cooldown_ms"`
		HitstunMs              *float64 `yaml:"hitstun_ms"`
		LockFacingDuringAttack *bool    `yaml:"lock_facing_during_attack"`
	} `yaml:"combat"`
	Round *struct {
		TimerSeconds   *float64 `yaml:"timer_seconds"`
		ResetDelayMs   *float64 `yaml:"reset_delay_ms"`
		RoundsToWin    *int     `yaml:"rounds_to_win"`
		DoubleKOIsDraw *bool    `yaml:"double_ko_is_draw"`
	} `yaml:"round"`
}

// LoadOverrides reads a YAML tuning file and applies it over the globals.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides decodes YAML data and applies it over the globals. The
// file is validated as a whole; on error no global is changed.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("decode overrides: %w", err)
	}

	physics, fighter, combat, round := Physics, Fighter, Combat, Round
	var errs []error
	set := func(name string, dst *float64, v *float64) {
		if v == nil {
			return
		}
		if *v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, *v))
			return
		}
		*dst = *v
	}

	if p := o.Physics; p != nil {
		set("physics.gravity", &physics.Gravity, p.Gravity)
		set("physics.jump_speed", &physics.JumpSpeed, p.JumpSpeed)
		set("physics.air_jump_speed", &physics.AirJumpSpeed, p.AirJumpSpeed)
		set("physics.dash_speed", &physics.DashSpeed, p.DashSpeed)
		set("physics.roll_speed", &physics.RollSpeed, p.RollSpeed)
		set("physics.move_speed", &physics.MoveSpeed, p.MoveSpeed)
		set("physics.dash_duration_ms", &physics.DashDuration, p.DashDuration)
		set("physics.roll_duration_ms", &physics.RollDuration, p.RollDuration)
		if p.EnableAirJump != nil {
			physics.EnableAirJump = *p.EnableAirJump
		}
	}
	if f := o.Fighter; f != nil && f.MaxHealth != nil {
		if *f.MaxHealth <= 0 {
			errs = append(errs, fmt.Errorf("fighter.max_health must be positive, got %d", *f.MaxHealth))
		} else {
			fighter.MaxHealth = *f.MaxHealth
		}
	}
	if c := o.Combat; c != nil {
		set("combat.attack_cooldown_ms", &combat.AttackCooldownMs, c.AttackCooldownMs)
		set("combat.hitstun_ms", &combat.HitstunMs, c.HitstunMs)
		if c.LockFacingDuringAttack != nil {
			combat.LockFacingDuringAttack = *c.LockFacingDuringAttack
		}
	}
	if r := o.Round; r != nil {
		set("round.timer_seconds", &round.TimerSeconds, r.TimerSeconds)
		set("round.reset_delay_ms", &round.ResetDelayMs, r.ResetDelayMs)
		if r.RoundsToWin != nil {
			if *r.RoundsToWin <= 0 {
				errs = append(errs, fmt.Errorf("round.rounds_to_win must be positive, got %d", *r.RoundsToWin))
			} else {
				round.RoundsToWin = *r.RoundsToWin
			}
		}
		if r.DoubleKOIsDraw != nil {
			round.DoubleKOIsDraw = *r.DoubleKOIsDraw
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid overrides: %w", err)
	}
	Physics, Fighter, Combat, Round = physics, fighter, combat, round
	return nil
}
