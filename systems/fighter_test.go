package systems

import (
	"testing"

	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeDamageKeepsHealthInBounds(t *testing.T) {
	tests := []struct {
		name    string
		damages []int
		want    int
		ko      bool
	}{
		{"single hit", []int{10}, 90, false},
		{"exact knockout", []int{60, 40}, 0, true},
		{"overkill", []int{150}, 0, true},
		{"negative ignored", []int{-20}, 100, false},
		{"after knockout", []int{100, 5, 30}, 0, true},
		{"zero damage", []int{0}, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newTestFighters(t, 200, 900)
			prev, _ := f[0].Health()
			for _, d := range tt.damages {
				f[0].TakeDamage(d)
				cur, _ := f[0].Health()
				assert.LessOrEqual(t, cur, prev, "health never rises")
				prev = cur
				requireInvariants(t, f[0])
			}
			cur, _ := f[0].Health()
			assert.Equal(t, tt.want, cur)
			assert.Equal(t, tt.ko, f[0].IsKO())
		})
	}
}

func TestKnockoutScenario(t *testing.T) {
	_, f := newTestFighters(t, 200, 900)
	f[0].Move(1, 4)

	require.True(t, f[0].TakeDamage(150))
	cur, _ := f[0].Health()
	assert.Equal(t, 0, cur)
	assert.Equal(t, cfg.KO, f[0].State())
	assert.Equal(t, cfg.KO, f[0].Animation().Clip)
	vx, vy := f[0].Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	assert.False(t, f[0].Attack(cfg.AttackKindLight))
	assert.False(t, f[0].Move(1, 4))
	assert.False(t, f[0].StopMoving())
	assert.False(t, f[0].Jump())
	assert.False(t, f[0].Dash())
	assert.Equal(t, cfg.KO, f[0].State())
	assert.False(t, f[0].IsAttacking())

	// Repeated damage is idempotent.
	assert.True(t, f[0].TakeDamage(10))
	cur, _ = f[0].Health()
	assert.Equal(t, 0, cur)
	assert.Equal(t, cfg.KO, f[0].State())
}

func TestKnockoutIsTerminalAcrossTicks(t *testing.T) {
	stage, f := newTestFighters(t, 200, 900)
	f[0].TakeDamage(100)
	for i := 0; i < 60; i++ {
		step(stage, f)
		require.Equal(t, cfg.KO, f[0].State())
	}
}

func TestAttackGuards(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		_, f := newTestFighters(t, 200, 900)
		assert.False(t, f[0].Attack(cfg.AttackKind(42)))
		assert.Equal(t, cfg.Idle, f[0].State())
		assert.False(t, f[0].IsAttacking())
	})
	t.Run("airborne", func(t *testing.T) {
		_, f := newTestFighters(t, 200, 900)
		require.True(t, f[0].Jump())
		assert.False(t, f[0].Attack(cfg.AttackKindLight))
	})
	t.Run("already attacking", func(t *testing.T) {
		_, f := newTestFighters(t, 200, 900)
		require.True(t, f[0].Attack(cfg.AttackKindLight))
		assert.False(t, f[0].Attack(cfg.AttackKindHeavy))
		assert.Equal(t, cfg.AttackLight, f[0].State())
	})
}

func TestAttackMapsKindToState(t *testing.T) {
	kinds := map[cfg.AttackKind]cfg.StateID{
		cfg.AttackKindLight:  cfg.AttackLight,
		cfg.AttackKindMedium: cfg.AttackMedium,
		cfg.AttackKindHeavy:  cfg.AttackHeavy,
	}
	for kind, want := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			_, f := newTestFighters(t, 200, 900)
			require.True(t, f[0].Attack(kind))
			assert.Equal(t, want, f[0].State())
			assert.Equal(t, want, f[0].Animation().Clip)
			assert.Equal(t, cfg.Combat.AttackCooldownMs, components.Attack.Get(f[0].Entry()).CooldownMs)
		})
	}
}

func TestAttackRestartsSameClip(t *testing.T) {
	stage, f := newTestFighters(t, 200, 900)
	require.True(t, f[0].Attack(cfg.AttackKindLight))
	for f[0].IsAttacking() {
		step(stage, f)
	}
	// The clip is still the finished attack until the next sync.
	require.Equal(t, cfg.AttackLight, f[0].Animation().Clip)

	require.True(t, f[0].Attack(cfg.AttackKindLight))
	anim := f[0].Animation()
	assert.Equal(t, 0, anim.Frame)
	assert.False(t, anim.Finished)
}

func TestAttackEndsAfterCooldown(t *testing.T) {
	stage, f := newTestFighters(t, 200, 900)
	require.True(t, f[0].Attack(cfg.AttackKindLight))

	ticks := 0
	for f[0].IsAttacking() {
		step(stage, f)
		requireInvariants(t, f[0])
		ticks++
		require.Less(t, ticks, 100)
	}
	assert.Equal(t, int(cfg.Combat.AttackCooldownMs/testDt), ticks)
	assert.Equal(t, cfg.Idle, f[0].State())
	assert.Nil(t, f[0].ActiveHitbox())
}

func TestMoveAndStop(t *testing.T) {
	stage, f := newTestFighters(t, 200, 900)

	require.True(t, f[0].Move(1, 4))
	assert.Equal(t, cfg.Run, f[0].State())
	step(stage, f)
	x, _ := f[0].Position()
	assert.Equal(t, 204.0, x)

	require.True(t, f[0].StopMoving())
	assert.Equal(t, cfg.Idle, f[0].State())
	step(stage, f)
	x, _ = f[0].Position()
	assert.Equal(t, 204.0, x)
}

func TestMovementGuardsWhileAttacking(t *testing.T) {
	_, f := newTestFighters(t, 200, 900)
	require.True(t, f[0].Attack(cfg.AttackKindMedium))
	assert.False(t, f[0].Move(-1, 4))
	assert.False(t, f[0].StopMoving())
	assert.False(t, f[0].Jump())
	assert.Equal(t, cfg.AttackMedium, f[0].State())
}

func TestHitInterruptsAttack(t *testing.T) {
	_, f := newTestFighters(t, 200, 900)
	require.True(t, f[0].Attack(cfg.AttackKindHeavy))

	assert.False(t, f[0].TakeDamage(5))
	assert.Equal(t, cfg.Hit, f[0].State())
	assert.Equal(t, cfg.Hit, f[0].Animation().Clip)
	assert.False(t, f[0].IsAttacking())
	assert.False(t, f[0].HitThisAttack())
	requireInvariants(t, f[0])
}

func TestHitstunRecovers(t *testing.T) {
	stage, f := newTestFighters(t, 200, 900)
	f[0].TakeDamage(5)

	n := int(cfg.Combat.HitstunMs / testDt)
	for i := 0; i < n-1; i++ {
		step(stage, f)
		require.Equal(t, cfg.Hit, f[0].State(), "tick %d", i)
	}
	step(stage, f)
	assert.Equal(t, cfg.Idle, f[0].State())
}

func TestResetRestoresFighter(t *testing.T) {
	stage, f := newTestFighters(t, 200, 900)
	f[0].Move(1, 4)
	for i := 0; i < 10; i++ {
		step(stage, f)
	}
	f[0].TakeDamage(120)

	f[0].Reset(stage)
	cur, max := f[0].Health()
	assert.Equal(t, max, cur)
	assert.Equal(t, cfg.Idle, f[0].State())
	assert.Equal(t, cfg.Idle, f[0].Animation().Clip)
	x, y := f[0].Position()
	assert.Equal(t, 200.0, x)
	assert.Equal(t, stage.GroundY-testFrameH, y)
	vx, vy := f[0].Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)
	assert.True(t, f[0].FacingRight())
	assert.False(t, f[0].IsAttacking())
	assert.Equal(t, f[0].Hurtbox().X, x)
}
