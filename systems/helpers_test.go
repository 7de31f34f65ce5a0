package systems

import (
	"testing"

	"github.com/automoto/dojo/assets/animations"
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// 20ms ticks keep frame and cooldown arithmetic exact.
const testDt = 20.0

const (
	testFrameW = 100.0
	testFrameH = 200.0
)

func testClips() map[cfg.StateID]*animations.Clip {
	attack := func(damage int) *animations.Clip {
		return &animations.Clip{
			Frames:        []string{"a0", "a1", "a2"},
			FrameDuration: 100,
			Hitboxes: []animations.HitboxDef{
				{Frame: 2, X: 60, Y: 20, Width: 80, Height: 40, Damage: damage},
			},
		}
	}
	return map[cfg.StateID]*animations.Clip{
		cfg.Idle:         {Frames: []string{"i0", "i1"}, FrameDuration: 100, Loop: true},
		cfg.Run:          {Frames: []string{"r0", "r1", "r2"}, FrameDuration: 80, Loop: true},
		cfg.Jump:         {Frames: []string{"j0"}, FrameDuration: 100},
		cfg.Fall:         {Frames: []string{"f0"}, FrameDuration: 100},
		cfg.AttackLight:  attack(10),
		cfg.AttackMedium: attack(14),
		cfg.AttackHeavy:  attack(20),
		cfg.Hit:          {Frames: []string{"h0"}, FrameDuration: 100},
		cfg.KO:           {Frames: []string{"k0", "k1"}, FrameDuration: 150},
	}
}

func newTestStage(width float64) (donburi.World, *Stage) {
	w := donburi.NewWorld()
	spaceEntry := factory.CreateSpace(w, int(width), 720, 32, 32)
	return w, &Stage{
		Width:   width,
		Height:  720,
		GroundY: 620,
		Space:   components.Space.Get(spaceEntry),
	}
}

// newTestFighters puts two fighters on the ground at x1 and x2. Scale is 1 so
// hitbox offsets read directly as world units.
func newTestFighters(t *testing.T, x1, x2 float64) (*Stage, [2]*Fighter) {
	t.Helper()
	return newTestFightersWith(t, 1280, testClips(), x1, x2)
}

func newTestFightersWith(t *testing.T, width float64, clips map[cfg.StateID]*animations.Clip, x1, x2 float64) (*Stage, [2]*Fighter) {
	t.Helper()
	w, stage := newTestStage(width)

	var fighters [2]*Fighter
	for slot, x := range []float64{x1, x2} {
		e := factory.CreateFighter(w, stage.Space, stage.GroundY, factory.FighterDef{
			Slot:        slot,
			Archetype:   "test",
			FrameWidth:  testFrameW,
			FrameHeight: testFrameH,
			Scale:       1,
			Clips:       clips,
			SpawnX:      x,
		})
		fighters[slot] = NewFighter(e)
	}
	require.True(t, fighters[0].OnGround())
	return stage, fighters
}

// step runs one full tick in controller order and returns the hits.
func step(stage *Stage, f [2]*Fighter) []Hit {
	UpdateFighter(stage, f[0], f[1], testDt)
	UpdateFighter(stage, f[1], f[0], testDt)
	return ResolveCombat(stage, f)
}

func setX(f *Fighter, x float64) {
	obj := components.Object.Get(f.Entry())
	obj.X = x
	updateHurtbox(f.Entry())
}

func setHealth(f *Fighter, hp int) {
	components.Health.Get(f.Entry()).Current = hp
}

// requireInvariants checks the fighter invariants that must hold after every
// tick.
func requireInvariants(t *testing.T, f *Fighter) {
	t.Helper()
	cur, max := f.Health()
	require.GreaterOrEqual(t, cur, 0)
	require.LessOrEqual(t, cur, max)
	if cur == 0 {
		require.Equal(t, cfg.KO, f.State())
	}
	if f.IsAttacking() {
		require.True(t, f.State().IsAttack(), "attacking in state %s", f.State())
	}
	if f.HitThisAttack() {
		require.True(t, f.IsAttacking())
	}
}
