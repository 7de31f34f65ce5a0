package round

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/dojo/assets/animations"
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/records"
	"github.com/automoto/dojo/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDt = 20.0

type message struct {
	text string
	d    time.Duration
}

type recordingPresenter struct {
	messages []message
	frames   []Frame
}

func (p *recordingPresenter) ShowMessage(text string, d time.Duration) {
	p.messages = append(p.messages, message{text, d})
}

func (p *recordingPresenter) Present(f Frame) { p.frames = append(p.frames, f) }

func (p *recordingPresenter) lastMessage() string {
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1].text
}

type fakeRecorder struct {
	records []records.Record
	err     error
}

func (r *fakeRecorder) Append(rec records.Record) error {
	r.records = append(r.records, rec)
	return r.err
}

type countingPort struct{ clears int }

func (p *countingPort) ClearEdgeTriggers() { p.clears++ }

func testClips() map[cfg.StateID]*animations.Clip {
	return map[cfg.StateID]*animations.Clip{
		cfg.Idle: {Frames: []string{"i0", "i1"}, FrameDuration: 100, Loop: true},
		cfg.Hit:  {Frames: []string{"h0"}, FrameDuration: 100},
		cfg.KO:   {Frames: []string{"k0"}, FrameDuration: 100},
	}
}

type fixture struct {
	c         *Controller
	presenter *recordingPresenter
	recorder  *fakeRecorder
	port      *countingPort
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{
		presenter: &recordingPresenter{},
		recorder:  &fakeRecorder{},
		port:      &countingPort{},
	}
	def := func(x float64) factory.FighterDef {
		return factory.FighterDef{
			Archetype:   "test",
			FrameWidth:  100,
			FrameHeight: 200,
			Scale:       1,
			Clips:       testClips(),
			SpawnX:      x,
		}
	}
	fx.c = New(Setup{
		Width:     1280,
		Height:    720,
		GroundY:   620,
		Fighters:  [2]factory.FighterDef{def(200), def(980)},
		Presenter: fx.presenter,
		Recorder:  fx.recorder,
		Inputs:    []EdgeClearer{fx.port},
	})
	return fx
}

func (fx *fixture) setHealth(slot, hp int) {
	components.Health.Get(fx.c.Fighter(slot).Entry()).Current = hp
}

func (fx *fixture) setTimer(seconds float64) {
	components.Round.Get(fx.c.round).TimerSeconds = seconds
}

func TestNewControllerWaits(t *testing.T) {
	fx := newFixture(t)
	s := fx.c.State()
	assert.Equal(t, cfg.RoundWaiting, s.Phase)
	assert.False(t, s.Active)

	x, _ := fx.c.Fighter(0).Position()
	fx.c.Update(testDt)
	x2, _ := fx.c.Fighter(0).Position()
	assert.Equal(t, x, x2)
	assert.Equal(t, cfg.Round.TimerSeconds, fx.c.State().TimerSeconds)
	require.Len(t, fx.presenter.frames, 1)
}

func TestStartRound(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()

	s := fx.c.State()
	assert.Equal(t, cfg.RoundActive, s.Phase)
	assert.True(t, s.Active)
	assert.False(t, s.Ended)
	assert.Equal(t, 1, s.RoundNumber)
	assert.Equal(t, 99.0, s.TimerSeconds)
	require.Len(t, fx.presenter.messages, 1)
	assert.Equal(t, message{"ROUND 1! FIGHT!", 2 * time.Second}, fx.presenter.messages[0])
}

func TestTimerCountsDown(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	for i := 0; i < 50; i++ {
		fx.c.Update(testDt)
	}
	assert.InDelta(t, 98.0, fx.c.State().TimerSeconds, 1e-9)
	assert.Equal(t, 50, fx.port.clears, "edge triggers cleared once per tick")
}

func TestTimerClampsAtZero(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	fx.setTimer(0.005)
	fx.c.Update(testDt)

	s := fx.c.State()
	assert.Equal(t, 0.0, s.TimerSeconds)
	assert.Equal(t, components.EndTime, s.Outcome.Reason)

	fx.c.Update(testDt)
	assert.Equal(t, 0.0, fx.c.State().TimerSeconds, "frozen once ended")
}

func TestTimeoutDecision(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 int
		winner int
		text   string
	}{
		{"player two ahead", 40, 60, 1, "Player 2 Wins by Time!"},
		{"player one ahead", 70, 30, 0, "Player 1 Wins by Time!"},
		{"tie", 50, 50, -1, "DRAW!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			fx.c.StartRound()
			fx.setHealth(0, tt.p1)
			fx.setHealth(1, tt.p2)
			fx.setTimer(0.01)
			fx.c.Update(testDt)

			s := fx.c.State()
			assert.Equal(t, cfg.RoundEnded, s.Phase)
			assert.False(t, s.Active)
			assert.True(t, s.Ended)
			assert.Equal(t, components.Outcome{Reason: components.EndTime, Winner: tt.winner}, s.Outcome)
			assert.Equal(t, tt.text, fx.presenter.lastMessage())
			assert.Equal(t, cfg.Round.ResetDelayMs, s.ResetPendingMs)
		})
	}
}

func TestKnockoutBeatsTimeout(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	fx.c.Fighter(1).TakeDamage(150)
	fx.setTimer(0.01)
	fx.c.Update(testDt)

	s := fx.c.State()
	assert.Equal(t, components.Outcome{Reason: components.EndKO, Winner: 0}, s.Outcome)
	assert.Equal(t, "K.O.! Player 1 Wins!", fx.presenter.lastMessage())
	assert.Equal(t, [2]int{1, 0}, s.Wins)
}

func TestDoubleKnockoutIsDraw(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	fx.c.Fighter(0).TakeDamage(100)
	fx.c.Fighter(1).TakeDamage(100)
	fx.c.Update(testDt)

	s := fx.c.State()
	assert.True(t, s.Outcome.Draw())
	assert.Equal(t, components.EndKO, s.Outcome.Reason)
	assert.Equal(t, [2]int{0, 0}, s.Wins)
	assert.Equal(t, "DRAW!", fx.presenter.lastMessage())
}

func TestRoundEndIsRecorded(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	fx.c.Fighter(1).TakeDamage(150)
	fx.c.Update(testDt)

	require.Len(t, fx.recorder.records, 1)
	rec := fx.recorder.records[0]
	assert.Equal(t, 1, rec.Match)
	assert.Equal(t, 1, rec.Round)
	assert.Equal(t, "ko", rec.Reason)
	assert.Equal(t, 0, rec.Winner)
	assert.Equal(t, 100, rec.P1Health)
	assert.Equal(t, 0, rec.P2Health)
	assert.Equal(t, -1, rec.MatchWinner)
}

func TestRecorderErrorDoesNotStopRound(t *testing.T) {
	fx := newFixture(t)
	fx.recorder.err = errors.New("disk full")
	fx.c.StartRound()
	fx.c.Fighter(1).TakeDamage(150)
	fx.c.Update(testDt)
	assert.Equal(t, cfg.RoundEnded, fx.c.State().Phase)
}

func TestStartRoundAfterKnockoutResets(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	fx.c.Fighter(0).TakeDamage(150)
	for i := 0; i < 5; i++ {
		fx.c.Update(testDt)
	}
	require.True(t, fx.c.State().Ended)
	require.Positive(t, fx.c.State().ResetPendingMs)

	fx.c.StartRound()
	s := fx.c.State()
	assert.Zero(t, s.ResetPendingMs, "pending reset cancelled")
	assert.Equal(t, 2, s.RoundNumber)
	assert.Equal(t, 99.0, s.TimerSeconds)

	for slot, spawn := range []float64{200, 980} {
		f := fx.c.Fighter(slot)
		cur, max := f.Health()
		assert.Equal(t, max, cur)
		assert.Equal(t, cfg.Idle, f.State())
		assert.Equal(t, cfg.Idle, f.Animation().Clip)
		x, y := f.Position()
		assert.Equal(t, spawn, x)
		assert.Equal(t, 620.0-200, y)
	}

	// The cancelled reset must not fire later.
	for i := 0; i < int(cfg.Round.ResetDelayMs/testDt)+10; i++ {
		fx.c.Update(testDt)
	}
	assert.Equal(t, 2, fx.c.State().RoundNumber)
}

func TestAutomaticResetAfterDelay(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	fx.c.Fighter(0).TakeDamage(150)
	fx.c.Update(testDt)

	n := int(cfg.Round.ResetDelayMs / testDt)
	for i := 0; i < n-1; i++ {
		fx.c.Update(testDt)
		require.Equal(t, cfg.RoundEnded, fx.c.State().Phase)
	}
	fx.c.Update(testDt)

	s := fx.c.State()
	assert.Equal(t, cfg.RoundActive, s.Phase)
	assert.Equal(t, 2, s.RoundNumber)
	assert.Equal(t, "ROUND 2! FIGHT!", fx.presenter.lastMessage())
	assert.Equal(t, [2]int{0, 1}, s.Wins)
}

func TestMatchWinnerAndNextMatch(t *testing.T) {
	fx := newFixture(t)
	for i := 0; i < cfg.Round.RoundsToWin; i++ {
		fx.c.StartRound()
		fx.c.Fighter(1).TakeDamage(150)
		fx.c.Update(testDt)
	}

	s := fx.c.State()
	require.True(t, s.MatchOver())
	assert.Equal(t, 0, s.MatchWinner)
	assert.Contains(t, fx.presenter.lastMessage(), "Player 1 Wins the Match!")
	assert.Equal(t, 0, fx.recorder.records[len(fx.recorder.records)-1].MatchWinner)

	fx.c.StartRound()
	s = fx.c.State()
	assert.Equal(t, 2, fx.c.Match())
	assert.Equal(t, 1, s.RoundNumber)
	assert.Equal(t, [2]int{}, s.Wins)
	assert.False(t, s.MatchOver())
}

func TestNewMatch(t *testing.T) {
	fx := newFixture(t)
	fx.c.NewMatch()
	assert.Equal(t, 1, fx.c.Match())
	fx.c.Fighter(1).TakeDamage(150)
	fx.c.Update(testDt)

	fx.c.NewMatch()
	s := fx.c.State()
	assert.Equal(t, 2, fx.c.Match())
	assert.Equal(t, 1, s.RoundNumber)
	assert.Equal(t, [2]int{}, s.Wins)
}

func TestFramePresentsState(t *testing.T) {
	fx := newFixture(t)
	fx.c.StartRound()
	fx.c.Fighter(1).TakeDamage(30)
	fx.c.Update(testDt)

	f := fx.presenter.frames[len(fx.presenter.frames)-1]
	assert.Equal(t, 100, f.HUD.P1Health)
	assert.Equal(t, 70, f.HUD.P2Health)
	assert.Equal(t, 100, f.HUD.P2Max)
	assert.InDelta(t, 98.98, f.HUD.TimerSeconds, 1e-9)
	assert.Equal(t, cfg.RoundActive, f.Phase)
	assert.Equal(t, 200.0, f.Fighters[0].X)
	assert.Equal(t, 100.0, f.Fighters[0].W)
	assert.True(t, f.Fighters[0].FacingRight)
	assert.False(t, f.Fighters[1].FacingRight)
	assert.Equal(t, cfg.Hit, f.Fighters[1].State)
	assert.Nil(t, f.Fighters[0].Hitbox)
}

func TestSetClips(t *testing.T) {
	fx := newFixture(t)
	clips := testClips()
	fx.c.SetClips(1, clips)
	assert.Equal(t, clips, components.Animation.Get(fx.c.Fighter(1).Entry()).Clips)
}

func TestSetFrameResizesFighter(t *testing.T) {
	fx := newFixture(t)
	f := fx.c.Fighter(1)
	_, y := f.Position()
	bottom := y + f.Hurtbox().H

	fx.c.SetFrame(1, 120, 160, 0.5)
	fd := components.Fighter.Get(f.Entry())
	assert.Equal(t, 120.0, fd.FrameWidth)
	assert.Equal(t, 0.5, fd.Scale)

	hb := f.Hurtbox()
	assert.Equal(t, 60.0, hb.W)
	assert.Equal(t, 80.0, hb.H)
	assert.Equal(t, bottom, hb.Y+hb.H, "feet stay on the ground")

	fx.c.Update(16)
	assert.True(t, f.OnGround())
	assert.Equal(t, 60.0, f.Hurtbox().W)
}
