package round

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/dojo/archetypes"
	"github.com/automoto/dojo/assets/animations"
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/hud"
	"github.com/automoto/dojo/records"
	"github.com/automoto/dojo/shared/gamemath"
	"github.com/automoto/dojo/systems"
	"github.com/automoto/dojo/systems/factory"
	"github.com/yohamta/donburi"
)

// Presenter receives everything the host needs to draw a tick.
type Presenter interface {
	ShowMessage(text string, d time.Duration)
	Present(f Frame)
}

// Recorder persists finished rounds. *records.Store satisfies it.
type Recorder interface {
	Append(r records.Record) error
}

// EdgeClearer is the part of an input port the tick owner drives.
type EdgeClearer interface {
	ClearEdgeTriggers()
}

// FighterView is the per-fighter render state for one tick.
type FighterView struct {
	Slot        int
	Archetype   string
	X, Y, W, H  float64
	FacingRight bool
	State       cfg.StateID
	Clip        cfg.StateID
	Frame       int
	Hurtbox     gamemath.Rect
	Hitbox      *gamemath.Rect
}

// Frame is handed to the presenter after every Update.
type Frame struct {
	HUD      hud.Snapshot
	Fighters [2]FighterView
	Phase    cfg.RoundPhase
	Outcome  components.Outcome
	Hits     []systems.Hit
	Sounds   []cfg.SoundID
}

// Setup describes the arena and the two fighters.
type Setup struct {
	Width, Height float64
	GroundY       float64
	Fighters      [2]factory.FighterDef

	Presenter Presenter
	Recorder  Recorder
	Inputs    []EdgeClearer
}

// Controller owns both fighters and the round timer and sequences rounds
// into a match.
type Controller struct {
	world    donburi.World
	stage    *systems.Stage
	fighters [2]*systems.Fighter
	round    *donburi.Entry

	presenter Presenter
	recorder  Recorder
	inputs    []EdgeClearer

	match  int
	hits   []systems.Hit
	sounds []cfg.SoundID
}

// New builds the world for a match. The round stays in WAITING until
// StartRound is called.
func New(s Setup) *Controller {
	w := donburi.NewWorld()

	cell := cfg.Arena.CellSize
	spaceEntry := factory.CreateSpace(w, int(s.Width), int(s.Height), cell, cell)
	stage := &systems.Stage{
		Width:   s.Width,
		Height:  s.Height,
		GroundY: s.GroundY,
		Space:   components.Space.Get(spaceEntry),
	}

	c := &Controller{
		world:     w,
		stage:     stage,
		presenter: s.Presenter,
		recorder:  s.Recorder,
		inputs:    s.Inputs,
		match:     1,
	}
	if c.presenter == nil {
		c.presenter = nopPresenter{}
	}

	for slot, def := range s.Fighters {
		def.Slot = slot
		c.fighters[slot] = systems.NewFighter(factory.CreateFighter(w, stage.Space, stage.GroundY, def))
	}

	c.round = archetypes.Round.Spawn(w)
	components.Round.SetValue(c.round, components.RoundData{
		Phase:        cfg.RoundWaiting,
		TimerSeconds: cfg.Round.TimerSeconds,
		Outcome:      components.Outcome{Winner: -1},
		MatchWinner:  -1,
	})
	return c
}

func (c *Controller) World() donburi.World { return c.world }

func (c *Controller) Stage() *systems.Stage { return c.stage }

func (c *Controller) Fighter(slot int) *systems.Fighter { return c.fighters[slot] }

// State returns a copy of the round state.
func (c *Controller) State() components.RoundData { return *components.Round.Get(c.round) }

// Match is the 1-based match number.
func (c *Controller) Match() int { return c.match }

// SetClips swaps a fighter's clip table, used when character data is
// reloaded between ticks.
func (c *Controller) SetClips(slot int, clips map[cfg.StateID]*animations.Clip) {
	components.Animation.Get(c.fighters[slot].Entry()).Clips = clips
}

// SetFrame applies a reloaded sprite frame size and scale to a fighter. The
// hurtbox and hitbox mirroring follow from the next tick on.
func (c *Controller) SetFrame(slot int, frameW, frameH, scale float64) {
	c.fighters[slot].Resize(c.stage, frameW, frameH, scale)
}

// StartRound resets both fighters and the timer and begins a round. Any
// pending automatic reset is cancelled. After a decided match it begins the
// next match.
func (c *Controller) StartRound() {
	r := components.Round.Get(c.round)
	if r.MatchOver() {
		c.match++
		r.Wins = [2]int{}
		r.MatchWinner = -1
		r.RoundNumber = 0
	}

	for _, f := range c.fighters {
		f.Reset(c.stage)
	}

	r.Phase = cfg.RoundActive
	r.TimerSeconds = cfg.Round.TimerSeconds
	r.Active = true
	r.Ended = false
	r.Outcome = components.Outcome{Winner: -1}
	r.ResetPendingMs = 0
	r.RoundNumber++

	c.presenter.ShowMessage(fmt.Sprintf(cfg.Round.StartMessageFmt, r.RoundNumber), msDuration(cfg.Round.StartMessageMs))
	c.sounds = append(c.sounds, cfg.SoundRoundStart)
	log.Printf("Match %d round %d started", c.match, r.RoundNumber)
}

// NewMatch abandons the current match and starts round one of a fresh one.
func (c *Controller) NewMatch() {
	r := components.Round.Get(c.round)
	if r.RoundNumber > 0 {
		c.match++
	}
	r.Wins = [2]int{}
	r.MatchWinner = -1
	r.RoundNumber = 0
	c.StartRound()
}

// Update advances the round by elapsedMs. Fighters only move while the round
// is active; an ended round counts down to its automatic reset. The frame is
// presented and the input edge triggers cleared on every call.
func (c *Controller) Update(elapsedMs float64) {
	r := components.Round.Get(c.round)

	switch r.Phase {
	case cfg.RoundActive:
		c.tick(r, elapsedMs)
	case cfg.RoundEnded:
		if r.ResetPendingMs > 0 {
			r.ResetPendingMs -= elapsedMs
			if r.ResetPendingMs <= 0 {
				r.ResetPendingMs = 0
				c.StartRound()
			}
		}
	}

	c.presenter.Present(c.frame())
	c.hits = nil
	c.sounds = nil

	for _, in := range c.inputs {
		in.ClearEdgeTriggers()
	}
}

func (c *Controller) tick(r *components.RoundData, dtMs float64) {
	p1, p2 := c.fighters[0], c.fighters[1]

	var acted [2]systems.Action
	acted[0] = systems.UpdateFighter(c.stage, p1, p2, dtMs)
	acted[1] = systems.UpdateFighter(c.stage, p2, p1, dtMs)
	c.hits = systems.ResolveCombat(c.stage, c.fighters)

	for _, a := range acted {
		c.sounds = append(c.sounds, actionSounds(a)...)
	}
	for _, h := range c.hits {
		c.sounds = append(c.sounds, hitSound(h))
	}

	r.TimerSeconds -= dtMs / 1000

	if outcome, ok := c.checkEnd(r); ok {
		c.endRound(r, outcome)
	}
}

// checkEnd applies the termination rules in priority order: knockout first,
// then time.
func (c *Controller) checkEnd(r *components.RoundData) (components.Outcome, bool) {
	h1, _ := c.fighters[0].Health()
	h2, _ := c.fighters[1].Health()

	switch {
	case h1 <= 0 && h2 <= 0:
		c.forceKO(0)
		c.forceKO(1)
		if cfg.Round.DoubleKOIsDraw {
			return components.Outcome{Reason: components.EndKO, Winner: -1}, true
		}
		// Player one's hit is applied first, so player two fell first.
		return components.Outcome{Reason: components.EndKO, Winner: 0}, true
	case h1 <= 0:
		c.forceKO(0)
		return components.Outcome{Reason: components.EndKO, Winner: 1}, true
	case h2 <= 0:
		c.forceKO(1)
		return components.Outcome{Reason: components.EndKO, Winner: 0}, true
	case r.TimerSeconds <= 0:
		r.TimerSeconds = 0
		winner := -1
		if h1 > h2 {
			winner = 0
		} else if h2 > h1 {
			winner = 1
		}
		return components.Outcome{Reason: components.EndTime, Winner: winner}, true
	}
	return components.Outcome{}, false
}

func (c *Controller) forceKO(slot int) {
	if f := c.fighters[slot]; !f.IsKO() {
		f.TakeDamage(0)
	}
}

func (c *Controller) endRound(r *components.RoundData, o components.Outcome) {
	r.Phase = cfg.RoundEnded
	r.Active = false
	r.Ended = true
	r.Outcome = o
	r.ResetPendingMs = cfg.Round.ResetDelayMs

	text := OutcomeText(o)
	d := msDuration(cfg.Round.EndMessageMs)
	if !o.Draw() {
		r.Wins[o.Winner]++
		if r.Wins[o.Winner] >= cfg.Round.RoundsToWin {
			r.MatchWinner = o.Winner
			text += fmt.Sprintf("\nPlayer %d Wins the Match!", o.Winner+1)
			if m := msDuration(cfg.Round.MatchMessageMs); m > d {
				d = m
			}
		}
	}

	c.presenter.ShowMessage(text, d)
	c.sounds = append(c.sounds, cfg.SoundRoundEnd)
	log.Printf("Match %d round %d over: %s", c.match, r.RoundNumber, text)

	c.record(r)
}

func (c *Controller) record(r *components.RoundData) {
	if c.recorder == nil {
		return
	}
	h1, _ := c.fighters[0].Health()
	h2, _ := c.fighters[1].Health()
	rec := records.Record{
		Match:        c.match,
		Round:        r.RoundNumber,
		Reason:       r.Outcome.Reason.String(),
		Winner:       r.Outcome.Winner,
		P1Archetype:  components.Fighter.Get(c.fighters[0].Entry()).Archetype,
		P2Archetype:  components.Fighter.Get(c.fighters[1].Entry()).Archetype,
		P1Health:     h1,
		P2Health:     h2,
		TimerSeconds: r.TimerSeconds,
		MatchWinner:  r.MatchWinner,
		At:           time.Now(),
	}
	if err := c.recorder.Append(rec); err != nil {
		log.Printf("Warning: Could not save round record: %v", err)
	}
}

// OutcomeText is the end of round announcement.
func OutcomeText(o components.Outcome) string {
	if o.Draw() {
		return "DRAW!"
	}
	if o.Reason == components.EndTime {
		return fmt.Sprintf("Player %d Wins by Time!", o.Winner+1)
	}
	return fmt.Sprintf("K.O.! Player %d Wins!", o.Winner+1)
}

func (c *Controller) frame() Frame {
	r := components.Round.Get(c.round)
	h1, m1 := c.fighters[0].Health()
	h2, m2 := c.fighters[1].Health()

	f := Frame{
		HUD: hud.Snapshot{
			P1Health:     h1,
			P1Max:        m1,
			P2Health:     h2,
			P2Max:        m2,
			TimerSeconds: r.TimerSeconds,
			RoundNumber:  r.RoundNumber,
			Wins:         r.Wins,
		},
		Phase:   r.Phase,
		Outcome: r.Outcome,
		Hits:    c.hits,
		Sounds:  c.sounds,
	}
	for slot, fighter := range c.fighters {
		f.Fighters[slot] = view(fighter)
	}
	return f
}

func view(f *systems.Fighter) FighterView {
	e := f.Entry()
	obj := components.Object.Get(e)
	anim := f.Animation()
	return FighterView{
		Slot:        f.Slot(),
		Archetype:   components.Fighter.Get(e).Archetype,
		X:           obj.X,
		Y:           obj.Y,
		W:           obj.W,
		H:           obj.H,
		FacingRight: anim.FacingRight,
		State:       f.State(),
		Clip:        anim.Clip,
		Frame:       anim.Frame,
		Hurtbox:     f.Hurtbox(),
		Hitbox:      f.ActiveHitbox(),
	}
}

func actionSounds(a systems.Action) []cfg.SoundID {
	var out []cfg.SoundID
	if a.Has(systems.ActedJump) || a.Has(systems.ActedAirJump) {
		out = append(out, cfg.SoundJump)
	}
	if a.Has(systems.ActedDash) || a.Has(systems.ActedRoll) {
		out = append(out, cfg.SoundDash)
	}
	return out
}

func hitSound(h systems.Hit) cfg.SoundID {
	if h.KO {
		return cfg.SoundKO
	}
	switch h.Kind {
	case cfg.AttackKindMedium:
		return cfg.SoundMediumHit
	case cfg.AttackKindHeavy:
		return cfg.SoundHeavyHit
	default:
		return cfg.SoundLightHit
	}
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

type nopPresenter struct{}

func (nopPresenter) ShowMessage(string, time.Duration) {}
func (nopPresenter) Present(Frame)                     {}
