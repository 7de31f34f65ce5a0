package main

import (
	"log"
	"time"

	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/hud"
	"github.com/automoto/dojo/input"
	"github.com/automoto/dojo/records"
	"github.com/automoto/dojo/round"
	"github.com/automoto/dojo/shared/arenadata"
	"github.com/automoto/dojo/shared/chardata"
	"github.com/automoto/dojo/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type GameOptions struct {
	Table      chardata.Table
	Arena      *arenadata.Arena
	Archetypes [2]string
	Dummy      bool
	Mute       bool
}

// Game is the ebiten host: it samples the keyboard into input buffers, ticks
// the round controller and draws whatever the controller presents.
type Game struct {
	round      *round.Controller
	arena      *arenadata.Arena
	archetypes [2]string

	inputs   [2]*input.Buffer
	bindings [2][]keyBinding

	hud       *hud.Model
	frame     round.Frame
	message   string
	messageMs float64

	sfx     *sfxPlayer
	watcher *chardata.Watcher
	dtMs    float64
}

func NewGame(opts GameOptions) *Game {
	g := &Game{
		arena:      opts.Arena,
		archetypes: opts.Archetypes,
		hud:        hud.NewModel(),
		dtMs:       1000 / float64(cfg.C.TPS),
	}
	if !opts.Mute {
		g.sfx = newSFXPlayer()
	}

	var defs [2]factory.FighterDef
	var clearers []round.EdgeClearer
	for slot, id := range opts.Archetypes {
		g.inputs[slot] = input.NewBuffer()
		g.bindings[slot] = bindKeys(cfg.ControlSchemeID(slot))
		clearers = append(clearers, g.inputs[slot])

		var src components.IntentSource = input.NewHumanIntents(g.inputs[slot])
		if slot == 1 && opts.Dummy {
			src = dummyScript()
		}

		def, ok := opts.Table.FighterDef(id, slot, opts.Arena.Spawns[slot], src)
		if !ok {
			log.Printf("Warning: Unknown archetype %q for player %d, using placeholder", id, slot+1)
		}
		defs[slot] = def
	}

	setup := round.Setup{
		Width:     opts.Arena.Width,
		Height:    opts.Arena.Height,
		GroundY:   opts.Arena.GroundY,
		Fighters:  defs,
		Presenter: g,
		Inputs:    clearers,
	}
	if store, err := records.Open("dojo"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		setup.Recorder = store
		if h, err := store.Load(); err == nil && len(h.Records) > 0 {
			wins := h.Wins()
			log.Printf("Loaded %d past rounds (P1 %d, P2 %d)", len(h.Records), wins[0], wins[1])
		}
	}

	g.round = round.New(setup)
	g.round.StartRound()
	return g
}

// dummyScript stands still and throws a light attack every two seconds.
func dummyScript() *input.Script {
	light := cfg.AttackKindLight
	return input.NewScript(true,
		input.Step{Ticks: 120},
		input.Step{Ticks: 1, Intent: components.Intent{Attack: &light}},
	)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) ShowMessage(text string, d time.Duration) {
	g.message = text
	g.messageMs = float64(d.Milliseconds())
}

func (g *Game) Present(f round.Frame) {
	g.frame = f
	g.hud.Update(f.HUD, float32(g.dtMs/1000))
	g.sfx.play(f.Sounds)
}

func (g *Game) Update() error {
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.round.NewMatch()
	}

	for slot, buf := range g.inputs {
		if !ebiten.IsFocused() {
			buf.Reset()
			continue
		}
		sampleKeys(buf, g.bindings[slot])
	}

	g.round.Update(g.dtMs)

	if g.messageMs > 0 {
		g.messageMs -= g.dtMs
		if g.messageMs <= 0 {
			g.messageMs = 0
			g.message = ""
		}
	}
	return nil
}

// pollReload applies character file changes between ticks.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		path, ok := g.watcher.Poll()
		if !ok {
			break
		}
		g.reloadCharacters(path)
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("Warning: Character watcher: %v", err)
	default:
	}
}

func (g *Game) reloadCharacters(path string) {
	table, err := chardata.LoadFile(path)
	if err != nil {
		log.Printf("Warning: Could not reload characters: %v", err)
		return
	}
	for _, w := range chardata.Validate(table) {
		log.Printf("Warning: %s", w)
	}
	for slot, id := range g.archetypes {
		c, ok := table[id]
		if !ok {
			log.Printf("Warning: Archetype %q missing after reload, keeping old clips", id)
			continue
		}
		g.round.SetClips(slot, c.Clips)
		g.round.SetFrame(slot, c.FrameWidth, c.FrameHeight, c.Scale)
	}
	log.Printf("Reloaded characters from %s", path)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
