// Command dojo-sim runs a match between two scripted fighters without a
// window and logs the result. It is useful for tuning overrides and
// character data.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/input"
	"github.com/automoto/dojo/records"
	"github.com/automoto/dojo/round"
	"github.com/automoto/dojo/shared/arenadata"
	"github.com/automoto/dojo/shared/chardata"
	"github.com/automoto/dojo/systems/factory"
)

func main() {
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	overrides := flag.String("overrides", "", "YAML file with tuning overrides")
	characters := flag.String("characters", "", "Character data YAML (default: built-in table)")
	p1 := flag.String("p1", "ken", "Player one archetype")
	p2 := flag.String("p2", "ryu", "Player two archetype")
	maxTicks := flag.Int("maxticks", 100000, "Stop after this many ticks")
	save := flag.Bool("records", false, "Append round results to the match history")
	flag.Parse()

	if *overrides != "" {
		if err := cfg.LoadOverrides(*overrides); err != nil {
			log.Fatalf("Failed to load overrides: %v", err)
		}
	}

	table := chardata.Default()
	if *characters != "" {
		t, err := chardata.LoadFile(*characters)
		if err != nil {
			log.Fatalf("Failed to load characters: %v", err)
		}
		table = t
	}
	for _, w := range chardata.Validate(table) {
		log.Printf("Warning: %s", w)
	}

	arena := arenadata.Default()
	scripts := [2]components.IntentSource{rushdown(), counter()}
	var defs [2]factory.FighterDef
	for slot, id := range []string{*p1, *p2} {
		def, ok := table.FighterDef(id, slot, arena.Spawns[slot], scripts[slot])
		if !ok {
			log.Fatalf("Unknown archetype %q", id)
		}
		defs[slot] = def
	}

	setup := round.Setup{
		Width:     arena.Width,
		Height:    arena.Height,
		GroundY:   arena.GroundY,
		Fighters:  defs,
		Presenter: logPresenter{},
	}
	if *save {
		store, err := records.Open("dojo")
		if err != nil {
			log.Fatalf("Failed to open records: %v", err)
		}
		setup.Recorder = store
	}

	loop := NewSimLoop(round.New(setup), *tickRate, *maxTicks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating %s vs %s (tick rate: %d/s)", *p1, *p2, *tickRate)
	loop.Run()
}

// rushdown walks in and strings light and heavy attacks together.
func rushdown() *input.Script {
	light, heavy := cfg.AttackKindLight, cfg.AttackKindHeavy
	return input.NewScript(true,
		input.Step{Ticks: 40, Intent: components.Intent{Move: 1}},
		input.Step{Ticks: 20, Intent: components.Intent{Attack: &light}},
		input.Step{Ticks: 20, Intent: components.Intent{Attack: &heavy}},
		input.Step{Ticks: 10, Intent: components.Intent{Dash: true}},
	)
}

// counter waits, jumps in and answers with medium attacks.
func counter() *input.Script {
	medium := cfg.AttackKindMedium
	return input.NewScript(true,
		input.Step{Ticks: 30, Intent: components.Intent{Move: -1}},
		input.Step{Ticks: 45, Intent: components.Intent{Jump: true}},
		input.Step{Ticks: 25, Intent: components.Intent{Attack: &medium}},
		input.Step{Ticks: 20, Intent: components.Intent{Roll: true}},
	)
}
