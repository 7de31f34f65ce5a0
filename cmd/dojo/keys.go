package main

import (
	"log"

	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/input"
	"github.com/hajimehoshi/ebiten/v2"
)

type keyBinding struct {
	action cfg.ActionID
	keys   []ebiten.Key
}

// bindKeys resolves a control scheme's key names to ebiten keys.
func bindKeys(scheme cfg.ControlSchemeID) []keyBinding {
	var out []keyBinding
	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		names := cfg.ControlSchemeKeys[scheme][action]
		b := keyBinding{action: action}
		for _, name := range names {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				log.Printf("Warning: Unknown key %q for %s", name, action)
				continue
			}
			b.keys = append(b.keys, k)
		}
		if len(b.keys) > 0 {
			out = append(out, b)
		}
	}
	return out
}

func sampleKeys(buf *input.Buffer, bindings []keyBinding) {
	for _, b := range bindings {
		down := false
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		buf.Set(b.action, down)
	}
}
