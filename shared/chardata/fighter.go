package chardata

import (
	"github.com/automoto/dojo/components"
	"github.com/automoto/dojo/systems/factory"
)

// FighterDef builds the spawn definition for an archetype. An unknown id
// still yields a usable placeholder fighter with no clips and the fallback
// frame size; ok reports whether the id was found.
func (t Table) FighterDef(id string, slot int, spawnX float64, src components.IntentSource) (def factory.FighterDef, ok bool) {
	def = factory.FighterDef{
		Slot:      slot,
		Archetype: id,
		SpawnX:    spawnX,
		Source:    src,
	}
	c, ok := t[id]
	if !ok {
		return def, false
	}
	def.FrameWidth = c.FrameWidth
	def.FrameHeight = c.FrameHeight
	def.Scale = c.Scale
	def.Clips = c.Clips
	return def, true
}
