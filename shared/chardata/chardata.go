// Package chardata loads per-archetype animation tables from YAML.
package chardata

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/automoto/dojo/assets/animations"
	cfg "github.com/automoto/dojo/config"
	"gopkg.in/yaml.v3"
)

//go:embed characters.yaml
var defaultData []byte

type HitboxSpec struct {
	Frame  int     `yaml:"frame"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Damage int     `yaml:"damage"`
}

type AnimationSpec struct {
	Frames   []string     `yaml:"frames"`
	Speed    float64      `yaml:"speed"` // ms per frame, 0 = static pose
	Loop     bool         `yaml:"loop"`
	Hitboxes []HitboxSpec `yaml:"hitboxes"`
}

type CharacterSpec struct {
	Name        string                   `yaml:"name"`
	Scale       float64                  `yaml:"scale"`
	FrameWidth  float64                  `yaml:"frame_width"`
	FrameHeight float64                  `yaml:"frame_height"`
	Animations  map[string]AnimationSpec `yaml:"animations"`
}

// File is the on-disk shape of a character data file.
type File struct {
	Characters map[string]CharacterSpec `yaml:"characters"`
}

// Character is one archetype's parsed data, shared by every fighter using it.
type Character struct {
	ID          string
	Name        string
	Scale       float64
	FrameWidth  float64
	FrameHeight float64
	Clips       map[cfg.StateID]*animations.Clip
}

// Table maps archetype ids to characters.
type Table map[string]*Character

// IDs returns the archetype ids in sorted order.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Parse decodes a character data file.
func Parse(data []byte) (Table, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("chardata: unmarshal: %w", err)
	}
	if len(f.Characters) == 0 {
		return nil, fmt.Errorf("chardata: no characters defined")
	}

	table := make(Table, len(f.Characters))
	for id, spec := range f.Characters {
		c, err := spec.build(id)
		if err != nil {
			return nil, err
		}
		table[id] = c
	}
	return table, nil
}

func (s CharacterSpec) build(id string) (*Character, error) {
	c := &Character{
		ID:          id,
		Name:        s.Name,
		Scale:       s.Scale,
		FrameWidth:  s.FrameWidth,
		FrameHeight: s.FrameHeight,
		Clips:       make(map[cfg.StateID]*animations.Clip, len(s.Animations)),
	}
	if c.Name == "" {
		c.Name = id
	}

	for name, a := range s.Animations {
		state, ok := cfg.ParseStateID(name)
		if !ok {
			return nil, fmt.Errorf("chardata: %s: unknown animation %q", id, name)
		}
		if a.Speed < 0 {
			return nil, fmt.Errorf("chardata: %s.%s: negative speed %v", id, name, a.Speed)
		}
		clip := &animations.Clip{
			Frames:        a.Frames,
			FrameDuration: a.Speed,
			Loop:          a.Loop,
		}
		for _, hb := range a.Hitboxes {
			clip.Hitboxes = append(clip.Hitboxes, animations.HitboxDef{
				Frame:  hb.Frame,
				X:      hb.X,
				Y:      hb.Y,
				Width:  hb.Width,
				Height: hb.Height,
				Damage: hb.Damage,
			})
		}
		c.Clips[state] = clip
	}
	return c, nil
}

// Load reads and parses a character file from fsys.
func Load(fsys fs.FS, name string) (Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("chardata: load %s: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads and parses a character file from disk.
func LoadFile(path string) (Table, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Default returns the built-in table.
func Default() Table {
	t, err := Parse(defaultData)
	if err != nil {
		panic(err)
	}
	return t
}

// requiredClips are the states every archetype is expected to animate.
var requiredClips = []cfg.StateID{
	cfg.Idle, cfg.Run, cfg.Jump, cfg.Fall,
	cfg.AttackLight, cfg.AttackMedium, cfg.AttackHeavy,
	cfg.Hit, cfg.KO,
}

// Validate reports data problems that do not stop a fight from running:
// missing clips play as a frozen pose and broken hitboxes never connect.
func Validate(t Table) []string {
	var warnings []string
	for _, id := range t.IDs() {
		c := t[id]
		if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s: no frame size, using fallback", id))
		}
		for _, state := range requiredClips {
			clip, ok := c.Clips[state]
			switch {
			case !ok:
				warnings = append(warnings, fmt.Sprintf("%s: missing %s animation", id, state))
			case clip.Len() == 0:
				warnings = append(warnings, fmt.Sprintf("%s: %s animation has no frames", id, state))
			}
		}
		for _, state := range sortedStates(c.Clips) {
			clip := c.Clips[state]
			if len(clip.Hitboxes) > 0 && !state.IsAttack() {
				warnings = append(warnings, fmt.Sprintf("%s: %s has hitboxes but is not an attack", id, state))
			}
			for _, hb := range clip.Hitboxes {
				if hb.Frame < 0 || hb.Frame >= clip.Len() {
					warnings = append(warnings, fmt.Sprintf("%s: %s hitbox on frame %d outside %d frames", id, state, hb.Frame, clip.Len()))
				}
				if hb.Damage <= 0 {
					warnings = append(warnings, fmt.Sprintf("%s: %s hitbox on frame %d deals no damage", id, state, hb.Frame))
				}
			}
		}
	}
	return warnings
}

func sortedStates(clips map[cfg.StateID]*animations.Clip) []cfg.StateID {
	states := make([]cfg.StateID, 0, len(clips))
	for s := range clips {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}
