// Package arenadata reads arena geometry from Tiled maps. It has no
// dependencies on ebitengine, donburi or resolv.
package arenadata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/automoto/dojo/config"
	"github.com/lafriks/go-tiled"
)

// Object group names understood in arena maps.
const (
	GroupGround = "Ground"
	GroupSpawn  = "PlayerSpawn"
)

// Arena is the playfield geometry the round runs in.
type Arena struct {
	Name    string
	Width   float64
	Height  float64
	GroundY float64
	Spawns  [2]float64 // Left edge of each fighter at round start
}

// Default returns the arena described by the configuration.
func Default() *Arena {
	return &Arena{
		Name:    "default",
		Width:   cfg.Arena.Width,
		Height:  cfg.Arena.Height,
		GroundY: cfg.Arena.GroundY,
		Spawns:  [2]float64{cfg.Arena.SpawnOffsetX, cfg.Arena.Width - cfg.Arena.SpawnOffsetX},
	}
}

// Load parses a TMX file. The ground line is the top of the first object in
// the Ground group; spawns come from the PlayerSpawn group, ordered by their
// spawnIndex property and then left to right. Anything missing falls back to
// the configured defaults.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := Default()
	arena.Name = strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath))
	if w := float64(m.Width * m.TileWidth); w > 0 {
		arena.Width = w
	}
	if h := float64(m.Height * m.TileHeight); h > 0 {
		arena.Height = h
	}
	arena.GroundY = arena.Height - (cfg.Arena.Height - cfg.Arena.GroundY)
	arena.Spawns = [2]float64{cfg.Arena.SpawnOffsetX, arena.Width - cfg.Arena.SpawnOffsetX}

	type spawn struct {
		x     float64
		index int
	}
	var spawns []spawn

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupGround:
			if len(og.Objects) > 0 {
				arena.GroundY = og.Objects[0].Y
			}
		case GroupSpawn:
			for _, o := range og.Objects {
				spawns = append(spawns, spawn{x: o.X, index: o.Properties.GetInt("spawnIndex")})
			}
		}
	}

	sort.SliceStable(spawns, func(i, j int) bool {
		if spawns[i].index != spawns[j].index {
			return spawns[i].index < spawns[j].index
		}
		return spawns[i].x < spawns[j].x
	})
	for i := 0; i < len(spawns) && i < len(arena.Spawns); i++ {
		arena.Spawns[i] = spawns[i].x
	}

	if arena.GroundY <= 0 || arena.GroundY > arena.Height {
		return nil, fmt.Errorf("arena %s: ground line %v outside map height %v", arena.Name, arena.GroundY, arena.Height)
	}
	return arena, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
