package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/fonts"
	"github.com/automoto/dojo/shared/arenadata"
	"github.com/automoto/dojo/shared/chardata"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	overrides := flag.String("overrides", "", "YAML file with tuning overrides")
	characters := flag.String("characters", "", "Character data YAML (default: built-in table)")
	arenaPath := flag.String("arena", "", "Arena TMX file (default: built-in arena)")
	p1 := flag.String("p1", "ken", "Player one archetype")
	p2 := flag.String("p2", "ryu", "Player two archetype")
	dummy := flag.Bool("dummy", false, "Player two is a scripted training dummy")
	hitboxes := flag.Bool("hitboxes", false, "Draw hurtboxes and hitboxes")
	mute := flag.Bool("mute", false, "Disable sound effects")
	watch := flag.Bool("watch", true, "Reload the character file when it changes")
	flag.Parse()

	if *overrides != "" {
		if err := cfg.LoadOverrides(*overrides); err != nil {
			log.Printf("Warning: %v, using defaults", err)
		}
	}
	cfg.Debug.ShowHitboxes = *hitboxes

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	table := loadCharacters(*characters)
	arena := loadArena(*arenaPath)
	cfg.C.Width = int(arena.Width)
	cfg.C.Height = int(arena.Height)

	g := NewGame(GameOptions{
		Table:      table,
		Arena:      arena,
		Archetypes: [2]string{*p1, *p2},
		Dummy:      *dummy,
		Mute:       *mute,
	})
	defer g.Close()

	if *watch && *characters != "" {
		w, err := chardata.NewWatcher(*characters)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *characters, err)
		} else {
			g.watcher = w
		}
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Dojo")
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadCharacters(path string) chardata.Table {
	table := chardata.Default()
	if path != "" {
		loaded, err := chardata.LoadFile(path)
		if err != nil {
			log.Printf("Warning: %v, using built-in characters", err)
		} else {
			table = loaded
			log.Printf("Loaded %d characters from %s", len(table), path)
		}
	}
	for _, w := range chardata.Validate(table) {
		log.Printf("Warning: %s", w)
	}
	return table
}

func loadArena(path string) *arenadata.Arena {
	if path == "" {
		return arenadata.Default()
	}
	arena, err := arenadata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		log.Printf("Warning: %v, using default arena", err)
		return arenadata.Default()
	}
	log.Printf("Loaded arena %s (%.0fx%.0f, ground %.0f)", arena.Name, arena.Width, arena.Height, arena.GroundY)
	return arena
}
