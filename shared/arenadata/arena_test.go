package arenadata

import (
	"os"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/dojo/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesConfig(t *testing.T) {
	a := Default()
	assert.Equal(t, 1280.0, a.Width)
	assert.Equal(t, 620.0, a.GroundY)
	assert.Equal(t, [2]float64{200, 1080}, a.Spawns)
}

func TestLoadArena(t *testing.T) {
	a, err := Load(os.DirFS("testdata"), "arenas/dojo.tmx")
	require.NoError(t, err)

	assert.Equal(t, "dojo", a.Name)
	assert.Equal(t, 1600.0, a.Width)
	assert.Equal(t, 800.0, a.Height)
	assert.Equal(t, 700.0, a.GroundY)
	assert.Equal(t, [2]float64{250, 1300}, a.Spawns, "ordered by spawnIndex")
}

func TestLoadArenaFallsBack(t *testing.T) {
	a, err := Load(os.DirFS("testdata"), "arenas/bare.tmx")
	require.NoError(t, err)

	assert.Equal(t, 1280.0, a.Width)
	assert.Equal(t, 640.0, a.Height)
	assert.Equal(t, 640.0-(cfg.Arena.Height-cfg.Arena.GroundY), a.GroundY)
	assert.Equal(t, [2]float64{cfg.Arena.SpawnOffsetX, 1280 - cfg.Arena.SpawnOffsetX}, a.Spawns)
}

func TestLoadAll(t *testing.T) {
	arenas, names, err := LoadAll(os.DirFS("testdata"), "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"bare", "dojo"}, names)
	assert.Len(t, arenas, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "arenas")
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "arenas/nope.tmx")
	assert.Error(t, err)
}
