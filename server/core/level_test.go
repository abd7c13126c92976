package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/platformer-controller/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevelDataEmbedded(t *testing.T) {
	data, err := LoadLevelData("", "basic")
	require.NoError(t, err)
	assert.Equal(t, "basic", data.Name)
	assert.NotEmpty(t, data.Colliders)

	_, err = LoadLevelData("", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advanced, basic")
}

func TestLoadLevelDataFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "levels"), 0o755))
	tmx, err := fs.ReadFile(assets.LevelFS(), "levels/basic.tmx")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels", "custom.tmx"), tmx, 0o644))

	data, err := LoadLevelData(dir, "custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", data.Name)

	_, err = LoadLevelData(dir, "basic")
	assert.Error(t, err)

	_, err = LoadLevelData(t.TempDir(), "custom")
	assert.Error(t, err)
}
