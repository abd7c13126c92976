package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/shared/leveldata"
)

var (
	//go:embed levels/*.tmx
	levelFS embed.FS

	//go:embed tuning/*.yaml
	tuningFS embed.FS
)

const (
	levelsDir = "levels"
	tuningDir = "tuning"
)

// LevelFS exposes the embedded TMX files to the shared loader.
func LevelFS() fs.FS {
	return levelFS
}

// LevelNames lists the embedded levels by stem name.
func LevelNames() []string {
	entries, err := levelFS.ReadDir(levelsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadLevel parses an embedded level by stem name.
func LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.LoadLevel(levelFS, path.Join(levelsDir, name+".tmx"))
}

// MustLoadLevel panics when the level is missing or malformed.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}

// TuningPresets lists the embedded tuning presets by stem name.
func TuningPresets() []string {
	matches, err := fs.Glob(tuningFS, tuningDir+"/*.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to glob tuning presets: %v", err))
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadTuning decodes an embedded tuning preset.
func LoadTuning(name string) (controller.TuningData, error) {
	data, err := tuningFS.ReadFile(path.Join(tuningDir, name+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return controller.TuningData{}, fmt.Errorf("unknown tuning preset %q (have %s)",
			name, strings.Join(TuningPresets(), ", "))
	}
	if err != nil {
		return controller.TuningData{}, fmt.Errorf("read tuning preset %s: %w", name, err)
	}
	t, err := controller.ParseTuning(data)
	if err != nil {
		return controller.TuningData{}, fmt.Errorf("tuning preset %s: %w", name, err)
	}
	return t, nil
}
