package core

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/automoto/platformer-controller/assets"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	tagSolid  = "solid"
	tagPlayer = "player"
	cellSize  = 16
)

// ServerLevel holds the server's collision space and spawn data for a level.
type ServerLevel struct {
	Name        string
	Space       *resolv.Space
	SpawnPoints []leveldata.SpawnPoint
	MapWidth    int
	MapHeight   int

	data *leveldata.Level
}

// NewServerLevel builds a resolv.Space from parsed level data and registers
// every rectangle as a collider in w.
func NewServerLevel(w donburi.World, data *leveldata.Level) *ServerLevel {
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, cellSize, cellSize)

	for _, r := range data.Colliders {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
		controller.SpawnCollider(w, obj)
	}

	log.Printf("Loaded level %s: %d colliders, %d spawn points, %dx%d map",
		data.Name, len(data.Colliders), len(data.SpawnPoints), data.MapWidth, data.MapHeight)

	return &ServerLevel{
		Name:        data.Name,
		Space:       space,
		SpawnPoints: data.SpawnPoints,
		MapWidth:    data.MapWidth,
		MapHeight:   data.MapHeight,
		data:        data,
	}
}

// Spawn returns the level's primary spawn point.
func (l *ServerLevel) Spawn() leveldata.SpawnPoint {
	return l.data.Spawn()
}

// LoadLevelData reads a level by name, from assetsDir/levels when a
// directory is given and from the embedded assets otherwise. Every level in
// the directory is parsed so a broken sibling is reported up front.
func LoadLevelData(assetsDir, name string) (*leveldata.Level, error) {
	fsys := assets.LevelFS()
	source := "embedded assets"
	if assetsDir != "" {
		fsys = os.DirFS(assetsDir)
		source = assetsDir
	}

	levels, names, err := leveldata.LoadAllLevels(fsys, "levels")
	if err != nil {
		return nil, fmt.Errorf("load levels from %s: %w", source, err)
	}
	data, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found in %s (have %s)", name, source, strings.Join(names, ", "))
	}
	return data, nil
}
