// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
//
// Tiled stores coordinates y-down from the top of the map. Everything returned
// here is already converted to the controller's y-up world.
package leveldata

// Level holds everything the controller needs from a TMX file.
type Level struct {
	Name        string
	Colliders   []Rect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is a static collider. X/Y is the bottom-left corner.
type Rect struct {
	Name       string
	X, Y, W, H float64
}

// SpawnPoint is where a body's feet are placed on spawn.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point with the lowest index, or the bottom centre
// of the map when the level defines none.
func (l *Level) Spawn() SpawnPoint {
	if len(l.SpawnPoints) == 0 {
		return SpawnPoint{X: float64(l.MapWidth) / 2}
	}
	best := l.SpawnPoints[0]
	for _, sp := range l.SpawnPoints[1:] {
		if sp.Index < best.Index {
			best = sp
		}
	}
	return best
}
