package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="5">
 <tileset firstgid="1" name="solid" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="solid.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="Solid" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,0,0
</data>
 </layer>
 <objectgroup id="2" name="Colliders">
  <object id="1" name="ledge" x="32" y="8" width="32" height="8"/>
  <object id="2" name="marker" x="0" y="0"/>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="3" x="40" y="40">
   <point/>
  </object>
  <object id="4" x="8" y="32">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const emptyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Colliders"/>
</map>
`

func TestLoadLevelFlipsToWorldSpace(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	level, err := LoadLevel(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 64, level.MapWidth)
	assert.Equal(t, 48, level.MapHeight)
	assert.Equal(t, []Rect{
		{X: 0, Y: 0, W: 16, H: 16},
		{X: 16, Y: 0, W: 16, H: 16},
		{Name: "ledge", X: 32, Y: 32, W: 32, H: 8},
	}, level.Colliders)
	assert.Equal(t, []SpawnPoint{
		{X: 8, Y: 16, Index: 1},
		{X: 40, Y: 8, Index: 0},
	}, level.SpawnPoints)
	assert.Equal(t, SpawnPoint{X: 40, Y: 8}, level.Spawn())
}

func TestLoadLevelRequiresColliders(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyTMX)}}

	_, err := LoadLevel(fsys, "empty.tmx")
	assert.Error(t, err)

	_, err = LoadLevel(fsys, "missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
		"levels/c.txt": {Data: []byte("ignored")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestSpawnFallsBackToMapCentre(t *testing.T) {
	level := &Level{MapWidth: 100, MapHeight: 50}
	assert.Equal(t, SpawnPoint{X: 50}, level.Spawn())
}
