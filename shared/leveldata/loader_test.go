package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/overworld/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="6">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="4" columns="4">
  <image source="tiles.png" width="64" height="16"/>
 </tileset>
 <layer id="1" name="blocks" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,0,1
</data>
 </layer>
 <objectgroup id="2" name="entries">
  <object id="1" name="0" x="16" y="16"/>
  <object id="2" name="door" x="32" y="16"/>
 </objectgroup>
 <objectgroup id="3" name="exits">
  <object id="3" x="32" y="40" width="16" height="8">
   <properties>
    <property name="scene" value="yard"/>
    <property name="entry" value="gate"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="characters">
  <object id="4" name="guard" x="20" y="18">
   <properties>
    <property name="name" value="npc"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const yardTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <layer id="1" name="floor" width="2" height="2">
  <data encoding="csv">
0,0,
0,0
</data>
 </layer>
 <objectgroup id="2" name="entries">
  <object id="1" name="gate" x="0" y="0"/>
 </objectgroup>
</map>
`

func roomsFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadReadsBlocksEntriesExitsAndCharacters(t *testing.T) {
	fsys := roomsFS(map[string]string{"rooms/hall.tmx": hallTMX})

	room, err := Load(fsys, "rooms/hall.tmx")
	require.NoError(t, err)

	assert.Equal(t, "hall", room.Name)
	assert.Equal(t, 64, room.Width)
	assert.Equal(t, 48, room.Height)
	assert.Len(t, room.Blocks, 9)
	assert.Contains(t, room.Blocks, gamemath.NewRect(0, 16, 16, 16))
	assert.NotContains(t, room.Blocks, gamemath.NewRect(16, 16, 16, 16))

	entry, ok := room.Entry("0")
	require.True(t, ok)
	assert.Equal(t, Entry{Name: "0", X: 16, Y: 16}, entry)
	assert.Len(t, room.Entries, 2)

	require.Len(t, room.Exits, 1)
	assert.Equal(t, Exit{Area: gamemath.NewRect(32, 40, 16, 8), Scene: "yard", Entry: "gate"}, room.Exits[0])

	require.Len(t, room.Characters, 1)
	assert.Equal(t, Placement{Name: "npc", X: 20, Y: 18}, room.Characters[0])
}

func TestLoadMissingFileWrapsError(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "rooms/nowhere.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rooms/nowhere.tmx")
}

func TestLoadAllSortsNamesAndValidates(t *testing.T) {
	fsys := roomsFS(map[string]string{
		"rooms/yard.tmx": yardTMX,
		"rooms/hall.tmx": hallTMX,
	})

	rooms, names, err := LoadAll(fsys, "rooms")
	require.NoError(t, err)

	assert.Equal(t, []string{"hall", "yard"}, names)
	assert.NoError(t, Validate(rooms))
}

func TestLoadAllEmptyDirFails(t *testing.T) {
	_, _, err := LoadAll(fstest.MapFS{}, "rooms")
	assert.Error(t, err)
}

func TestValidateRejectsDanglingExit(t *testing.T) {
	fsys := roomsFS(map[string]string{"rooms/hall.tmx": hallTMX})
	rooms, _, err := LoadAll(fsys, "rooms")
	require.NoError(t, err)

	err = Validate(rooms)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yard")
}
