package library_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewsmike/redhdl/internal/library"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/rherrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTile(t *testing.T, root, name string, meta library.TileMeta) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data, err := json.Marshal(meta)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.json"), data, 0o644))
}

func srcMeta() library.TileMeta {
	return library.TileMeta{
		Name: "src",
		Ports: []library.PortMeta{{
			Name: "out", Direction: "out",
			Pins: []library.PinMeta{{Pos: [3]int{0, 1, 0}, Face: "+x", Role: "output"}},
		}},
		Occupied: []library.RegionMeta{{Type: "box", Min: &[3]int{0, 0, 0}, Max: &[3]int{0, 0, 0}}},
	}
}

func TestLoadValidTile(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, "src", srcMeta())

	lib, err := library.Load(dir, nil)
	require.NoError(t, err)

	tile, ok := lib.Tile("src")
	require.True(t, ok)
	assert.Equal(t, "src", tile.Name)
	assert.Contains(t, tile.Ports, "out")
}

func TestLoadMissingFieldFails(t *testing.T) {
	dir := t.TempDir()
	bad := srcMeta()
	bad.Name = ""
	writeTile(t, dir, "src", bad)

	_, err := library.Load(dir, nil)
	require.Error(t, err)
	var badTile *rherrors.BadTileError
	require.ErrorAs(t, err, &badTile)
	assert.Equal(t, "name", badTile.Field)
}

func TestLoadBadFaceFails(t *testing.T) {
	dir := t.TempDir()
	bad := srcMeta()
	bad.Ports[0].Pins[0].Face = "north-ish"
	writeTile(t, dir, "src", bad)

	_, err := library.Load(dir, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, rherrors.ErrBadTile)
}

func TestInstantiateUnknownKeyFails(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, "src", srcMeta())
	lib, err := library.Load(dir, nil)
	require.NoError(t, err)

	_, err = lib.Instantiate(netlist.InstanceID("x"), "does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, rherrors.ErrBadNetlist)
}

func TestInstantiateSharesGeometry(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, "src", srcMeta())
	lib, err := library.Load(dir, nil)
	require.NoError(t, err)

	inst, err := lib.Instantiate(netlist.InstanceID("u0"), "src")
	require.NoError(t, err)
	assert.Equal(t, netlist.InstanceID("u0"), inst.ID)
	assert.Equal(t, "src", inst.LibKey)
	require.Contains(t, inst.Ports, "out")
	assert.Equal(t, 1, inst.Ports["out"].Width())
}
