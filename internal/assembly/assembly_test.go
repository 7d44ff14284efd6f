package assembly_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewsmike/redhdl/internal/assembly"
	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/library"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/placement"
	"github.com/andrewsmike/redhdl/internal/rherrors"
	"github.com/andrewsmike/redhdl/internal/router"
	"github.com/andrewsmike/redhdl/internal/voxel"
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

// fakeCodec returns a one-block schematic for every tile path, regardless
// of path contents, standing in for the voxel byte format that this
// module defers to an external collaborator.
type fakeCodec struct{}

func (fakeCodec) ReadSchematic(path string) (*voxel.Schematic, error) {
	return voxel.SchematicFrom(map[voxel.Pos]voxel.Block{
		{X: 0, Y: 0, Z: 0}: voxel.NewBlock("stone", geom.PosX, nil),
	}), nil
}

func (fakeCodec) WriteSchematic(path string, s *voxel.Schematic) error { return nil }

func twoTileLibrary(t *testing.T) *library.Library {
	t.Helper()
	dir := t.TempDir()
	writeTile(t, dir, "src", library.TileMeta{
		Name: "src",
		Ports: []library.PortMeta{{
			Name: "out", Direction: "out",
			Pins: []library.PinMeta{{Pos: [3]int{0, 1, 0}, Face: "+x", Role: "output"}},
		}},
		Occupied: []library.RegionMeta{{Type: "box", Min: &[3]int{0, 0, 0}, Max: &[3]int{0, 0, 0}}},
	})
	writeTile(t, dir, "snk", library.TileMeta{
		Name: "snk",
		Ports: []library.PortMeta{{
			Name: "in", Direction: "in",
			Pins: []library.PinMeta{{Pos: [3]int{0, 1, 0}, Face: "-x", Role: "input"}},
		}},
		Occupied: []library.RegionMeta{{Type: "box", Min: &[3]int{0, 0, 0}, Max: &[3]int{0, 0, 0}}},
	})

	lib, err := library.Load(dir, fakeCodec{})
	require.NoError(t, err)
	return lib
}

func twoInstanceNetlist(t *testing.T, lib *library.Library) *netlist.Netlist {
	t.Helper()
	src, err := lib.Instantiate("src", "src")
	require.NoError(t, err)
	snk, err := lib.Instantiate("snk", "snk")
	require.NoError(t, err)

	net := netlist.Network{
		ID: "n0",
		Pins: []netlist.PinRef{{Instance: "src", Port: "out", Index: 0}, {Instance: "snk", Port: "in", Index: 0}},
		DriverIndex: 0,
	}
	nl, err := netlist.New([]netlist.Instance{src, snk}, []netlist.Network{net})
	require.NoError(t, err)
	return nl
}

func TestSynthesizeRoutesSingleNetwork(t *testing.T) {
	lib := twoTileLibrary(t)
	nl := twoInstanceNetlist(t, lib)

	cfg := assembly.NewConfig(
		assembly.WithPlacement(placement.NewConfig(
			placement.WithBoundingCube(geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{6, 6, 6}}),
			placement.WithSchedule(5, 0.9, 300),
			placement.WithSeed(3),
		)),
	)

	result, err := assembly.Synthesize(nl, lib, fakeCodec{}, cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Failed)
	assert.Contains(t, result.Buses, netlist.NetworkID("n0"))
	assert.Greater(t, result.Voxels.Len(), 0)
}

func TestSynthesizeUnknownLibKeyFailsValidation(t *testing.T) {
	lib := twoTileLibrary(t)
	src, err := lib.Instantiate("src", "src")
	require.NoError(t, err)
	bad := src
	bad.LibKey = "ghost"

	// netlist.New only checks ports/pins against the instance's own claim,
	// so the dangling library key only surfaces through lib.Validate.
	nl, err := netlist.New([]netlist.Instance{bad}, nil)
	require.NoError(t, err)

	_, err = assembly.Synthesize(nl, lib, fakeCodec{}, assembly.DefaultConfig())
	require.Error(t, err)
}

// TestSynthesizeAbortsWithOverBudgetOnSearchExhaustion checks that an
// abort-policy routing failure caused by exhausting the router's search
// budget surfaces as an *rherrors.OverBudgetError, distinct from the
// generic *rherrors.UnroutableError used for a genuinely blocked or
// unreachable network.
func TestSynthesizeAbortsWithOverBudgetOnSearchExhaustion(t *testing.T) {
	lib := twoTileLibrary(t)
	nl := twoInstanceNetlist(t, lib)

	cfg := assembly.NewConfig(
		assembly.WithPlacement(placement.NewConfig(
			placement.WithBoundingCube(geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{1000, 0, 0}}),
			placement.WithSchedule(5, 0.9, 1),
			placement.WithSeed(3),
		)),
		assembly.WithRouterOptions(router.WithMaxExplored(3)),
		assembly.WithOnUnroutable(assembly.OnUnroutableAbort),
	)

	_, err := assembly.Synthesize(nl, lib, fakeCodec{}, cfg)
	var overBudget *rherrors.OverBudgetError
	require.ErrorAs(t, err, &overBudget)
}

func TestSynthesizeDeterministicForFixedSeed(t *testing.T) {
	lib := twoTileLibrary(t)
	nl := twoInstanceNetlist(t, lib)

	cfg := assembly.NewConfig(
		assembly.WithPlacement(placement.NewConfig(
			placement.WithBoundingCube(geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{6, 6, 6}}),
			placement.WithSchedule(5, 0.9, 200),
			placement.WithSeed(11),
		)),
	)

	r1, err1 := assembly.Synthesize(nl, lib, fakeCodec{}, cfg)
	r2, err2 := assembly.Synthesize(nl, lib, fakeCodec{}, cfg)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, r1.Voxels.Len(), r2.Voxels.Len())
	for id, bus := range r1.Buses {
		other, ok := r2.Buses[id]
		require.True(t, ok)
		assert.Equal(t, bus.Cost, other.Cost)
	}
}
