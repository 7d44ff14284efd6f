package placement_test

import (
	"testing"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/placement"
	"github.com/andrewsmike/redhdl/internal/rherrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outPort(name string) netlist.Port {
	return netlist.Port{
		Name: name, Direction: netlist.DirOut,
		Sequences: []netlist.PinSequence{{Pins: []netlist.Pin{{Face: geom.PosX, Role: netlist.RoleOutput}}}},
	}
}

func inPort(name string) netlist.Port {
	return netlist.Port{
		Name: name, Direction: netlist.DirIn,
		Sequences: []netlist.PinSequence{{Pins: []netlist.Pin{{Face: geom.NegX, Role: netlist.RoleInput}}}},
	}
}

func twoInstanceFixture(t *testing.T) *netlist.Netlist {
	t.Helper()
	src := netlist.Instance{
		ID: "src", LibKey: "src",
		Occupied: geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{0, 0, 0}},
		Ports:    map[string]netlist.Port{"out": outPort("out")},
	}
	snk := netlist.Instance{
		ID: "snk", LibKey: "snk",
		Occupied: geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{0, 0, 0}},
		Ports:    map[string]netlist.Port{"in": inPort("in")},
	}
	net := netlist.Network{
		ID:          "n0",
		Pins:        []netlist.PinRef{{Instance: "src", Port: "out", Index: 0}, {Instance: "snk", Port: "in", Index: 0}},
		DriverIndex: 0,
	}
	nl, err := netlist.New([]netlist.Instance{src, snk}, []netlist.Network{net})
	require.NoError(t, err)
	return nl
}

func TestRunPlacesTwoInstancesAdjacently(t *testing.T) {
	nl := twoInstanceFixture(t)
	cfg := placement.NewConfig(
		placement.WithBoundingCube(geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{5, 5, 5}}),
		placement.WithSchedule(5, 0.9, 300),
		placement.WithSeed(1),
	)

	result, err := placement.Run(nl, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Placement.InstanceIDs(), 2)
	// Each pin sits at its instance's origin, so a wire-length energy of 1
	// means the two instances are adjacent.
	assert.Equal(t, 1.0, result.Report.BestEnergy)
}

func TestRunInfeasibleWithTooSmallBoundingCube(t *testing.T) {
	nl := twoInstanceFixture(t)
	// Every instance occupies a single voxel, so a 1x1x1 cube can fit only
	// one of the two instances without collision.
	cfg := placement.NewConfig(
		placement.WithBoundingCube(geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{0, 0, 0}}),
		placement.WithRejectionBudget(50),
		placement.WithSeed(1),
	)

	_, err := placement.Run(nl, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, rherrors.ErrInfeasible)
}

func TestRunDeterministicForFixedSeed(t *testing.T) {
	nl := twoInstanceFixture(t)
	cfg := placement.NewConfig(
		placement.WithBoundingCube(geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{6, 6, 6}}),
		placement.WithSchedule(5, 0.9, 200),
		placement.WithSeed(42),
	)

	r1, err1 := placement.Run(nl, cfg)
	r2, err2 := placement.Run(nl, cfg)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, r1.Report.BestEnergy, r2.Report.BestEnergy)
	for _, id := range r1.Placement.InstanceIDs() {
		p1, _ := r1.Placement.Pose(id)
		p2, _ := r2.Placement.Pose(id)
		assert.Equal(t, p1, p2)
	}
}

func TestRunMultipleWorkersNeverWorsensBestEnergy(t *testing.T) {
	nl := twoInstanceFixture(t)
	base := placement.NewConfig(
		placement.WithBoundingCube(geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{6, 6, 6}}),
		placement.WithSchedule(5, 0.9, 200),
		placement.WithSeed(7),
		placement.WithWorkers(1),
	)
	many := base
	many.Workers = 4

	single, err := placement.Run(nl, base)
	require.NoError(t, err)
	multi, err := placement.Run(nl, many)
	require.NoError(t, err)

	assert.LessOrEqual(t, multi.Report.BestEnergy, single.Report.BestEnergy+1e-9)
}
