package netlist_test

import (
	"testing"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/rherrors"
	"github.com/google/uuid"
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

func twoInstanceFixture() ([]netlist.Instance, []netlist.Network) {
	src := netlist.Instance{
		ID: "src", LibKey: "src",
		Occupied: geom.Box{Min: geom.Pos{}, Max: geom.Pos{}},
		Ports:    map[string]netlist.Port{"out": outPort("out")},
	}
	snk := netlist.Instance{
		ID: "snk", LibKey: "snk",
		Occupied: geom.Box{Min: geom.Pos{}, Max: geom.Pos{}},
		Ports:    map[string]netlist.Port{"in": inPort("in")},
	}
	net := netlist.Network{
		ID:          "n0",
		Pins:        []netlist.PinRef{{Instance: "src", Port: "out", Index: 0}, {Instance: "snk", Port: "in", Index: 0}},
		DriverIndex: 0,
	}
	return []netlist.Instance{src, snk}, []netlist.Network{net}
}

func TestNewValidNetlist(t *testing.T) {
	instances, networks := twoInstanceFixture()
	nl, err := netlist.New(instances, networks)
	require.NoError(t, err)
	assert.Equal(t, 2, nl.InstanceCount())
	assert.Len(t, nl.Networks(), 1)

	id, ok := nl.NetworkContaining(netlist.PinRef{Instance: "src", Port: "out", Index: 0})
	require.True(t, ok)
	assert.Equal(t, netlist.NetworkID("n0"), id)
}

func TestNewRejectsDanglingInstance(t *testing.T) {
	instances, _ := twoInstanceFixture()
	bad := netlist.Network{ID: "n0", Pins: []netlist.PinRef{{Instance: "ghost", Port: "out", Index: 0}, {Instance: "snk", Port: "in", Index: 0}}}
	_, err := netlist.New(instances, []netlist.Network{bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, rherrors.ErrBadNetlist)
}

func TestNewRejectsDoubleClaimedPin(t *testing.T) {
	instances, networks := twoInstanceFixture()
	dup := netlist.Network{
		ID:   "n1",
		Pins: []netlist.PinRef{{Instance: "src", Port: "out", Index: 0}, {Instance: "snk", Port: "in", Index: 0}},
	}
	_, err := netlist.New(instances, append(networks, dup))
	require.Error(t, err)
	var bad *rherrors.BadNetlistError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "pin_double_claim", bad.Kind)
}

func TestNewRejectsSinkWithOutputRole(t *testing.T) {
	instances, _ := twoInstanceFixture()
	net := netlist.Network{
		ID: "n0",
		Pins: []netlist.PinRef{
			{Instance: "src", Port: "out", Index: 0},
			{Instance: "src", Port: "out", Index: 0},
		},
		DriverIndex: 0,
	}
	// Same pin used as both driver and (itself as) sink is nonsensical on
	// its own, so instead build a second output-only instance as the sink.
	out2 := netlist.Instance{ID: "src2", LibKey: "src", Occupied: geom.Box{}, Ports: map[string]netlist.Port{"out": outPort("out")}}
	net.Pins[1] = netlist.PinRef{Instance: "src2", Port: "out", Index: 0}

	_, err := netlist.New(append(instances, out2), []netlist.Network{net})
	require.Error(t, err)
	var bad *rherrors.BadNetlistError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "bad_sink_role", bad.Kind)
}

// TestNewHandlesManyUnconnectedScratchInstances builds a netlist out of a
// batch of output-only instances with no networks at all, each minted a
// unique scratch InstanceID via uuid.New rather than a hand-picked
// literal, so two runs of this test never collide on an ID even if a
// future change makes instance identity matter across runs.
func TestNewHandlesManyUnconnectedScratchInstances(t *testing.T) {
	const count = 50
	instances := make([]netlist.Instance, count)
	seen := make(map[netlist.InstanceID]bool, count)
	for i := range instances {
		id := netlist.InstanceID(uuid.NewString())
		require.False(t, seen[id], "uuid collision at index %d", i)
		seen[id] = true
		instances[i] = netlist.Instance{
			ID: id, LibKey: "src",
			Occupied: geom.Box{Min: geom.Pos{int32(i), 0, 0}, Max: geom.Pos{int32(i), 0, 0}},
			Ports:    map[string]netlist.Port{"out": outPort("out")},
		}
	}

	nl, err := netlist.New(instances, nil)
	require.NoError(t, err)
	assert.Equal(t, count, nl.InstanceCount())
}

func TestJSONRoundTrip(t *testing.T) {
	instances, networks := twoInstanceFixture()
	nl, err := netlist.New(instances, networks)
	require.NoError(t, err)

	data, err := netlist.EncodeJSON(nl)
	require.NoError(t, err)

	byID := make(map[netlist.InstanceID]netlist.Instance, len(instances))
	for _, inst := range instances {
		byID[inst.ID] = inst
	}
	resolver := func(id netlist.InstanceID, libKey string, ports map[string][]string) (netlist.Instance, error) {
		return byID[id], nil
	}

	decoded, err := netlist.DecodeJSON(data, resolver)
	require.NoError(t, err)
	assert.Equal(t, nl.InstanceCount(), decoded.InstanceCount())
	assert.Len(t, decoded.Networks(), len(nl.Networks()))
}
