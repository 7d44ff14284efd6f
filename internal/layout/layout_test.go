package layout_test

import (
	"testing"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldOccupiedTranslatesAndRotates(t *testing.T) {
	inst := netlist.Instance{
		ID:       "a",
		Occupied: geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{1, 0, 0}},
	}
	pose := layout.Pose{Pos: geom.Pos{10, 0, 0}, Rotation: geom.RotationByID(0)}
	region := layout.WorldOccupied(inst, pose)
	assert.True(t, region.Contains(geom.Pos{10, 0, 0}))
	assert.True(t, region.Contains(geom.Pos{11, 0, 0}))
	assert.False(t, region.Contains(geom.Pos{12, 0, 0}))
}

func TestResolvePinRefUsesPlacementPose(t *testing.T) {
	inst := netlist.Instance{
		ID: "drv",
		Ports: map[string]netlist.Port{
			"out": {
				Name:      "out",
				Direction: netlist.DirOut,
				Sequences: []netlist.PinSequence{{Pins: []netlist.Pin{
					{LocalPos: geom.Pos{0, 0, 0}, Face: geom.PosX, Role: netlist.RoleOutput},
				}}},
			},
		},
	}
	nl, err := netlist.New(
		[]netlist.Instance{inst},
		[]netlist.Network{{ID: "n0", Pins: []netlist.PinRef{{Instance: "drv", Port: "out", Index: 0}}, DriverIndex: 0}},
	)
	require.NoError(t, err)

	p := layout.NewPlacement(map[netlist.InstanceID]layout.Pose{
		"drv": {Pos: geom.Pos{5, 0, 0}, Rotation: geom.Identity},
	})

	pos, face, ok := layout.ResolvePinRef(nl, p, netlist.PinRef{Instance: "drv", Port: "out", Index: 0})
	require.True(t, ok)
	assert.Equal(t, geom.Pos{5, 0, 0}, pos)
	assert.Equal(t, geom.PosX, face)
}
