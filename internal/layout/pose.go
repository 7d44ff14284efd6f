package layout

import (
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/netlist"
)

// Pose is an instance's position and rotation in the world frame.
type Pose struct {
	Pos      geom.Pos
	Rotation geom.Rotation
}

// Placement assigns a Pose to every instance of a netlist.
type Placement struct {
	poses map[netlist.InstanceID]Pose
}

// NewPlacement builds a Placement from a complete instance->pose map. The
// caller owns poses after the call; NewPlacement copies it.
func NewPlacement(poses map[netlist.InstanceID]Pose) Placement {
	out := make(map[netlist.InstanceID]Pose, len(poses))
	for id, pose := range poses {
		out[id] = pose
	}
	return Placement{poses: out}
}

// Pose returns the pose assigned to id, and whether one was assigned.
func (p Placement) Pose(id netlist.InstanceID) (Pose, bool) {
	pose, ok := p.poses[id]
	return pose, ok
}

// InstanceIDs returns every instance this placement assigns a pose to,
// sorted by InstanceID so callers that index into the result (e.g. the
// placement engine's neighbor operator picking "a random instance") get a
// deterministic instance for a given random draw.
func (p Placement) InstanceIDs() []netlist.InstanceID {
	out := make([]netlist.InstanceID, 0, len(p.poses))
	for id := range p.poses {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// With returns a copy of p with id's pose set to pose, leaving p
// unmodified. Used by the placement engine's neighbor operator, which
// must not mutate the current state a caller may still hold.
func (p Placement) With(id netlist.InstanceID, pose Pose) Placement {
	out := make(map[netlist.InstanceID]Pose, len(p.poses)+1)
	for k, v := range p.poses {
		out[k] = v
	}
	out[id] = pose
	return Placement{poses: out}
}

// WorldOccupied returns inst's occupied region transformed into the world
// frame by pose: rotated about the local origin, then translated.
func WorldOccupied(inst netlist.Instance, pose Pose) geom.Region {
	return inst.Occupied.RotateAround(geom.Pos{}, pose.Rotation).Translate(pose.Pos)
}

// WorldPin returns the world-frame position and facing of a local pin
// under pose.
func WorldPin(pin netlist.Pin, pose Pose) (geom.Pos, geom.Direction) {
	worldPos := pose.Rotation.RotatePos(pin.LocalPos, geom.Pos{}).Translate(pose.Pos)
	worldFace := pose.Rotation.Apply(pin.Face)
	return worldPos, worldFace
}

// ResolvePinRef looks up the pin named by ref in nl, resolves its world
// position and facing under the instance's pose in p, and reports whether
// both the instance and the pin exist.
func ResolvePinRef(nl *netlist.Netlist, p Placement, ref netlist.PinRef) (pos geom.Pos, face geom.Direction, ok bool) {
	inst, found := nl.Instance(ref.Instance)
	if !found {
		return geom.Pos{}, 0, false
	}
	port, found := inst.Ports[ref.Port]
	if !found {
		return geom.Pos{}, 0, false
	}
	pin, found := port.PinAt(ref.Index)
	if !found {
		return geom.Pos{}, 0, false
	}
	pose, found := p.Pose(ref.Instance)
	if !found {
		return geom.Pos{}, 0, false
	}
	worldPos, worldFace := WorldPin(pin, pose)
	return worldPos, worldFace, true
}
