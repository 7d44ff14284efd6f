package assembly

import (
	"errors"
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/library"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/placement"
	"github.com/andrewsmike/redhdl/internal/rherrors"
	"github.com/andrewsmike/redhdl/internal/router"
	"github.com/andrewsmike/redhdl/internal/voxel"
)

// Assembly is the result of synthesize: a placement, the buses routed for
// each network that succeeded, the IDs of networks that failed under an
// OnUnroutableSkip policy, and the final composed voxel map.
type Assembly struct {
	Placement layout.Placement
	Buses     map[netlist.NetworkID]router.Bus
	Failed    []netlist.NetworkID
	Voxels    *voxel.Schematic
}

// Synthesize runs the full pipeline: validate nl against lib, place its
// instances, route every network in ascending driver-to-sink
// bounding-box volume order, and overlay the placed instance schematics
// (loaded on demand through codec) with every routed bus footprint into
// one voxel map.
func Synthesize(nl *netlist.Netlist, lib *library.Library, codec library.SchematicCodec, cfg Config) (*Assembly, error) {
	if err := lib.Validate(nl); err != nil {
		return nil, err
	}

	placed, err := placement.Run(nl, cfg.Placement)
	if err != nil {
		return nil, err
	}

	order := routingOrder(nl, placed.Placement)
	bounds := routingBounds(nl, placed.Placement, cfg.BoundsMargin)
	routerOpts := append(append([]router.Option{}, cfg.RouterOptions...), router.WithBounds(bounds))

	instanceBlocked := router.InstanceObstacles(nl, placed.Placement).Contains
	buses := make(map[netlist.NetworkID]router.Bus, len(order))
	var failed []netlist.NetworkID
	var routedFootprints []geom.Region

	for _, net := range order {
		var priorWires geom.Region
		if len(routedFootprints) > 0 {
			priorWires = geom.NewCompound(routedFootprints...)
		}

		bus, err := router.RouteNetwork(nl, net, placed.Placement, instanceBlocked, priorWires, routerOpts...)
		if err != nil {
			if cfg.OnUnroutable == OnUnroutableAbort {
				var noPath *rherrors.NoPathError
				if errors.As(err, &noPath) && noPath.Reason == rherrors.ReasonOverBudget {
					return nil, &rherrors.OverBudgetError{Component: "router"}
				}
				return nil, &rherrors.UnroutableError{NetworkID: string(net.ID)}
			}
			failed = append(failed, net.ID)
			continue
		}

		buses[net.ID] = bus
		routedFootprints = append(routedFootprints, bus.Region())
	}

	voxels, err := composeVoxels(nl, placed.Placement, lib, codec, buses)
	if err != nil {
		return nil, err
	}

	return &Assembly{
		Placement: placed.Placement,
		Buses:     buses,
		Failed:    failed,
		Voxels:    voxels,
	}, nil
}

// routingOrder sorts nl's networks by ascending driver-to-sink
// bounding-box volume, routing tight nets first, with a stable
// lexicographic NetworkID tie-break.
func routingOrder(nl *netlist.Netlist, p layout.Placement) []netlist.Network {
	networks := append([]netlist.Network(nil), nl.Networks()...)
	sort.SliceStable(networks, func(i, j int) bool {
		vi, vj := driverSinkVolume(nl, p, networks[i]), driverSinkVolume(nl, p, networks[j])
		if vi != vj {
			return vi < vj
		}
		return networks[i].ID < networks[j].ID
	})
	return networks
}

func driverSinkVolume(nl *netlist.Netlist, p layout.Placement, net netlist.Network) int64 {
	positions := make([]geom.Pos, 0, len(net.Pins))
	for _, ref := range net.Pins {
		pos, _, ok := layout.ResolvePinRef(nl, p, ref)
		if ok {
			positions = append(positions, pos)
		}
	}
	return boxAround(positions).Volume()
}

// routingBounds is the placed instances' bounding box, padded by margin
// on every side, used to bound the final routing pass's search space
// (see DESIGN.md's router Bounds resolution).
func routingBounds(nl *netlist.Netlist, p layout.Placement, margin int32) geom.Box {
	positions := make([]geom.Pos, 0, 2*nl.InstanceCount())
	for _, inst := range nl.Instances() {
		pose, ok := p.Pose(inst.ID)
		if !ok {
			continue
		}
		region := layout.WorldOccupied(inst, pose)
		bbox := geom.BBoxOf(region)
		positions = append(positions, bbox.Min, bbox.Max)
	}
	box := boxAround(positions)
	return geom.Box{
		Min: geom.Pos{X: box.Min.X - margin, Y: box.Min.Y - margin, Z: box.Min.Z - margin},
		Max: geom.Pos{X: box.Max.X + margin, Y: box.Max.Y + margin, Z: box.Max.Z + margin},
	}
}

func boxAround(positions []geom.Pos) geom.Box {
	if len(positions) == 0 {
		return geom.EmptyBox
	}
	box := geom.Box{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Z < box.Min.Z {
			box.Min.Z = p.Z
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
		if p.Z > box.Max.Z {
			box.Max.Z = p.Z
		}
	}
	return box
}

// composeVoxels builds the final voxel map by disjoint overlay of every
// placed instance's schematic (loaded through codec and transformed to
// its world pose) and every routed bus's footprint, materialized as
// plain redstone_wire blocks. Any overlap is an invariant violation, not
// a recoverable condition: it means the placement or routing passes
// produced colliding geometry despite their own collision checks.
func composeVoxels(nl *netlist.Netlist, p layout.Placement, lib *library.Library, codec library.SchematicCodec, buses map[netlist.NetworkID]router.Bus) (*voxel.Schematic, error) {
	pieces := make([]*voxel.Schematic, 0, nl.InstanceCount()+len(buses))

	for _, inst := range nl.Instances() {
		pose, ok := p.Pose(inst.ID)
		if !ok {
			continue
		}
		tile, ok := lib.Tile(inst.LibKey)
		if !ok {
			return nil, &rherrors.InternalError{Msg: "assembly: instance " + string(inst.ID) + " references unloaded tile " + inst.LibKey}
		}
		local, err := codec.ReadSchematic(tile.SchemPath)
		if err != nil {
			return nil, &rherrors.InternalError{Msg: "assembly: failed to read schematic for tile " + inst.LibKey + ": " + err.Error()}
		}
		pieces = append(pieces, local.Transform(geom.Pos{}, pose.Pos, pose.Rotation))
	}

	netIDs := make([]netlist.NetworkID, 0, len(buses))
	for id := range buses {
		netIDs = append(netIDs, id)
	}
	sort.Slice(netIDs, func(i, j int) bool { return netIDs[i] < netIDs[j] })
	for _, id := range netIDs {
		pieces = append(pieces, wireSchematic(buses[id]))
	}

	merged, err := voxel.OverlayAll(pieces...)
	if err != nil {
		return nil, &rherrors.InternalError{Msg: "assembly: " + err.Error()}
	}
	return merged, nil
}

func wireSchematic(bus router.Bus) *voxel.Schematic {
	blocks := make(map[voxel.Pos]voxel.Block, bus.Footprint.Len())
	for pos := range bus.Footprint.Iter() {
		blocks[pos] = voxel.NewBlock("redstone_wire", 0, nil)
	}
	return voxel.SchematicFrom(blocks)
}
