package router

import (
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/rherrors"
	"github.com/andrewsmike/redhdl/internal/search/astar"
)

// BlockedFunc reports whether p is off-limits to a wire, independent of
// any particular network's port mouths.
type BlockedFunc func(p geom.Pos) bool

// Bus is the voxel footprint realizing one network's connections, plus
// the total routing cost spent producing it.
type Bus struct {
	NetworkID netlist.NetworkID
	Footprint geom.PointSet
	Cost      astar.Cost
}

// Region returns the bus footprint as a geom.Region, for collision checks
// against later networks' routing.
func (b Bus) Region() geom.Region { return b.Footprint }

// InstanceObstacles returns the union of every instance's world-frame
// occupied region under p.
func InstanceObstacles(nl *netlist.Netlist, p layout.Placement) geom.Region {
	regions := make([]geom.Region, 0, nl.InstanceCount())
	for _, inst := range nl.Instances() {
		pose, ok := p.Pose(inst.ID)
		if !ok {
			continue
		}
		regions = append(regions, layout.WorldOccupied(inst, pose))
	}
	return geom.NewCompound(regions...)
}

// pathState is the A* search state: a position and the
// direction of the move that entered it. HasDir is false only for a leg's
// start state, which pays no turn penalty on its first move.
type pathState struct {
	Pos    geom.Pos
	Dir    geom.Direction
	HasDir bool
}

// legProblem routes a single leg of a network's tree from start (the
// driver, or the nearest already-connected node for later legs) to
// target, treating blocked as the union of instance occupied regions and
// prior networks' footprints — except at the positions in portMouths,
// and at positions already part of this network's own tree, which are
// always passable so a later leg can branch off of it.
type legProblem struct {
	start, target  geom.Pos
	remainingSinks int
	blocked        BlockedFunc
	portMouths     map[geom.Pos]bool
	bounds         *geom.Box
	cfg            Config
}

func (p legProblem) Start() pathState { return pathState{Pos: p.start} }

func (p legProblem) IsGoal(s pathState) bool { return s.Pos == p.target }

func (p legProblem) Heuristic(s pathState) astar.Cost {
	return astar.Cost(s.Pos.ManhattanTo(p.target)) + astar.Cost(p.remainingSinks)*p.cfg.SteinerPenaltyPerSink
}

func (p legProblem) Neighbors(s pathState) []astar.Step[pathState] {
	out := make([]astar.Step[pathState], 0, 6)
	for _, d := range geom.AllDirections {
		next := s.Pos.Add(d)
		if p.bounds != nil && !p.bounds.Contains(next) {
			continue
		}
		if !p.portMouths[next] && p.blocked(next) {
			continue
		}
		if d.IsVertical() {
			above := next.Add(geom.PosY)
			if !p.portMouths[above] && p.blocked(above) {
				continue
			}
		}
		cost := astar.Cost(1)
		if s.HasDir && s.Dir != d {
			cost += p.cfg.TurnPenalty
		}
		out = append(out, astar.Step[pathState]{
			State: pathState{Pos: next, Dir: d, HasDir: true},
			Cost:  cost,
		})
	}
	return out
}

// alwaysFree is the obstacle predicate used to test topological
// reachability when distinguishing NoPathReason Blocked from Unreachable.
func alwaysFree(geom.Pos) bool { return false }

// target pairs a sink's pin reference with its resolved world position.
type target struct {
	ref netlist.PinRef
	pos geom.Pos
}

// RouteNetwork connects net's driver to each of its sinks under placement
// p, treating instanceBlocked as occupied and priorWires (may be nil) as
// the footprint of already-routed networks in the current assembly.
func RouteNetwork(
	nl *netlist.Netlist,
	net netlist.Network,
	p layout.Placement,
	instanceBlocked BlockedFunc,
	priorWires geom.Region,
	opts ...Option,
) (Bus, error) {
	cfg := NewConfig(opts...)
	driverPos, _, ok := layout.ResolvePinRef(nl, p, net.Driver())
	if !ok {
		return Bus{}, &rherrors.InternalError{Msg: "router: unresolved driver pin for network " + string(net.ID)}
	}

	sinkRefs := net.Sinks()
	targets := make([]target, 0, len(sinkRefs))
	portMouths := map[geom.Pos]bool{driverPos: true}
	for _, ref := range sinkRefs {
		pos, _, ok := layout.ResolvePinRef(nl, p, ref)
		if !ok {
			return Bus{}, &rherrors.InternalError{Msg: "router: unresolved sink pin for network " + string(net.ID)}
		}
		targets = append(targets, target{ref: ref, pos: pos})
		portMouths[pos] = true
	}

	sort.Slice(targets, func(i, j int) bool {
		di, dj := driverPos.ManhattanTo(targets[i].pos), driverPos.ManhattanTo(targets[j].pos)
		if di != dj {
			return di < dj
		}
		if targets[i].ref.Instance != targets[j].ref.Instance {
			return targets[i].ref.Instance < targets[j].ref.Instance
		}
		if targets[i].ref.Port != targets[j].ref.Port {
			return targets[i].ref.Port < targets[j].ref.Port
		}
		return targets[i].ref.Index < targets[j].ref.Index
	})

	footprint := []geom.Pos{driverPos}
	own := map[geom.Pos]bool{driverPos: true}
	combinedBlocked := func(pos geom.Pos) bool {
		if portMouths[pos] {
			return false
		}
		if own[pos] {
			return false
		}
		if priorWires != nil && priorWires.Contains(pos) {
			return true
		}
		return instanceBlocked(pos)
	}

	maxExplored := cfg.MaxExplored
	if maxExplored <= 0 {
		maxExplored = DefaultMaxExplored
	}

	var totalCost astar.Cost
	for i, tgt := range targets {
		// Root this leg at whichever node already in the tree sits
		// closest to tgt, not always the driver, so the tree grows by
		// the shortest available branch instead of fanning out as a
		// star from the driver.
		start := driverPos
		bestDist := driverPos.ManhattanTo(tgt.pos)
		for _, pos := range footprint {
			if d := pos.ManhattanTo(tgt.pos); d < bestDist {
				bestDist = d
				start = pos
			}
		}

		leg := legProblem{
			start:          start,
			target:         tgt.pos,
			remainingSinks: len(targets) - i - 1,
			blocked:        combinedBlocked,
			portMouths:     portMouths,
			bounds:         cfg.Bounds,
			cfg:            cfg,
		}
		res := astar.Search[pathState](leg, astar.Config{MaxCost: cfg.MaxCost, MaxExplored: maxExplored})
		if res.OverBudget {
			return Bus{}, &rherrors.NoPathError{NetworkID: string(net.ID), Reason: rherrors.ReasonOverBudget}
		}
		if !res.Found {
			reason := rherrors.ReasonBlocked
			open := legProblem{start: leg.start, target: leg.target, remainingSinks: leg.remainingSinks, blocked: alwaysFree, portMouths: portMouths, bounds: cfg.Bounds, cfg: cfg}
			openRes := astar.Search[pathState](open, astar.Config{MaxExplored: maxExplored})
			if !openRes.Found && !openRes.OverBudget {
				reason = rherrors.ReasonUnreachable
			}
			return Bus{}, &rherrors.NoPathError{NetworkID: string(net.ID), Reason: reason}
		}
		totalCost += res.Cost
		for _, st := range res.Path {
			if !own[st.Pos] {
				own[st.Pos] = true
				footprint = append(footprint, st.Pos)
			}
		}
	}

	return Bus{NetworkID: net.ID, Footprint: geom.NewPointSet(footprint...), Cost: totalCost}, nil
}
