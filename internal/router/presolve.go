package router

import (
	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/search/astar"
)

// PresolveResult is the outcome of the collision-relaxed pre-solver (spec
// §4.5): a total routing cost and a count of wire/wire collisions, used as
// a cheap placement objective. It is never used to produce the final bus
// layout.
type PresolveResult struct {
	TotalCost  astar.Cost
	Collisions int
}

// Presolve routes every network in nl independently, ignoring collisions
// between different networks' wires (but not instance collisions), and
// reports the summed cost and the number of extra claims on shared voxels
// (a voxel in k networks' footprints counts k-1). A network that fails to route at all is
// charged cfg.UnroutablePenalty instead of aborting the whole pre-solve,
// since this is a scoring pass over possibly-bad placements, not a build.
func Presolve(nl *netlist.Netlist, p layout.Placement, instanceBlocked BlockedFunc, opts ...Option) PresolveResult {
	cfg := NewConfig(opts...)
	occupancy := make(map[geom.Pos]int)
	var total astar.Cost

	for _, net := range nl.Networks() {
		bus, err := RouteNetwork(nl, net, p, instanceBlocked, nil, WithConfig(cfg))
		if err != nil {
			total += cfg.UnroutablePenalty
			continue
		}
		total += bus.Cost
		for pos := range bus.Footprint.Iter() {
			occupancy[pos]++
		}
	}

	collisions := 0
	for _, count := range occupancy {
		if count > 1 {
			collisions += count - 1
		}
	}

	return PresolveResult{TotalCost: total, Collisions: collisions}
}
