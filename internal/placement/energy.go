package placement

import (
	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/router"
)

// energy scores a placement (lower is better) as a weighted sum of three
// terms: total driver-to-sink Manhattan wire length, an optional
// collision-relaxed routing-cost estimate, and an overlap penalty
// counting every pair of instances whose occupied regions intersect (a
// state the neighbor operator should never produce, but the initial
// state and energy function are kept independently correct).
func energy(nl *netlist.Netlist, p layout.Placement, cfg Config) float64 {
	total := cfg.WireLengthWeight * wireLength(nl, p)
	total += cfg.OverlapWeight * float64(overlapCount(nl, p))

	if cfg.UseRoutingEnergy {
		result := router.Presolve(nl, p, instanceBlockedFunc(nl, p), cfg.RouterOptions...)
		total += cfg.RoutingEnergyWeight * float64(result.TotalCost)
		total += cfg.OverlapWeight * float64(result.Collisions)
	}

	return total
}

// wireLength sums, over every network, the Manhattan distance from the
// driver pin to every sink pin.
func wireLength(nl *netlist.Netlist, p layout.Placement) float64 {
	var total float64
	for _, net := range nl.Networks() {
		driverPos, _, ok := layout.ResolvePinRef(nl, p, net.Driver())
		if !ok {
			continue
		}
		for _, sink := range net.Sinks() {
			sinkPos, _, ok := layout.ResolvePinRef(nl, p, sink)
			if !ok {
				continue
			}
			total += float64(driverPos.ManhattanTo(sinkPos))
		}
	}
	return total
}

// overlapCount counts every pair of instances whose world-frame occupied
// regions intersect.
func overlapCount(nl *netlist.Netlist, p layout.Placement) int {
	ids := p.InstanceIDs()
	regions := make([]geom.Region, 0, len(ids))
	for _, id := range ids {
		inst, ok := nl.Instance(id)
		if !ok {
			continue
		}
		pose, _ := p.Pose(id)
		regions = append(regions, layout.WorldOccupied(inst, pose))
	}

	count := 0
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if geom.Intersects(regions[i], regions[j]) {
				count++
			}
		}
	}
	return count
}

// instanceBlockedFunc returns a router.BlockedFunc that treats every
// instance's world-frame occupied region in p as an obstacle, for use by
// the routing-energy term's Presolve call.
func instanceBlockedFunc(nl *netlist.Netlist, p layout.Placement) router.BlockedFunc {
	obstacles := router.InstanceObstacles(nl, p)
	return obstacles.Contains
}
