// Package assembly implements the top-level synthesize orchestration:
// validate a netlist against a library, run the placement engine, route
// every network in ascending driver-to-sink bounding-box volume order,
// and overlay the result into one voxel map.
//
// Unlike internal/router's Presolve (collision-relaxed, used only to
// score candidate placements), the routing pass here is sequential and
// collision-aware: each network's footprint becomes an obstacle for every
// network routed after it, since each leg depends on prior legs'
// footprints.
package assembly
