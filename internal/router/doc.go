// Package router implements the path router (bussing): for a
// placed netlist, compute a 1-block-wide wire path connecting each
// network's driver to each of its sinks, avoiding instance occupied
// regions and the footprints of previously routed networks.
//
// The search state is (Pos, entering_direction), grounded on
// internal/search/astar.Problem the same way internal/placement's SA state
// is grounded on internal/search/anneal.Problem: a thin per-call Problem
// implementation (legProblem) wraps the geometry and obstacle predicate,
// and the generic engine does the graph search.
//
// A multi-sink network is routed as a sequence of single-sink legs,
// attacked in nearest-to-driver-first order as a greedy Steiner
// approximation: the first leg runs driver to nearest sink, and each
// later leg roots at whichever node already in the growing tree (the
// driver or any earlier leg's footprint) is closest to its target, free
// to branch off that footprint rather than detour around it.
package router
