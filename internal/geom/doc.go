// Package geom implements the geometry kernel: integer positions, the six
// axis-aligned directions and their 24-element rotation group, regions
// (point sets, axis-aligned boxes, and compounds of either), and the rigid
// transforms (translate + rotate) used throughout placement and routing.
//
// Every value in this package is immutable once constructed and cheap to
// copy: Pos and Direction are flat int32 triples/enums, Box is two Pos
// values, and the heavier PointSet/Compound variants are built once and
// never mutated in place. This matters because Pos and Direction values
// are map keys in A*'s closed and cost maps (package search/astar), via
// the router's search state.
//
// Region intersection is the hot path for collision detection during
// placement and routing. Compound-vs-compound tests short-circuit on
// bounding boxes before falling back to per-child tests; a PointSet
// compares the smaller set's members against the larger set's membership
// index rather than enumerating the full cross product.
//
// No operation in this package returns an error: geometry is total over
// its inputs, and absence is represented by zero-valued or empty results,
// never by panics or domain errors (see rherrors for where domain errors
// start).
package geom
