// Package voxel implements the sparse voxel map: Block, the opaque
// per-position block descriptor, and Schematic, a Pos→Block map with an
// associated bounding-box region.
//
// Schematics are built incrementally by disjoint overlay (Schematic.Overlay):
// combining two schematics succeeds only if their position sets are
// disjoint, failing with an OverlapError otherwise. ForceOverlay skips that
// check and lets the later write win; Overlay itself calls it once the
// disjointness check has passed.
//
// Rigid transform (Schematic.Transform) moves every (pos, block) pair and
// rotates each block's directional attributes through the same rotation,
// driven by the table in rotation_table.go: a block facing +x rotated by
// geom.RotationY90 ends up facing +z.
//
// Like geom, this package never returns a taxonomy error (rherrors):
// Overlap is reported as a typed error local to this package because it is
// a recoverable precondition failure the caller chooses how to handle
// (retry with ForceOverlay, or treat as a bug), not one of the seven
// synthesis-level failure modes.
package voxel
