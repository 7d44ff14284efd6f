// Package schemcodec provides a concrete, JSON-backed
// library.SchematicCodec. Spec §1 deliberately leaves the voxel payload
// format (tile.schem, and the assembled output blob) to an external
// collaborator; this package is that collaborator's simplest possible
// implementation, used by cmd/redhdl and by this module's own tests,
// mirroring the netlist package's own house JSON exchange format
// (internal/netlist/json.go) rather than inventing a second convention.
package schemcodec
