// Package library loads the instance library: a filesystem
// directory with one subfolder per tile, each holding tile.schem (opaque
// voxel bytes, read by a SchematicCodec this package only calls through
// an interface) and meta.json (port and pin metadata).
//
// Load walks the directory once, parses every meta.json, and fails fast
// with a *rherrors.BadTileError naming the first missing or malformed
// required field — mirroring netlist.New's "validate everything once at
// construction, stay valid forever after" contract. A *Library is
// immutable after Load returns; Instantiate is the only way to turn a
// loaded tile into a fresh netlist.Instance with a given InstanceID.
//
// The voxel payload (tile.schem) and the metadata extraction that would
// normally produce meta.json from a raw tile are both named external
// collaborators outside this package's scope: it defines the Go
// interfaces they must satisfy (SchematicCodec, Annotator) but implements
// neither. Load accepts a SchematicCodec but never calls it: tile.schem is
// not parsed up front, and the assembly stage reads it on demand.
package library
