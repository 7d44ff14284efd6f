package library

import (
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/voxel"
)

// SchematicCodec reads and writes the opaque voxel blob of one tile
// (tile.schem) or of a finished assembly. Its concrete format is outside
// this module's scope. Load does not call it; the assembly stage reads a
// tile's voxel content on demand through ReadSchematic(tile.SchemPath).
type SchematicCodec interface {
	// ReadSchematic decodes the schematic stored at path.
	ReadSchematic(path string) (*voxel.Schematic, error)
	// WriteSchematic encodes s to path.
	WriteSchematic(path string, s *voxel.Schematic) error
}

// Annotator inspects a raw tile (its schematic, plus any out-of-band
// author notes) and produces the port/pin metadata this package expects
// to find already written to meta.json. It is an external collaborator:
// this package only declares the contract a future annotation tool must
// satisfy to populate a library directory this package can Load.
type Annotator interface {
	Annotate(schematicPath string) (TileMeta, error)
}

// TileMeta is the Go shape of one tile's meta.json, matching:
//
//	{name, ports: [{name, direction, pins: [{pos, face, role}]}], occupied: [{type,...}]}
type TileMeta struct {
	Name     string       `json:"name"`
	Ports    []PortMeta   `json:"ports"`
	Occupied []RegionMeta `json:"occupied"`
}

// PortMeta is one entry of TileMeta.Ports.
type PortMeta struct {
	Name      string     `json:"name"`
	Direction string     `json:"direction"` // "in" | "out" | "inout"
	Pins      []PinMeta  `json:"pins"`
}

// PinMeta is one entry of PortMeta.Pins.
type PinMeta struct {
	Pos  [3]int `json:"pos"`
	Face string `json:"face"` // e.g. "+x", see geom.Direction.String()
	Role string `json:"role"` // "input" | "output" | "bidir"
}

// RegionMeta is one entry of TileMeta.Occupied, a tagged region variant.
// "box" uses Min/Max; "points" uses Positions. Any other Type fails
// BadTile — unknown fields elsewhere in meta.json are ignored, but an
// unrecognized occupied-region tag is not an "extra field", it is a
// region this package cannot interpret.
type RegionMeta struct {
	Type      string   `json:"type"`
	Min       *[3]int  `json:"min,omitempty"`
	Max       *[3]int  `json:"max,omitempty"`
	Positions [][3]int `json:"positions,omitempty"`
}

// Tile is one loaded, fully resolved library entry.
type Tile struct {
	Name     string
	Occupied geom.Region
	Ports    map[string]netlist.Port
	// SchemPath is the on-disk path to this tile's voxel payload
	// (tile.schem), resolved lazily via a SchematicCodec by whatever
	// caller actually needs the blocks (assembly, when it places an
	// instance of this tile) rather than eagerly by Load.
	SchemPath string
}

// Library is an immutable, loaded set of tiles keyed by their directory
// name (the "library key" instances reference).
type Library struct {
	tiles map[string]Tile
}

// Tile looks up a loaded tile by library key.
func (l *Library) Tile(key string) (Tile, bool) {
	t, ok := l.tiles[key]
	return t, ok
}

// Keys returns every loaded library key, sorted.
func (l *Library) Keys() []string {
	out := make([]string, 0, len(l.tiles))
	for k := range l.tiles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
