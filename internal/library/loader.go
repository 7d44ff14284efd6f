package library

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/rherrors"
)

// Load walks dir, one subfolder per tile, parsing meta.json in each into
// a Tile. codec is accepted for interface completeness (a future caller
// that also wants the voxel payload eagerly can use it), but Load itself
// only needs meta.json; tile.schem is resolved lazily by assembly when it
// actually places an instance.
//
// Subfolders are visited in lexical order so a BadTile failure is
// deterministic for a given directory tree.
func Load(dir string, codec SchematicCodec) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &rherrors.BadTileError{Path: dir, Field: "<directory>"}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	tiles := make(map[string]Tile, len(names))
	for _, name := range names {
		tileDir := filepath.Join(dir, name)
		tile, err := loadTile(tileDir)
		if err != nil {
			return nil, err
		}
		tiles[name] = tile
	}

	return &Library{tiles: tiles}, nil
}

func loadTile(tileDir string) (Tile, error) {
	metaPath := filepath.Join(tileDir, "meta.json")
	raw, err := os.ReadFile(metaPath)
	if err != nil {
		return Tile{}, &rherrors.BadTileError{Path: metaPath, Field: "<file>"}
	}

	var meta TileMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Tile{}, &rherrors.BadTileError{Path: metaPath, Field: "<json>"}
	}

	if meta.Name == "" {
		return Tile{}, &rherrors.BadTileError{Path: metaPath, Field: "name"}
	}

	ports := make(map[string]netlist.Port, len(meta.Ports))
	for _, pm := range meta.Ports {
		port, err := resolvePort(pm, metaPath)
		if err != nil {
			return Tile{}, err
		}
		ports[port.Name] = port
	}

	occupied, err := resolveOccupied(meta.Occupied, metaPath)
	if err != nil {
		return Tile{}, err
	}

	return Tile{Name: meta.Name, Occupied: occupied, Ports: ports, SchemPath: filepath.Join(tileDir, "tile.schem")}, nil
}

func resolvePort(pm PortMeta, metaPath string) (netlist.Port, error) {
	if pm.Name == "" {
		return netlist.Port{}, &rherrors.BadTileError{Path: metaPath, Field: "ports[].name"}
	}
	var dir netlist.PortDirection
	switch pm.Direction {
	case "in":
		dir = netlist.DirIn
	case "out":
		dir = netlist.DirOut
	case "inout":
		dir = netlist.DirInout
	default:
		return netlist.Port{}, &rherrors.BadTileError{Path: metaPath, Field: "ports[].direction"}
	}

	pins := make([]netlist.Pin, 0, len(pm.Pins))
	for _, pinm := range pm.Pins {
		face, ok := geom.ParseDirection(pinm.Face)
		if !ok {
			return netlist.Port{}, &rherrors.BadTileError{Path: metaPath, Field: "ports[].pins[].face"}
		}
		var role netlist.PinRole
		switch pinm.Role {
		case "input":
			role = netlist.RoleInput
		case "output":
			role = netlist.RoleOutput
		case "bidir":
			role = netlist.RoleBidir
		default:
			return netlist.Port{}, &rherrors.BadTileError{Path: metaPath, Field: "ports[].pins[].role"}
		}
		pins = append(pins, netlist.Pin{
			LocalPos: geom.Pos{X: int32(pinm.Pos[0]), Y: int32(pinm.Pos[1]), Z: int32(pinm.Pos[2])},
			Face:     face,
			Role:     role,
		})
	}

	return netlist.Port{
		Name:      pm.Name,
		Direction: dir,
		Sequences: []netlist.PinSequence{{Pins: pins}},
	}, nil
}

func resolveOccupied(regions []RegionMeta, metaPath string) (geom.Region, error) {
	if len(regions) == 0 {
		return nil, &rherrors.BadTileError{Path: metaPath, Field: "occupied"}
	}
	children := make([]geom.Region, 0, len(regions))
	for _, rm := range regions {
		switch rm.Type {
		case "box":
			if rm.Min == nil || rm.Max == nil {
				return nil, &rherrors.BadTileError{Path: metaPath, Field: "occupied[].min/max"}
			}
			children = append(children, geom.Box{
				Min: geom.Pos{X: int32(rm.Min[0]), Y: int32(rm.Min[1]), Z: int32(rm.Min[2])},
				Max: geom.Pos{X: int32(rm.Max[0]), Y: int32(rm.Max[1]), Z: int32(rm.Max[2])},
			})
		case "points":
			pts := make([]geom.Pos, len(rm.Positions))
			for i, p := range rm.Positions {
				pts[i] = geom.Pos{X: int32(p[0]), Y: int32(p[1]), Z: int32(p[2])}
			}
			children = append(children, geom.NewPointSet(pts...))
		default:
			return nil, &rherrors.BadTileError{Path: metaPath, Field: "occupied[].type"}
		}
	}
	if len(children) == 1 {
		return children[0], nil
	}
	compound := geom.NewCompound(children...)
	return compound, nil
}
