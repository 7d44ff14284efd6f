package schemcodec

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/voxel"
)

// blockJSON is the on-the-wire shape of one occupied voxel.
type blockJSON struct {
	Pos    [3]int32          `json:"pos"`
	Kind   string            `json:"kind"`
	Facing string            `json:"facing"`
	Attrs  map[string]string `json:"attrs,omitempty"`
}

// document is the full on-the-wire schematic document.
type document struct {
	Blocks []blockJSON `json:"blocks"`
}

// JSONCodec implements library.SchematicCodec by reading and writing the
// document shape above. It is the default codec cmd/redhdl uses; any
// other format (e.g. a real Minecraft schematic reader) only needs to
// satisfy the same two-method interface.
type JSONCodec struct{}

// ReadSchematic implements library.SchematicCodec.
func (JSONCodec) ReadSchematic(path string) (*voxel.Schematic, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemcodec: read %s: %w", path, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schemcodec: decode %s: %w", path, err)
	}

	blocks := make(map[voxel.Pos]voxel.Block, len(doc.Blocks))
	for _, bj := range doc.Blocks {
		facing, ok := geom.ParseDirection(bj.Facing)
		if !ok {
			return nil, fmt.Errorf("schemcodec: %s: bad facing %q", path, bj.Facing)
		}
		pos := geom.Pos{X: bj.Pos[0], Y: bj.Pos[1], Z: bj.Pos[2]}
		blocks[pos] = voxel.NewBlock(bj.Kind, facing, bj.Attrs)
	}
	return voxel.SchematicFrom(blocks), nil
}

// WriteSchematic implements library.SchematicCodec. Blocks are written in
// a deterministic scanline order so the same schematic always serializes
// to the same bytes.
func (JSONCodec) WriteSchematic(path string, s *voxel.Schematic) error {
	region := s.Region()
	positions := make([]voxel.Pos, 0, region.Len())
	for p := range region.Iter() {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})

	doc := document{Blocks: make([]blockJSON, 0, len(positions))}
	for _, p := range positions {
		block, _ := s.BlockAt(p)
		doc.Blocks = append(doc.Blocks, blockJSON{
			Pos:    [3]int32{p.X, p.Y, p.Z},
			Kind:   block.Kind,
			Facing: block.Facing.String(),
			Attrs:  block.Attrs,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("schemcodec: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("schemcodec: write %s: %w", path, err)
	}
	return nil
}
