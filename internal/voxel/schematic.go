package voxel

import (
	"fmt"

	"github.com/andrewsmike/redhdl/internal/geom"
)

// OverlapError is returned by Overlay when the two schematics share a
// position. It names the least conflicting position (ordered by X, then
// Y, then Z), for a reproducible error message.
type OverlapError struct {
	Pos Pos
}

// Pos is a local alias so OverlapError reads naturally; it is exactly
// geom.Pos.
type Pos = geom.Pos

func (e *OverlapError) Error() string {
	return fmt.Sprintf("voxel: overlapping position %v", e.Pos)
}

// Schematic is a sparse Pos→Block map with a cached bounding box. The
// zero value has no block map; build schematics with NewSchematic or
// SchematicFrom.
type Schematic struct {
	blocks map[Pos]Block
	bbox geom.Box
}

// NewSchematic returns an empty schematic.
func NewSchematic() *Schematic {
	return &Schematic{blocks: make(map[Pos]Block), bbox: geom.EmptyBox}
}

// SchematicFrom builds a schematic from an explicit position→block map,
// useful for tests and for a SchematicCodec reconstructing from disk.
func SchematicFrom(m map[Pos]Block) *Schematic {
	s := NewSchematic()
	for p, b := range m {
		s.set(p, b)
	}
	return s
}

// Len returns the number of occupied positions.
func (s *Schematic) Len() int { return len(s.blocks) }

// BlockAt returns the block at p and whether one is present.
func (s *Schematic) BlockAt(p Pos) (Block, bool) {
	b, ok := s.blocks[p]
	return b, ok
}

// BBox returns the schematic's bounding-box region. Empty schematics
// report geom.EmptyBox.
func (s *Schematic) BBox() geom.Box { return s.bbox }

// Region returns a geom.PointSet view of every occupied position, for use
// as an occupied region in collision checks.
func (s *Schematic) Region() geom.PointSet {
	pts := make([]Pos, 0, len(s.blocks))
	for p := range s.blocks {
		pts = append(pts, p)
	}
	return geom.NewPointSet(pts...)
}

func (s *Schematic) set(p Pos, b Block) {
	if _, exists := s.blocks[p]; !exists {
		if s.Len() == 0 {
			s.bbox = geom.Box{Min: p, Max: p}
		} else {
			s.bbox.Min = minPos(s.bbox.Min, p)
			s.bbox.Max = maxPos(s.bbox.Max, p)
		}
	}
	s.blocks[p] = b
}

func minPos(a, b Pos) Pos {
	return Pos{X: min32(a.X, b.X), Y: min32(a.Y, b.Y), Z: min32(a.Z, b.Z)}
}
func maxPos(a, b Pos) Pos {
	return Pos{X: max32(a.X, b.X), Y: max32(a.Y, b.Y), Z: max32(a.Z, b.Z)}
}
func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Overlay returns a new schematic containing every block of s and other.
// It fails with *OverlapError if any position is present in both. Neither
// s nor other is mutated.
//
// Overlay is associative and order-independent for pairwise-disjoint
// operands: the result of
// overlaying three pairwise-disjoint schematics does not depend on
// grouping, because each contributes exactly its own blocks regardless of
// which two are combined first.
func (s *Schematic) Overlay(other *Schematic) (*Schematic, error) {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	var conflict *Pos
	for p := range small.blocks {
		if _, exists := large.blocks[p]; exists {
			if conflict == nil || p.X < conflict.X ||
				(p.X == conflict.X && (p.Y < conflict.Y || (p.Y == conflict.Y && p.Z < conflict.Z))) {
				c := p
				conflict = &c
			}
		}
	}
	if conflict != nil {
		return nil, &OverlapError{Pos: *conflict}
	}
	return s.ForceOverlay(other), nil
}

// ForceOverlay returns a new schematic containing every block of s and
// other, with other's blocks winning on any shared position. Overlay
// calls it after its own disjointness check; synthesis itself always goes
// through Overlay so an accidental collision surfaces as a bug
// (rherrors.ErrInternal), not a silent overwrite.
func (s *Schematic) ForceOverlay(other *Schematic) *Schematic {
	out := NewSchematic()
	for p, b := range s.blocks {
		out.set(p, b)
	}
	for p, b := range other.blocks {
		out.set(p, b)
	}
	return out
}

// OverlayAll overlays schematics left to right, short-circuiting on the
// first overlap.
func OverlayAll(schematics...*Schematic) (*Schematic, error) {
	if len(schematics) == 0 {
		return NewSchematic(), nil
	}
	acc := schematics[0]
	for _, next := range schematics[1:] {
		merged, err := acc.Overlay(next)
		if err != nil {
			return nil, err
		}
		acc = merged
	}
	return acc, nil
}

// Transform returns a new schematic with every (pos, block) pair
// translated by delta and rotated about origin by r, rotating each
// block's directional attributes the same way.
func (s *Schematic) Transform(origin, delta Pos, r geom.Rotation) *Schematic {
	out := NewSchematic()
	for p, b := range s.blocks {
		rotatedPos := r.RotatePos(p, origin).Translate(delta)
		out.set(rotatedPos, b.RotateAttrs(r))
	}
	return out
}

// Diff reports the positions present in s but not in other, and vice
// versa. It is a debug helper for comparing two schematics — e.g. an
// expected fixture against a synthesized result — without asserting
// full map equality in one failure message.
func (s *Schematic) Diff(other *Schematic) (onlyInS, onlyInOther []Pos) {
	for p := range s.blocks {
		if _, ok := other.blocks[p]; !ok {
			onlyInS = append(onlyInS, p)
		}
	}
	for p := range other.blocks {
		if _, ok := s.blocks[p]; !ok {
			onlyInOther = append(onlyInOther, p)
		}
	}
	return onlyInS, onlyInOther
}
