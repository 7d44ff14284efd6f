package geom

import "iter"

// Region is a set of positions. It has exactly three implementations:
// Box (an inclusive axis-aligned bounding box), PointSet (an explicit
// finite set), and Compound (a union of regions). No other type may
// implement Region — callers type-switch on the three variants where it
// matters (e.g. the collision-detection fast paths in Intersects).
type Region interface {
	// Contains reports whether p is a member of the region.
	Contains(p Pos) bool
	// BBox returns the smallest Box enclosing the region. For an empty
	// region BBox returns a Box with Min > Max component-wise (an
	// "empty box"); callers should check Box.Empty().
	BBox() Box
	// Translate returns the region shifted by delta.
	Translate(delta Pos) Region
	// RotateAround returns the region rotated by r about origin.
	RotateAround(origin Pos, r Rotation) Region
	// Iter yields every position in the region exactly once. For Box the
	// order is scanline x→y→z; for PointSet and Compound no particular
	// cross-child order is guaranteed beyond "deterministic for a given
	// value" (construction order is preserved).
	Iter() iter.Seq[Pos]
}

// Box is an inclusive axis-aligned bounding box: every p with
// Min.X<=p.X<=Max.X (and likewise Y, Z) is a member.
type Box struct {
	Min, Max Pos
}

// EmptyBox is the canonical empty box, used as the BBox of an empty
// PointSet or Compound.
var EmptyBox = Box{Min: Pos{1, 1, 1}, Max: Pos{0, 0, 0}}

// Empty reports whether b contains no positions.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Contains implements Region.
func (b Box) Contains(p Pos) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// BBox implements Region: a box is its own bounding box.
func (b Box) BBox() Box { return b }

// Within reports whether b is entirely contained within bound.
func (b Box) Within(bound Box) bool {
	return b.Min.X >= bound.Min.X && b.Max.X <= bound.Max.X &&
		b.Min.Y >= bound.Min.Y && b.Max.Y <= bound.Max.Y &&
		b.Min.Z >= bound.Min.Z && b.Max.Z <= bound.Max.Z
}

// Volume returns the number of positions in b (0 for an empty box).
func (b Box) Volume() int64 {
	if b.Empty() {
		return 0
	}
	dx := int64(b.Max.X-b.Min.X) + 1
	dy := int64(b.Max.Y-b.Min.Y) + 1
	dz := int64(b.Max.Z-b.Min.Z) + 1
	return dx * dy * dz
}

// Corners returns the 8 corner positions of b (fewer, with duplicates
// collapsed by the caller, for a degenerate box). Used by Box.RotateAround
// to find the rotated box's extent without enumerating it.
func (b Box) Corners() [8]Pos {
	return [8]Pos{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// Translate implements Region.
func (b Box) Translate(delta Pos) Region {
	if b.Empty() {
		return b
	}
	return Box{Min: b.Min.Translate(delta), Max: b.Max.Translate(delta)}
}

// RotateAround implements Region. A 90°-multiple rotation of an
// axis-aligned box is again axis-aligned; the result's Min/Max are the
// componentwise min/max of the rotated corners.
func (b Box) RotateAround(origin Pos, r Rotation) Region {
	if b.Empty() {
		return b
	}
	corners := b.Corners()
	out := Box{Min: r.RotatePos(corners[0], origin), Max: r.RotatePos(corners[0], origin)}
	for _, c := range corners[1:] {
		rc := r.RotatePos(c, origin)
		out.Min = minPos(out.Min, rc)
		out.Max = maxPos(out.Max, rc)
	}
	return out
}

// Iter implements Region in scanline x→y→z order.
func (b Box) Iter() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		if b.Empty() {
			return
		}
		for x := b.Min.X; x <= b.Max.X; x++ {
			for y := b.Min.Y; y <= b.Max.Y; y++ {
				for z := b.Min.Z; z <= b.Max.Z; z++ {
					if !yield(Pos{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

func minPos(a, b Pos) Pos {
	return Pos{min32(a.X, b.X), min32(a.Y, b.Y), min32(a.Z, b.Z)}
}

func maxPos(a, b Pos) Pos {
	return Pos{max32(a.X, b.X), max32(a.Y, b.Y), max32(a.Z, b.Z)}
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

// PointSet is an explicit finite set of positions, stored as both a
// membership index (for O(1) Contains) and an ordered slice (to keep
// Iter deterministic across a value's lifetime).
type PointSet struct {
	index map[Pos]struct{}
	order []Pos
	bbox  Box
}

// NewPointSet builds a PointSet from pts, deduplicating. The bounding box
// is computed once at construction.
func NewPointSet(pts ...Pos) PointSet {
	ps := PointSet{index: make(map[Pos]struct{}, len(pts)), bbox: EmptyBox}
	for _, p := range pts {
		ps.add(p)
	}
	return ps
}

func (ps *PointSet) add(p Pos) {
	if _, ok := ps.index[p]; ok {
		return
	}
	ps.index[p] = struct{}{}
	ps.order = append(ps.order, p)
	if len(ps.order) == 1 {
		ps.bbox = Box{Min: p, Max: p}
		return
	}
	ps.bbox.Min = minPos(ps.bbox.Min, p)
	ps.bbox.Max = maxPos(ps.bbox.Max, p)
}

// Len returns the number of distinct positions in ps.
func (ps PointSet) Len() int { return len(ps.order) }

// Contains implements Region.
func (ps PointSet) Contains(p Pos) bool {
	_, ok := ps.index[p]
	return ok
}

// BBox implements Region.
func (ps PointSet) BBox() Box { return ps.bbox }

// Translate implements Region.
func (ps PointSet) Translate(delta Pos) Region {
	out := make([]Pos, len(ps.order))
	for i, p := range ps.order {
		out[i] = p.Translate(delta)
	}
	return NewPointSet(out...)
}

// RotateAround implements Region.
func (ps PointSet) RotateAround(origin Pos, r Rotation) Region {
	out := make([]Pos, len(ps.order))
	for i, p := range ps.order {
		out[i] = r.RotatePos(p, origin)
	}
	return NewPointSet(out...)
}

// Iter implements Region in construction order.
func (ps PointSet) Iter() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for _, p := range ps.order {
			if !yield(p) {
				return
			}
		}
	}
}

// Compound is the union of zero or more child regions.
type Compound struct {
	children []Region
	bbox     Box
}

// NewCompound builds a Compound over children, precomputing the union
// bounding box so that Intersects can short-circuit on it.
func NewCompound(children ...Region) Compound {
	c := Compound{children: children, bbox: EmptyBox}
	first := true
	for _, child := range children {
		cb := child.BBox()
		if cb.Empty() {
			continue
		}
		if first {
			c.bbox = cb
			first = false
			continue
		}
		c.bbox.Min = minPos(c.bbox.Min, cb.Min)
		c.bbox.Max = maxPos(c.bbox.Max, cb.Max)
	}
	return c
}

// Children returns the compound's child regions (read-only view).
func (c Compound) Children() []Region { return c.children }

// Contains implements Region.
func (c Compound) Contains(p Pos) bool {
	if !c.bbox.Contains(p) {
		return false
	}
	for _, child := range c.children {
		if child.Contains(p) {
			return true
		}
	}
	return false
}

// BBox implements Region.
func (c Compound) BBox() Box { return c.bbox }

// Translate implements Region.
func (c Compound) Translate(delta Pos) Region {
	out := make([]Region, len(c.children))
	for i, child := range c.children {
		out[i] = child.Translate(delta)
	}
	return NewCompound(out...)
}

// RotateAround implements Region.
func (c Compound) RotateAround(origin Pos, r Rotation) Region {
	out := make([]Region, len(c.children))
	for i, child := range c.children {
		out[i] = child.RotateAround(origin, r)
	}
	return NewCompound(out...)
}

// Iter implements Region, yielding each child's positions in turn. A
// position covered by two overlapping children is yielded twice; callers
// that need a deduplicated enumeration should build a PointSet from the
// sequence.
func (c Compound) Iter() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for _, child := range c.children {
			for p := range child.Iter() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// bboxOverlap reports whether two boxes share any position, the
// componentwise-interval-overlap test used to short-circuit every
// Intersects fast path below.
func bboxOverlap(a, b Box) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y &&
		a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
}

// Intersects reports whether r1 and r2 share at least one position.
// This is the hot path for collision detection during placement and
// routing, so the dispatch below always tries the cheapest test first:
// bounding-box overlap, then a type-specific exact test.
//
// Complexity:
//   - Box/Box: O(1).
//   - PointSet/PointSet: O(min(|r1|,|r2|)) after an O(1) bbox check.
//   - PointSet/Box or Box/PointSet: O(|point set|) after an O(1) bbox check.
//   - Compound vs anything: bbox check, then a short-circuiting scan of
//     children; worst case O(children) recursive calls.
func Intersects(r1, r2 Region) bool {
	if !bboxOverlap(r1.BBox(), r2.BBox()) {
		return false
	}

	switch a := r1.(type) {
	case Compound:
		return intersectsCompound(a, r2)
	}
	switch b := r2.(type) {
	case Compound:
		return intersectsCompound(b, r1)
	}

	ps1, ok1 := r1.(PointSet)
	ps2, ok2 := r2.(PointSet)
	switch {
	case ok1 && ok2:
		return intersectsPointSets(ps1, ps2)
	case ok1:
		return intersectsPointSetBox(ps1, r2.(Box))
	case ok2:
		return intersectsPointSetBox(ps2, r1.(Box))
	default:
		// Box vs Box: bbox overlap already established equivalence.
		return true
	}
}

func intersectsCompound(c Compound, other Region) bool {
	if !bboxOverlap(c.bbox, other.BBox()) {
		return false
	}
	for _, child := range c.children {
		if Intersects(child, other) {
			return true
		}
	}
	return false
}

func intersectsPointSets(a, b PointSet) bool {
	small, large := a, b
	if b.Len() < a.Len() {
		small, large = b, a
	}
	for p := range small.Iter() {
		if large.Contains(p) {
			return true
		}
	}
	return false
}

func intersectsPointSetBox(ps PointSet, box Box) bool {
	for p := range ps.Iter() {
		if box.Contains(p) {
			return true
		}
	}
	return false
}

// TranslateRegion is a free-function form of Region.Translate, matching
// the spec's functional naming (translate(region, Δ)).
func TranslateRegion(r Region, delta Pos) Region { return r.Translate(delta) }

// RotateRegion is a free-function form of Region.RotateAround, matching
// the spec's functional naming (rotate(region, origin, rot)).
func RotateRegion(r Region, origin Pos, rot Rotation) Region {
	return r.RotateAround(origin, rot)
}

// BBoxOf is a free-function form of Region.BBox.
func BBoxOf(r Region) Box { return r.BBox() }

// RegionVolume returns the number of distinct positions r occupies,
// dispatching to the cheap exact form for Box and PointSet and falling
// back to a deduplicating scan for Compound. Used by the placement
// engine's "descending occupied-volume order" initial-state seeding.
func RegionVolume(r Region) int64 {
	switch v := r.(type) {
	case Box:
		return v.Volume()
	case PointSet:
		return int64(v.Len())
	case Compound:
		seen := make(map[Pos]struct{})
		for p := range v.Iter() {
			seen[p] = struct{}{}
		}
		return int64(len(seen))
	default:
		seen := make(map[Pos]struct{})
		for p := range r.Iter() {
			seen[p] = struct{}{}
		}
		return int64(len(seen))
	}
}

// ContainsPos is a free-function form of Region.Contains.
func ContainsPos(r Region, p Pos) bool { return r.Contains(p) }
