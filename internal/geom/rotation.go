package geom

// Rotation is one element of the 24-element group of axis-aligned
// rotations: a permutation of the six Direction values. Rotation values
// should be obtained from Identity, RotationByID, or Compose — an
// unkeyed Rotation{} literal is not a valid group element.
//
// Complexity: construction of the group (rotationGroup, at package init)
// is O(1) — 24 elements closed over two generators by breadth-first
// search. Compose and Apply are O(1) table lookups thereafter.
type Rotation struct {
	id    int
	table [6]Direction
}

// Identity is the no-op rotation.
var Identity Rotation

// rotY90 rotates +X→+Z→-X→-Z→+X about the +Y axis (clockwise when viewed
// from +Y looking down, i.e. -90° under the right-hand rule).
var rotY90 = Rotation{table: [6]Direction{
	PosX: PosZ,
	NegX: NegZ,
	PosY: PosY,
	NegY: NegY,
	PosZ: NegX,
	NegZ: PosX,
}}

// rotX90 rotates +Y→+Z→-Y→-Z→+Y about the +X axis.
var rotX90 = Rotation{table: [6]Direction{
	PosX: PosX,
	NegX: NegX,
	PosY: PosZ,
	NegY: NegZ,
	PosZ: NegY,
	NegZ: PosY,
}}

var (
	rotationGroup []Rotation   // the 24 canonical elements, index == id
	composeTable  [][]int      // composeTable[a.id][b.id] = (a then b).id
	keyToID       map[[6]Direction]int
)

// RotationY90 is the canonical 90° rotation about +Y. The placement
// engine's neighbor operator composes with this (rather than drawing a
// uniformly random element of the full group) for its "rotate" move,
// since redstone components are conventionally reoriented by turning them
// in the horizontal plane.
var RotationY90 Rotation

func init() {
	Identity = Rotation{table: [6]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}}
	keyToID = map[[6]Direction]int{Identity.table: 0}
	rotationGroup = []Rotation{Identity}

	generators := []Rotation{rotY90, rotX90}

	// Breadth-first closure: repeatedly left-multiply the frontier by each
	// generator until no new element appears. The group is known to have
	// exactly 24 elements (the orientation-preserving symmetries of the
	// cube); this loop terminates naturally once the closure is reached.
	frontier := []Rotation{Identity}
	for len(frontier) > 0 {
		var next []Rotation
		for _, r := range frontier {
			for _, g := range generators {
				cand := rawCompose(r, g)
				if _, seen := keyToID[cand.table]; !seen {
					cand.id = len(rotationGroup)
					keyToID[cand.table] = cand.id
					rotationGroup = append(rotationGroup, cand)
					next = append(next, cand)
				}
			}
		}
		frontier = next
	}

	composeTable = make([][]int, len(rotationGroup))
	for i, a := range rotationGroup {
		row := make([]int, len(rotationGroup))
		for j, b := range rotationGroup {
			row[j] = rawCompose(a, b).id
		}
		composeTable[i] = row
	}

	RotationY90 = rotationGroup[keyToID[rotY90.table]]
}

// rawCompose computes (a then b) directly from the permutation tables,
// without consulting composeTable (used only to build that table).
func rawCompose(a, b Rotation) Rotation {
	var out Rotation
	for d := range AllDirections {
		out.table[d] = b.table[a.table[Direction(d)]]
	}
	return out
}

// RotationCount returns the order of the rotation group (always 24).
func RotationCount() int { return len(rotationGroup) }

// RotationByID returns the canonical rotation with the given index in
// [0, RotationCount()). Used by the placement engine's initial seeding
// (and the debug-bussing command) to pick a uniformly random rotation.
func RotationByID(id int) Rotation {
	return rotationGroup[id%len(rotationGroup)]
}

// ID returns r's canonical index, stable across a process run.
func (r Rotation) ID() int { return r.id }

// Apply maps a direction through the rotation.
func (r Rotation) Apply(d Direction) Direction {
	return r.table[d]
}

// Compose returns the rotation equivalent to applying r first, then s.
func (r Rotation) Compose(s Rotation) Rotation {
	return rotationGroup[composeTable[r.id][s.id]]
}

// Inverse returns r⁻¹.
func (r Rotation) Inverse() Rotation {
	for _, cand := range rotationGroup {
		if rawCompose(r, cand) == Identity {
			return cand
		}
	}
	return Identity
}

// RotatePos rotates p about origin by r.
func (r Rotation) RotatePos(p Pos, origin Pos) Pos {
	rel := p.Sub(origin)
	rx := r.Apply(PosX).Vector()
	ry := r.Apply(PosY).Vector()
	rz := r.Apply(PosZ).Vector()
	out := Pos{
		X: rel.X*rx.X + rel.Y*ry.X + rel.Z*rz.X,
		Y: rel.X*rx.Y + rel.Y*ry.Y + rel.Z*rz.Y,
		Z: rel.X*rx.Z + rel.Y*ry.Z + rel.Z*rz.Z,
	}
	return origin.Translate(out)
}
