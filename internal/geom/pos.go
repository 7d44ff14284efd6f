package geom

// Pos is an integer triple identifying one voxel position. It is a flat
// value type: cheap to copy, comparable with ==, and usable directly as a
// map key in the search engines' closed sets.
type Pos struct {
	X, Y, Z int32
}

// Add returns p translated by the unit vector of d.
func (p Pos) Add(d Direction) Pos {
	v := d.Vector()
	return Pos{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Translate returns p shifted by delta.
func (p Pos) Translate(delta Pos) Pos {
	return Pos{p.X + delta.X, p.Y + delta.Y, p.Z + delta.Z}
}

// Sub returns p - q, componentwise.
func (p Pos) Sub(q Pos) Pos {
	return Pos{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Neg returns the componentwise negation of p.
func (p Pos) Neg() Pos {
	return Pos{-p.X, -p.Y, -p.Z}
}

// ManhattanTo returns the L1 distance between p and q.
func (p Pos) ManhattanTo(q Pos) int64 {
	return int64(abs32(p.X-q.X)) + int64(abs32(p.Y-q.Y)) + int64(abs32(p.Z-q.Z))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
