package geom_test

import (
	"testing"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRotationGroupOrder checks the generated group has exactly 24
// distinct elements, each a distinct permutation of the six
// directions.
func TestRotationGroupOrder(t *testing.T) {
	require.Equal(t, 24, geom.RotationCount())

	seen := make(map[[6]geom.Direction]struct{})
	for i := 0; i < geom.RotationCount(); i++ {
		r := geom.RotationByID(i)
		var key [6]geom.Direction
		for d := range geom.AllDirections {
			key[d] = r.Apply(geom.Direction(d))
		}
		_, dup := seen[key]
		assert.False(t, dup, "rotation %d duplicates an earlier element", i)
		seen[key] = struct{}{}
	}
}

// TestRotationComposeMatchesSequentialApply verifies the lookup-table
// Compose agrees with applying two rotations to every direction vector in
// sequence.
func TestRotationComposeMatchesSequentialApply(t *testing.T) {
	for i := 0; i < geom.RotationCount(); i++ {
		for j := 0; j < geom.RotationCount(); j++ {
			a := geom.RotationByID(i)
			b := geom.RotationByID(j)
			composed := a.Compose(b)
			for d := range geom.AllDirections {
				dir := geom.Direction(d)
				want := b.Apply(a.Apply(dir))
				got := composed.Apply(dir)
				require.Equalf(t, want, got, "rotation %d∘%d on direction %d", i, j, d)
			}
		}
	}
}

// TestGeometryRoundTrip checks that translate-then-rotate preserves
// intersection: intersects(R·t·r, R·t·r') ⇔ intersects(r, r') for boxes
// and point sets.
func TestGeometryRoundTrip(t *testing.T) {
	r1 := geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{2, 2, 2}}
	r2 := geom.NewPointSet(geom.Pos{1, 1, 1}, geom.Pos{5, 5, 5})

	delta := geom.Pos{3, -2, 7}
	origin := geom.Pos{1, 1, 1}
	rot := geom.RotationByID(5)

	transform := func(r geom.Region) geom.Region {
		return r.Translate(delta).RotateAround(origin, rot)
	}

	before := geom.Intersects(r1, r2)
	after := geom.Intersects(transform(r1), transform(r2))
	assert.Equal(t, before, after)
}

func TestBoxVolumeAndCorners(t *testing.T) {
	b := geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{1, 1, 1}}
	assert.EqualValues(t, 8, b.Volume())
	assert.Len(t, b.Corners(), 8)

	assert.True(t, geom.EmptyBox.Empty())
	assert.EqualValues(t, 0, geom.EmptyBox.Volume())
}

func TestCompoundIntersectsShortCircuitsOnBBox(t *testing.T) {
	near := geom.NewCompound(
		geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{1, 1, 1}},
	)
	far := geom.Box{Min: geom.Pos{100, 100, 100}, Max: geom.Pos{101, 101, 101}}
	assert.False(t, geom.Intersects(near, far))

	touching := geom.Box{Min: geom.Pos{1, 1, 1}, Max: geom.Pos{3, 3, 3}}
	assert.True(t, geom.Intersects(near, touching))
}

func TestRegionVolume(t *testing.T) {
	box := geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{1, 1, 1}}
	assert.EqualValues(t, 8, geom.RegionVolume(box))

	ps := geom.NewPointSet(geom.Pos{0, 0, 0}, geom.Pos{1, 0, 0}, geom.Pos{0, 0, 0})
	assert.EqualValues(t, 2, geom.RegionVolume(ps))

	compound := geom.NewCompound(
		geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{0, 0, 0}},
		geom.Box{Min: geom.Pos{0, 0, 0}, Max: geom.Pos{0, 0, 0}},
		geom.Box{Min: geom.Pos{5, 5, 5}, Max: geom.Pos{5, 5, 5}},
	)
	assert.EqualValues(t, 2, geom.RegionVolume(compound))
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range geom.AllDirections {
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	parsed, ok := geom.ParseDirection(geom.PosY.String())
	require.True(t, ok)
	assert.Equal(t, geom.PosY, parsed)
}
