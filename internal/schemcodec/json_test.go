package schemcodec_test

import (
	"path/filepath"
	"testing"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/schemcodec"
	"github.com/andrewsmike/redhdl/internal/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodecRoundTrip(t *testing.T) {
	original := voxel.SchematicFrom(map[voxel.Pos]voxel.Block{
		{X: 0, Y: 0, Z: 0}: voxel.NewBlock("redstone_wire", geom.PosX, nil),
		{X: 1, Y: 0, Z: 0}: voxel.NewBlock("repeater", geom.PosZ, map[string]string{"delay": "2"}),
	})

	path := filepath.Join(t.TempDir(), "out.json")
	codec := schemcodec.JSONCodec{}
	require.NoError(t, codec.WriteSchematic(path, original))

	decoded, err := codec.ReadSchematic(path)
	require.NoError(t, err)
	assert.Equal(t, original.Len(), decoded.Len())

	for p := range original.Region().Iter() {
		want, _ := original.BlockAt(p)
		got, ok := decoded.BlockAt(p)
		require.True(t, ok)
		assert.True(t, want.Equal(got))
	}
}
