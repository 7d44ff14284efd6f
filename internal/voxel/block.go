package voxel

import (
	"sort"
	"strings"

	"github.com/andrewsmike/redhdl/internal/geom"
)

// Block is an opaque block identifier plus a facing direction plus a
// key/value attribute map (the Minecraft "block state"). Equality is
// structural: two Blocks are equal iff Kind, Facing, and every attribute
// match.
type Block struct {
	Kind   string
	Facing geom.Direction
	Attrs  map[string]string
}

// NewBlock constructs a Block with a copy of attrs so callers may reuse
// or mutate their own map afterward without aliasing this Block's state.
func NewBlock(kind string, facing geom.Direction, attrs map[string]string) Block {
	b := Block{Kind: kind, Facing: facing}
	if len(attrs) > 0 {
		b.Attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			b.Attrs[k] = v
		}
	}
	return b
}

// Equal reports structural equality between b and other.
func (b Block) Equal(other Block) bool {
	if b.Kind != other.Kind || b.Facing != other.Facing {
		return false
	}
	if len(b.Attrs) != len(other.Attrs) {
		return false
	}
	for k, v := range b.Attrs {
		if other.Attrs[k] != v {
			return false
		}
	}
	return true
}

// String renders a deterministic, human-readable form used by debug
// output and test failure messages: "kind[facing]{k=v,...}" with
// attributes sorted by key.
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString(b.Kind)
	sb.WriteByte('[')
	sb.WriteString(b.Facing.String())
	sb.WriteByte(']')
	if len(b.Attrs) > 0 {
		keys := make([]string, 0, len(b.Attrs))
		for k := range b.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(b.Attrs[k])
		}
		sb.WriteByte('}')
	}
	return sb.String()
}

// RotateAttrs returns a copy of b with Facing and any direction-valued
// attributes rotated by r, using the per-kind table in rotation_table.go.
// Kinds with no registered direction-valued attribute names are rotated
// only on Facing.
func (b Block) RotateAttrs(r geom.Rotation) Block {
	out := NewBlock(b.Kind, r.Apply(b.Facing), b.Attrs)
	dirAttrs := directionalAttrNames[b.Kind]
	for _, attrName := range dirAttrs {
		raw, ok := out.Attrs[attrName]
		if !ok {
			continue
		}
		d, ok := geom.ParseDirection(raw)
		if !ok {
			continue
		}
		out.Attrs[attrName] = r.Apply(d).String()
	}
	return out
}
