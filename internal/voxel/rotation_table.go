package voxel

// directionalAttrNames lists, per block kind, which attribute keys (beyond
// the Block.Facing field itself) hold a direction value that must be
// rotated along with the block: block attribute rotation is table-driven
// per block kind. Unlisted kinds rotate only their Facing field.
//
// redstone_wire's four side-connection attributes (north/south/east/west)
// hold connectivity enums ("up"/"side"/"none"), not direction values, so
// rotating a wire means permuting which key holds which value rather than
// re-parsing a direction out of it; that case is deliberately not modeled
// here (the router emits only plain wire blocks with no side-connection
// metadata, so no code path needs it — see DESIGN.md).
var directionalAttrNames = map[string][]string{
	"repeater": {"facing"},
	"comparator": {"facing"},
	"observer": {"facing"},
	"piston": {"facing"},
	"sticky_piston": {"facing"},
	"dropper": {"facing"},
	"dispenser": {"facing"},
	"hopper": {"facing"},
	"lever": {"facing"},
	"redstone_torch": {"facing"},
}
