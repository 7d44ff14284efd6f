package netlist

import "github.com/andrewsmike/redhdl/internal/geom"

// InstanceID opaquely identifies one instance within a Netlist. Instances
// reference nothing by pointer; every cross-reference goes through an
// InstanceID, so a Netlist stays a flat value with no cyclic object graph.
type InstanceID string

// NetworkID opaquely identifies one network within a Netlist.
type NetworkID string

// PinRole tags the smallest electrical endpoint.
type PinRole int

const (
	RoleInput PinRole = iota
	RoleOutput
	RoleBidir
)

func (r PinRole) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleBidir:
		return "bidir"
	default:
		return "unknown"
	}
}

// PortDirection tags a Port's bus interface direction.
type PortDirection int

const (
	DirIn PortDirection = iota
	DirOut
	DirInout
)

func (d PortDirection) String() string {
	switch d {
	case DirIn:
		return "in"
	case DirOut:
		return "out"
	case DirInout:
		return "inout"
	default:
		return "unknown"
	}
}

// Pin is the smallest electrical endpoint: a local-frame position, the
// face the signal enters/exits on, and a role tag.
type Pin struct {
	LocalPos geom.Pos
	Face     geom.Direction
	Role     PinRole
}

// PinSequence is an ordered list of pins sharing a type (e.g. one bit of
// an address bus). Width is len(Pins).
type PinSequence struct {
	Pins []Pin
}

// Width returns the number of pins in the sequence.
func (s PinSequence) Width() int { return len(s.Pins) }

// Port is a named collection of pin-sequences of one instance (a "bus
// interface"), carrying an overall direction.
type Port struct {
	Name      string
	Direction PortDirection
	Sequences []PinSequence
}

// Width returns the total pin count across all of the port's sequences.
func (p Port) Width() int {
	n := 0
	for _, seq := range p.Sequences {
		n += seq.Width()
	}
	return n
}

// PinAt returns the pin at flat index idx, counting across sequences in
// declaration order, and whether idx was in range.
func (p Port) PinAt(idx int) (Pin, bool) {
	if idx < 0 {
		return Pin{}, false
	}
	for _, seq := range p.Sequences {
		if idx < seq.Width() {
			return seq.Pins[idx], true
		}
		idx -= seq.Width()
	}
	return Pin{}, false
}

// Instance is one occurrence of a library tile: an opaque id, the library
// key it was instantiated from, its occupied region in the tile's local
// frame, and its named ports. Instance values carry no pose; pose is
// assigned separately by a Placement (package placement).
type Instance struct {
	ID       InstanceID
	LibKey   string
	Occupied geom.Region
	Ports    map[string]Port
}

// PinRef names one electrical endpoint of one instance by triple
// (InstanceID, port name, flat pin index).
type PinRef struct {
	Instance InstanceID
	Port     string
	Index    int
}

// Network is a set of pin references that must be electrically connected,
// with exactly one marked as the driver. Pins[DriverIndex] is the driver;
// every other entry is a sink.
type Network struct {
	ID          NetworkID
	Pins        []PinRef
	DriverIndex int
}

// Driver returns the network's driver pin reference.
func (n Network) Driver() PinRef { return n.Pins[n.DriverIndex] }

// Sinks returns every non-driver pin reference, in declaration order.
func (n Network) Sinks() []PinRef {
	out := make([]PinRef, 0, len(n.Pins)-1)
	for i, p := range n.Pins {
		if i != n.DriverIndex {
			out = append(out, p)
		}
	}
	return out
}
