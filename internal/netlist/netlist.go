package netlist

import (
	"fmt"
	"sort"

	"github.com/andrewsmike/redhdl/internal/rherrors"
)

// Netlist is a finite map of InstanceID→Instance plus a set of networks.
// It is immutable once constructed by New: every invariant has already
// been checked, so every other method in this package can assume a valid
// netlist and never needs to return an error.
type Netlist struct {
	instances map[InstanceID]Instance
	networks []Network
	netOf map[PinRef]NetworkID
}

// New validates instances and networks against the Netlist invariants
// and returns an immutable Netlist, or a *rherrors.BadNetlistError naming
// the first offending triple found (instances are checked in the order
// given; networks in the order given; pins within a network in
// declaration order — so the error is deterministic for a given input).
func New(instances []Instance, networks []Network) (*Netlist, error) {
	byID := make(map[InstanceID]Instance, len(instances))
	for _, inst := range instances {
		byID[inst.ID] = inst
	}

	netOf := make(map[PinRef]NetworkID, len(networks)*2)
	for _, net := range networks {
		if len(net.Pins) == 0 {
			return nil, &rherrors.BadNetlistError{
				Kind: "empty_network",
				Details: fmt.Sprintf("network %s has no pins", net.ID),
			}
		}
		if net.DriverIndex < 0 || net.DriverIndex >= len(net.Pins) {
			return nil, &rherrors.BadNetlistError{
				Kind: "bad_driver_index",
				Details: fmt.Sprintf("network %s: driver index %d out of range", net.ID, net.DriverIndex),
			}
		}
		for i, ref := range net.Pins {
			inst, ok := byID[ref.Instance]
			if !ok {
				return nil, &rherrors.BadNetlistError{
					Kind: "dangling_instance", Instance: string(ref.Instance), Port: ref.Port, PinIndex: ref.Index,
					Details: fmt.Sprintf("network %s references unknown instance %s", net.ID, ref.Instance),
				}
			}
			port, ok := inst.Ports[ref.Port]
			if !ok {
				return nil, &rherrors.BadNetlistError{
					Kind: "dangling_port", Instance: string(ref.Instance), Port: ref.Port, PinIndex: ref.Index,
					Details: fmt.Sprintf("instance %s has no port %q", ref.Instance, ref.Port),
				}
			}
			pin, ok := port.PinAt(ref.Index)
			if !ok {
				return nil, &rherrors.BadNetlistError{
					Kind: "dangling_pin", Instance: string(ref.Instance), Port: ref.Port, PinIndex: ref.Index,
					Details: fmt.Sprintf("port %s.%s has no pin index %d", ref.Instance, ref.Port, ref.Index),
				}
			}
			if existing, claimed := netOf[ref]; claimed && existing != net.ID {
				return nil, &rherrors.BadNetlistError{
					Kind: "pin_double_claim", Instance: string(ref.Instance), Port: ref.Port, PinIndex: ref.Index,
					Details: fmt.Sprintf("pin already claimed by network %s", existing),
				}
			}
			netOf[ref] = net.ID

			if i != net.DriverIndex && pin.Role != RoleInput && pin.Role != RoleBidir {
				return nil, &rherrors.BadNetlistError{
					Kind: "bad_sink_role", Instance: string(ref.Instance), Port: ref.Port, PinIndex: ref.Index,
					Details: fmt.Sprintf("sink pin has role %s, want input or bidir", pin.Role),
				}
			}
		}
	}

	return &Netlist{instances: byID, networks: append([]Network(nil), networks...), netOf: netOf}, nil
}

// Instance looks up an instance by id.
func (nl *Netlist) Instance(id InstanceID) (Instance, bool) {
	inst, ok := nl.instances[id]
	return inst, ok
}

// Instances returns every instance, sorted by InstanceID for deterministic
// iteration.
func (nl *Netlist) Instances() []Instance {
	out := make([]Instance, 0, len(nl.instances))
	for _, inst := range nl.instances {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// InstanceCount returns the number of instances.
func (nl *Netlist) InstanceCount() int { return len(nl.instances) }

// Networks returns every network, sorted by NetworkID for deterministic
// iteration.
func (nl *Netlist) Networks() []Network {
	out := append([]Network(nil), nl.networks...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NetworkContaining returns the id of the unique network containing ref,
// or false if ref is unwired.
func (nl *Netlist) NetworkContaining(ref PinRef) (NetworkID, bool) {
	id, ok := nl.netOf[ref]
	return id, ok
}
