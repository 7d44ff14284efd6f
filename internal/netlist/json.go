package netlist

import (
	"encoding/json"
	"fmt"

	"github.com/andrewsmike/redhdl/internal/rherrors"
)

// The JSON round-trip schema:
//
//	{instances: {id: {lib, ports: {name: [pin_ref,...]}}},
// networks: [[{inst, port, idx},...]]}
//
// The CLI reads its --netlist input in this format, and tests use it for
// exchange. It does not encode instance geometry
// (occupied region, pin positions) because that geometry is owned by the
// library a netlist was built against. DecodeJSON therefore needs a
// geometry resolver — ordinarily library.Library.Instantiate — to turn
// each {lib, ports} entry into a fully geometric Instance before calling
// New. Tests that don't care about geometry pass a resolver that returns
// placeholder single-voxel occupied regions and zero-position pins keyed
// only by role, which is enough to exercise topology-only invariants.

// wireJSON is the on-the-wire shape of one PinRef in the networks array.
type wireJSON struct {
	Inst string `json:"inst"`
	Port string `json:"port"`
	Idx  int    `json:"idx"`
}

// instanceJSON is the on-the-wire shape of one entry in "instances".
type instanceJSON struct {
	Lib   string              `json:"lib"`
	Ports map[string][]string `json:"ports"`
}

// document is the full on-the-wire netlist exchange document.
type document struct {
	Instances map[string]instanceJSON `json:"instances"`
	Networks  [][]wireJSON            `json:"networks"`
}

// GeometryResolver turns a (library key, port name → pin ref labels) pair
// for one instance into a fully geometric Instance, normally backed by a
// loaded library.Library. Implementations must be deterministic: the same
// (id, libKey, ports) must always resolve to the same Instance.
type GeometryResolver func(id InstanceID, libKey string, ports map[string][]string) (Instance, error)

// DecodeJSON parses the exchange document from data, resolving each
// instance's geometry via resolve, and returns the constructed, validated
// Netlist.
func DecodeJSON(data []byte, resolve GeometryResolver) (*Netlist, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("netlist: decode json: %w", err)
	}

	instances := make([]Instance, 0, len(doc.Instances))
	for id, raw := range doc.Instances {
		inst, err := resolve(InstanceID(id), raw.Lib, raw.Ports)
		if err != nil {
			return nil, fmt.Errorf("netlist: resolve instance %s: %w", id, err)
		}
		instances = append(instances, inst)
	}

	networks := make([]Network, 0, len(doc.Networks))
	for i, wireNet := range doc.Networks {
		if len(wireNet) == 0 {
			return nil, &rherrors.BadNetlistError{Kind: "empty_network", Details: fmt.Sprintf("network index %d is empty", i)}
		}
		pins := make([]PinRef, len(wireNet))
		for j, w := range wireNet {
			pins[j] = PinRef{Instance: InstanceID(w.Inst), Port: w.Port, Index: w.Idx}
		}
		networks = append(networks, Network{
			ID:          NetworkID(fmt.Sprintf("net%d", i)),
			Pins:        pins,
			DriverIndex: 0,
		})
	}

	return New(instances, networks)
}

// EncodeJSON renders nl back into the exchange document. Port geometry is
// not round-tripped (the schema has no room for it); the "[pin_ref,...]"
// list for each port is reconstructed as placeholder labels
// "p0","p1",... of the right width, sufficient to reconstruct the
// topology via DecodeJSON against the same library.
func EncodeJSON(nl *Netlist) ([]byte, error) {
	doc := document{
		Instances: make(map[string]instanceJSON, nl.InstanceCount()),
	}
	for _, inst := range nl.Instances() {
		ports := make(map[string][]string, len(inst.Ports))
		for name, port := range inst.Ports {
			labels := make([]string, port.Width())
			for i := range labels {
				labels[i] = fmt.Sprintf("p%d", i)
			}
			ports[name] = labels
		}
		doc.Instances[string(inst.ID)] = instanceJSON{Lib: inst.LibKey, Ports: ports}
	}
	for _, net := range nl.Networks() {
		wireNet := make([]wireJSON, 0, len(net.Pins))
		// Emit the driver first regardless of its original position, so
		// DecodeJSON's DriverIndex==0 convention round-trips correctly.
		ordered := append([]PinRef{net.Driver()}, net.Sinks()...)
		for _, ref := range ordered {
			wireNet = append(wireNet, wireJSON{Inst: string(ref.Instance), Port: ref.Port, Idx: ref.Index})
		}
		doc.Networks = append(doc.Networks, wireNet)
	}
	return json.MarshalIndent(doc, "", " ")
}
