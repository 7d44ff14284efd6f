package library

import (
	"fmt"

	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/rherrors"
)

// Instantiate produces a fresh netlist.Instance with the given id from
// the tile registered under libKey, sharing the tile's immutable geometry
// (Occupied, Ports) by reference — safe because neither this package nor
// netlist ever mutates a Port or Region value after construction.
func (l *Library) Instantiate(id netlist.InstanceID, libKey string) (netlist.Instance, error) {
	tile, ok := l.tiles[libKey]
	if !ok {
		return netlist.Instance{}, &rherrors.BadNetlistError{
			Kind: "unknown_lib_key", Instance: string(id),
			Details: fmt.Sprintf("library key %q not found", libKey),
		}
	}
	ports := make(map[string]netlist.Port, len(tile.Ports))
	for name, p := range tile.Ports {
		ports[name] = p
	}
	return netlist.Instance{ID: id, LibKey: libKey, Occupied: tile.Occupied, Ports: ports}, nil
}

// Validate checks every instance of nl against l: the library key must be
// known, every referenced port must exist on that tile, and every pin
// index must be in range. This duplicates checks netlist.New already
// performed against whatever Instance values the caller built directly,
// but is the defensive cross-check needed when a Netlist was built from
// instances that merely *claim* a library key and port shape (e.g. via
// the JSON exchange format) rather than being produced by Instantiate.
func (l *Library) Validate(nl *netlist.Netlist) error {
	for _, inst := range nl.Instances() {
		tile, ok := l.tiles[inst.LibKey]
		if !ok {
			return &rherrors.BadNetlistError{
				Kind: "unknown_lib_key", Instance: string(inst.ID),
				Details: fmt.Sprintf("library key %q not found", inst.LibKey),
			}
		}
		for portName, port := range inst.Ports {
			tilePort, ok := tile.Ports[portName]
			if !ok {
				return &rherrors.BadNetlistError{
					Kind: "port_not_in_library", Instance: string(inst.ID), Port: portName,
					Details: fmt.Sprintf("tile %q has no port %q", inst.LibKey, portName),
				}
			}
			if port.Width() > tilePort.Width() {
				return &rherrors.BadNetlistError{
					Kind: "pin_index_out_of_range", Instance: string(inst.ID), Port: portName,
					Details: fmt.Sprintf("instance declares width %d, tile port has width %d", port.Width(), tilePort.Width()),
				}
			}
		}
	}
	return nil
}
