package main

import (
	"fmt"
	"os"

	"github.com/andrewsmike/redhdl/internal/library"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/schemcodec"
)

// loadLibrary opens the tile library at dir using the house JSON
// schematic codec (internal/schemcodec).
func loadLibrary(dir string) (*library.Library, error) {
	return library.Load(dir, schemcodec.JSONCodec{})
}

// loadNetlist reads the JSON exchange document at path and
// resolves each instance's geometry against lib.
func loadNetlist(path string, lib *library.Library) (*netlist.Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("redhdl: read netlist %s: %w", path, err)
	}
	resolve := func(id netlist.InstanceID, libKey string, _ map[string][]string) (netlist.Instance, error) {
		return lib.Instantiate(id, libKey)
	}
	return netlist.DecodeJSON(data, resolve)
}
