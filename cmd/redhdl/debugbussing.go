package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/router"
)

// placementDoc is the on-the-wire shape of a caller-supplied placement,
// local to this subcommand — no exchange format is mandated for a
// placement beyond the netlist and the library; debug-bussing's whole
// point is to let a caller hand the router a placement directly,
// skipping SA, so this file defines the minimal shape that needs.
type placementDoc struct {
	Instances map[string]struct {
		Pos      [3]int32 `json:"pos"`
		Rotation int      `json:"rotation"`
	} `json:"instances"`
}

func loadPlacement(path string) (layout.Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Placement{}, fmt.Errorf("redhdl: read placement %s: %w", path, err)
	}
	var doc placementDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return layout.Placement{}, fmt.Errorf("redhdl: decode placement %s: %w", path, err)
	}

	poses := make(map[netlist.InstanceID]layout.Pose, len(doc.Instances))
	for id, entry := range doc.Instances {
		poses[netlist.InstanceID(id)] = layout.Pose{
			Pos:      geom.Pos{X: entry.Pos[0], Y: entry.Pos[1], Z: entry.Pos[2]},
			Rotation: geom.RotationByID(entry.Rotation),
		}
	}
	return layout.NewPlacement(poses), nil
}

// runDebugBussing loads a netlist, library, and caller-supplied placement,
// then runs only the router (no SA) and prints each network's bus length
// — useful for isolating router behavior from placement.
func runDebugBussing(args []string) int {
	fs := flag.NewFlagSet("debug-bussing", flag.ContinueOnError)
	netlistPath := fs.String("netlist", "", "path to the netlist JSON exchange document")
	libraryDir := fs.String("library", "", "path to the tile library directory")
	placementPath := fs.String("placement", "", "path to a placement JSON document")
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}
	if *netlistPath == "" || *libraryDir == "" || *placementPath == "" {
		fmt.Fprintln(os.Stderr, "redhdl debug-bussing: --netlist, --library, and --placement are required")
		return exitBadInput
	}

	lib, err := loadLibrary(*libraryDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redhdl debug-bussing:", err)
		return exitCodeFor(err)
	}
	nl, err := loadNetlist(*netlistPath, lib)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redhdl debug-bussing:", err)
		return exitBadInput
	}
	placed, err := loadPlacement(*placementPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redhdl debug-bussing:", err)
		return exitBadInput
	}

	instanceBlocked := router.InstanceObstacles(nl, placed).Contains
	networks := append([]netlist.Network(nil), nl.Networks()...)
	sort.Slice(networks, func(i, j int) bool { return networks[i].ID < networks[j].ID })

	var priorFootprints []geom.Region
	exitCode := exitOK
	for _, net := range networks {
		var priorWires geom.Region
		if len(priorFootprints) > 0 {
			priorWires = geom.NewCompound(priorFootprints...)
		}
		bus, err := router.RouteNetwork(nl, net, placed, instanceBlocked, priorWires)
		if err != nil {
			fmt.Printf("%s: FAILED (%v)\n", net.ID, err)
			exitCode = exitCodeFor(err)
			continue
		}
		fmt.Printf("%s: cost=%d footprint=%d\n", net.ID, bus.Cost, bus.Footprint.Len())
		priorFootprints = append(priorFootprints, bus.Region())
	}
	return exitCode
}
