package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrewsmike/redhdl/internal/schemcodec"
)

// runDisplay prints summary statistics about an assembled schematic. A
// renderer that would actually draw the voxel map is out of scope; this
// subcommand exists only so the CLI has a way to inspect synthesize's
// output without one.
func runDisplay(args []string) int {
	fs := flag.NewFlagSet("display", flag.ContinueOnError)
	schemPath := fs.String("schem", "", "path to a schematic JSON document")
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}
	if *schemPath == "" {
		fmt.Fprintln(os.Stderr, "redhdl display: --schem is required")
		return exitBadInput
	}

	s, err := (schemcodec.JSONCodec{}).ReadSchematic(*schemPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redhdl display:", err)
		return exitBadInput
	}

	bbox := s.BBox()
	fmt.Printf("blocks: %d\n", s.Len())
	if !bbox.Empty() {
		fmt.Printf("bounds: %v .. %v (volume %d)\n", bbox.Min, bbox.Max, bbox.Volume())
	}
	return exitOK
}
