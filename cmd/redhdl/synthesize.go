package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrewsmike/redhdl/internal/assembly"
	"github.com/andrewsmike/redhdl/internal/placement"
	"github.com/andrewsmike/redhdl/internal/schemcodec"
)

func runSynthesize(args []string) int {
	fs := flag.NewFlagSet("synthesize", flag.ContinueOnError)
	netlistPath := fs.String("netlist", "", "path to the netlist JSON exchange document")
	libraryDir := fs.String("library", "", "path to the tile library directory")
	outPath := fs.String("out", "", "path to write the assembled schematic JSON to")
	seed := fs.Int64("seed", 0, "SA run seed")
	temperature := fs.Float64("temperature", 10, "SA initial temperature (T0)")
	alpha := fs.Float64("alpha", 0.95, "SA cooling rate")
	steps := fs.Int("steps", 2000, "SA step count")
	onUnroutable := fs.String("on-unroutable", "skip", "skip|abort")

	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}
	if *netlistPath == "" || *libraryDir == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "redhdl synthesize: --netlist, --library, and --out are required")
		return exitBadInput
	}

	policy := assembly.OnUnroutableSkip
	switch *onUnroutable {
	case "skip":
		policy = assembly.OnUnroutableSkip
	case "abort":
		policy = assembly.OnUnroutableAbort
	default:
		fmt.Fprintf(os.Stderr, "redhdl synthesize: --on-unroutable must be skip or abort, got %q\n", *onUnroutable)
		return exitBadInput
	}

	lib, err := loadLibrary(*libraryDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redhdl synthesize:", err)
		return exitCodeFor(err)
	}
	nl, err := loadNetlist(*netlistPath, lib)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redhdl synthesize:", err)
		return exitBadInput
	}

	cfg := assembly.NewConfig(
		assembly.WithPlacement(placement.NewConfig(
			placement.WithSeed(*seed),
			placement.WithSchedule(*temperature, *alpha, *steps),
		)),
		assembly.WithOnUnroutable(policy),
	)

	result, err := assembly.Synthesize(nl, lib, schemcodec.JSONCodec{}, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redhdl synthesize:", err)
		return exitCodeFor(err)
	}

	if err := (schemcodec.JSONCodec{}).WriteSchematic(*outPath, result.Voxels); err != nil {
		fmt.Fprintln(os.Stderr, "redhdl synthesize:", err)
		return exitInternal
	}

	for _, id := range result.Failed {
		fmt.Fprintf(os.Stderr, "redhdl synthesize: network %s left unrouted (on-unroutable=skip)\n", id)
	}
	fmt.Printf("redhdl synthesize: wrote %d blocks to %s (%d/%d networks routed)\n",
		result.Voxels.Len(), *outPath, len(result.Buses), len(result.Buses)+len(result.Failed))
	return exitOK
}
