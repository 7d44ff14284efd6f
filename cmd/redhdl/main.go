package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: redhdl <synthesize|display|debug-bussing> [flags]")
		return exitBadInput
	}

	switch args[0] {
	case "synthesize":
		return runSynthesize(args[1:])
	case "display":
		return runDisplay(args[1:])
	case "debug-bussing":
		return runDebugBussing(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "redhdl: unknown subcommand %q\n", args[0])
		return exitBadInput
	}
}
