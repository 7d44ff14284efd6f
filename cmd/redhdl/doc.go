// Command redhdl is the CLI entry point: subcommands synthesize,
// display, debug-bussing; flags --seed, --temperature, --alpha, --steps,
// --on-unroutable. It is deliberately thin — every subcommand loads its
// inputs, calls one internal/* entry point, and reports the result,
// translating the closed error taxonomy into exit codes: 0 success, 2
// bad input, 3 infeasible placement, 4 unroutable, 1 internal.
//
// This package stays on the standard library's flag package rather than
// a CLI framework dependency — see DESIGN.md for why.
package main
