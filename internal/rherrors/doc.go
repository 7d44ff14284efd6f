// Package rherrors defines the closed error taxonomy shared by every
// synthesis stage: geometry and the voxel map never produce domain errors
// (they return booleans or zero values), but the netlist validator, the
// instance library loader, the placement engine, the path router, and the
// assembly orchestrator all report failures through the sentinel values and
// typed wrapper structs declared here.
//
// Callers branch with errors.Is against the sentinels (ErrBadNetlist,
// ErrBadTile, ErrInfeasible, ErrNoPath, ErrUnroutable, ErrOverBudget,
// ErrInternal) and recover structured fields (network id, instance id,
// reason) with errors.As against the typed wrappers.
//
// Internal errors are never recovered by any caller in this module; they
// signal a violated invariant and should fail the whole run.
package rherrors
