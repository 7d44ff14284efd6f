package main

import (
	"errors"

	"github.com/andrewsmike/redhdl/internal/rherrors"
)

// Exit codes
const (
	exitOK         = 0
	exitInternal   = 1
	exitBadInput   = 2
	exitInfeasible = 3
	exitUnroutable = 4
)

// exitCodeFor maps the closed error taxonomy onto exit codes.
// Unrecognized errors (should not happen against this module's own error
// taxonomy) fall back to exitInternal.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, rherrors.ErrBadNetlist), errors.Is(err, rherrors.ErrBadTile):
		return exitBadInput
	case errors.Is(err, rherrors.ErrInfeasible):
		return exitInfeasible
	case errors.Is(err, rherrors.ErrUnroutable), errors.Is(err, rherrors.ErrNoPath), errors.Is(err, rherrors.ErrOverBudget):
		return exitUnroutable
	default:
		return exitInternal
	}
}
