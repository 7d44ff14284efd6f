package rherrors

import "errors"

// Sentinel errors for the closed taxonomy. Every typed wrapper below
// unwraps to exactly one of these, so callers can branch with
// errors.Is(err, rherrors.ErrNoPath) without caring about the concrete
// wrapper type, and recover structured fields with errors.As when they do.
var (
	// ErrBadNetlist indicates a validation failure while constructing or
	// checking a Netlist: a dangling instance/port/pin reference, a pin
	// claimed by two networks, or a sink wired to a non-input role.
	ErrBadNetlist = errors.New("rherrors: bad netlist")

	// ErrBadTile indicates a library tile directory is missing a required
	// meta.json field or carries a malformed one.
	ErrBadTile = errors.New("rherrors: bad tile")

	// ErrInfeasible indicates the placement engine could not seed even one
	// valid initial placement within its rejection budget.
	ErrInfeasible = errors.New("rherrors: infeasible placement")

	// ErrNoPath indicates the router could not connect a network's driver
	// to one of its sinks.
	ErrNoPath = errors.New("rherrors: no path")

	// ErrUnroutable indicates the assembly orchestrator gave up on a
	// network per the on_unroutable=abort policy.
	ErrUnroutable = errors.New("rherrors: unroutable network")

	// ErrOverBudget indicates a search exceeded a configured exploration
	// or step cap before converging.
	ErrOverBudget = errors.New("rherrors: over budget")

	// ErrInternal indicates a violated invariant — a bug, not a bad input.
	// Never recovered; always fails the run that produced it.
	ErrInternal = errors.New("rherrors: internal invariant violated")
)

// NoPathReason enumerates why the router failed to connect a network.
type NoPathReason int

const (
	// ReasonUnreachable means that even with every obstacle ignored, no
	// path within the router's bounds connects driver to sink (for
	// example, the sink lies outside those bounds).
	ReasonUnreachable NoPathReason = iota
	// ReasonBlocked means a path exists topologically but every candidate
	// is blocked by occupied regions or prior wire footprints.
	ReasonBlocked
	// ReasonOverBudget means the search exhausted max_explored before
	// finding a path.
	ReasonOverBudget
)

// String renders the reason the way it appears in log and error text.
func (r NoPathReason) String() string {
	switch r {
	case ReasonUnreachable:
		return "unreachable"
	case ReasonBlocked:
		return "blocked"
	case ReasonOverBudget:
		return "over_budget"
	default:
		return "unknown"
	}
}

// BadNetlistError names the offending triple for an ErrBadNetlist failure.
type BadNetlistError struct {
	Kind     string // e.g. "dangling_instance", "pin_double_claim", "bad_sink_role"
	Instance string
	Port     string
	PinIndex int
	Details  string
}

func (e *BadNetlistError) Error() string {
	return "rherrors: bad netlist: " + e.Kind + " at " + e.Instance + "." + e.Port + ": " + e.Details
}

// Unwrap lets errors.Is(err, ErrBadNetlist) succeed.
func (e *BadNetlistError) Unwrap() error { return ErrBadNetlist }

// BadTileError names the tile path and the missing/malformed field.
type BadTileError struct {
	Path  string
	Field string
}

func (e *BadTileError) Error() string {
	return "rherrors: bad tile at " + e.Path + ": field " + e.Field
}

func (e *BadTileError) Unwrap() error { return ErrBadTile }

// InfeasibleError names the instance that could not be seeded.
type InfeasibleError struct {
	InstanceID string
}

func (e *InfeasibleError) Error() string {
	return "rherrors: infeasible: could not place instance " + e.InstanceID
}

func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// NoPathError names the network and the reason the router gave up.
type NoPathError struct {
	NetworkID string
	Reason    NoPathReason
}

func (e *NoPathError) Error() string {
	return "rherrors: no path for network " + e.NetworkID + ": " + e.Reason.String()
}

func (e *NoPathError) Unwrap() error { return ErrNoPath }

// UnroutableError names the network the assembly gave up on.
type UnroutableError struct {
	NetworkID string
}

func (e *UnroutableError) Error() string {
	return "rherrors: unroutable network " + e.NetworkID
}

func (e *UnroutableError) Unwrap() error { return ErrUnroutable }

// OverBudgetError names the component (e.g. "router") whose exploration
// cap was exceeded. Produced when an abort-policy caller wants to
// distinguish a search that ran out of budget from one that genuinely
// found no path.
type OverBudgetError struct {
	Component string
}

func (e *OverBudgetError) Error() string {
	return "rherrors: " + e.Component + " exceeded its budget"
}

func (e *OverBudgetError) Unwrap() error { return ErrOverBudget }

// InternalError wraps a free-form message describing the violated
// invariant. Always indicates a bug in this module, never bad input.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return "rherrors: internal: " + e.Msg }

func (e *InternalError) Unwrap() error { return ErrInternal }
