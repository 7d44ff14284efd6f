// Package layout holds the Pose and Placement data types shared by the
// placement engine (which produces a Placement) and the router and
// assembly packages (which consume one). Splitting the data type out of
// internal/placement avoids an import cycle: the placement engine's
// optional collision-relaxed routing-energy term calls into internal/router,
// so internal/router cannot itself import internal/placement.
package layout
