// Package anneal implements a generic simulated-annealing engine: a
// Problem supplies an initial state, a local neighbor mutation, an
// energy function, and a cooling schedule; Run returns the best-energy
// state ever seen, not the final state.
//
// Determinism is load-bearing: all randomness flows through an explicit
// *rand.Rand seeded once from Config.Seed (RNGFromSeed), never a
// package-level or time-seeded source; DeriveSeed/DeriveRNG apply a
// SplitMix64 mix for callers that need per-worker seeds. So "same seed, same schedule,
// same problem ⇒ same best state" holds by construction — every
// accept/reject draw consumes the same RNG in the same order for a
// given sequence of proposals.
//
// Acceptance follows the Metropolis criterion: strictly-lower-energy
// proposals are always accepted; higher-energy proposals are accepted
// with probability exp(-Δenergy/temperature). The schedule is supplied by
// the Problem (exponential cooling for the placement engine's use, but
// this package does not hardwire that choice).
package anneal
