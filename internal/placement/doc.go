// Package placement implements the SA-based placement engine: it
// searches the space of instance poses (internal/layout.Placement) for
// one minimizing total wire length, using internal/search/anneal as the
// generic optimizer.
//
// The SA state is the whole Placement; Neighbor proposes one of three
// moves (translate, rotate about +Y, swap) with a bounded number of
// collision retries, so the engine always hands anneal a valid neighbor.
// The initial state is seeded by placing instances one at a time in
// descending occupied-volume order, each at a random pose, also with
// bounded collision retries; exhausting the retry budget for any one
// instance fails the whole run with an *rherrors.InfeasibleError.
//
// Run supports an N-worker parallel mode: each worker gets an
// independently derived RNG stream via internal/search/anneal.DeriveRNG,
// and the best-energy result across workers wins.
package placement
