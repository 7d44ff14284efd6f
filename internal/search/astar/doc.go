// Package astar implements a generic A* engine: an informed best-first
// search parameterized by a Problem capability set, generalized with a
// type parameter instead of being hardwired to any one graph type.
//
// A Problem[S] supplies Start, IsGoal, Neighbors, and Heuristic; Search
// drives a priority queue keyed by g+h, a best-known-g map, and a
// predecessor map. States must be comparable (used as map keys); this
// module's only caller (package router) instantiates S as a small struct
// of (geom.Pos, geom.Direction).
//
// Errors: Search never returns a domain error value — it returns a
// Result whose Found field reports whether a goal was reached, and a
// separate Result.OverBudget flag distinguishes "explored everything
// reachable and found nothing" from "gave up at max_explored". Package
// router is responsible for turning that into a *rherrors.NoPathError
// with the right Reason.
//
// Ties are broken FIFO on equal f=g+h, by giving every queue entry a
// strictly increasing sequence number used as the heap's secondary sort
// key.
package astar
