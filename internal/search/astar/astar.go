package astar

import (
	"container/heap"
)

// Cost is the numeric type used for step costs, heuristics, and totals.
// Modeled as int64 rather than float64: every cost in this system (wire
// length, turn penalties, Steiner-approximation bonuses) is an integer
// count of voxel moves, and integer costs keep the "ties broken FIFO"
// guarantee exact instead of float-comparison-fragile.
type Cost = int64

// Problem is the capability set a caller must supply for an A* search. S
// must be comparable: it is used as a map key in the closed set and the
// predecessor map.
type Problem[S comparable] interface {
	// Start returns the single start state.
	Start() S
	// IsGoal reports whether s is an accepting state.
	IsGoal(s S) bool
	// Neighbors returns every state reachable from s in one step, paired
	// with that step's non-negative cost. The returned slice may be
	// built fresh per call; Search never mutates it.
	Neighbors(s S) []Step[S]
	// Heuristic estimates the cost from s to the nearest goal. For the
	// optimality guarantee it must be admissible (never
	// overestimate) and, for the monotone/consistent case, should also
	// satisfy h(s) <= cost(s,s') + h(s') for every neighbor s'.
	Heuristic(s S) Cost
}

// Step pairs a reachable neighbor state with the cost of the move that
// reaches it.
type Step[S any] struct {
	State S
	Cost  Cost
}

// Result is the outcome of a successful or exhausted Search.
type Result[S any] struct {
	// Path is the sequence of states from Start to a goal, inclusive.
	// Empty when Found is false.
	Path []S
	// Cost is the total path cost. Zero when Found is false.
	Cost Cost
	// Found reports whether a goal state was reached.
	Found bool
	// OverBudget reports whether the search stopped because it hit
	// MaxExplored before exhausting the reachable state space — distinct
	// from Found=false with OverBudget=false, which means no goal is
	// reachable (within MaxCost, when MaxCost is set).
	OverBudget bool
}

// Config bounds a Search.
type Config struct {
	// MaxCost, if nonzero, prunes any state whose g exceeds it.
	MaxCost Cost
	// MaxExplored, if nonzero, caps the number of states popped from the
	// open set before Search gives up and reports OverBudget.
	MaxExplored int
}

// queueEntry is one open-set member: the f=g+h priority, a strictly
// increasing sequence number breaking ties FIFO, and the state itself.
type queueEntry[S comparable] struct {
	f, g  Cost
	seq   int
	state S
}

type priorityQueue[S comparable] []*queueEntry[S]

func (pq priorityQueue[S]) Len() int { return len(pq) }
func (pq priorityQueue[S]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue[S]) Push(x any)   { *pq = append(*pq, x.(*queueEntry[S])) }
func (pq *priorityQueue[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// runner holds the mutable state of one Search call, split from the
// public entry point so Search itself stays a pure constructor.
type runner[S comparable] struct {
	problem Problem[S]
	cfg     Config

	open      priorityQueue[S]
	bestG     map[S]Cost
	parent    map[S]S
	hasParent map[S]bool
	nextSeq   int
	explored  int
}

// Search runs A* over problem, bounded by cfg, and returns the best path
// found. Search is deterministic for a given problem and cfg: states are
// popped from the open set in f-then-insertion-order, and Neighbors is
// consulted in the order it returns them.
func Search[S comparable](problem Problem[S], cfg Config) Result[S] {
	r := &runner[S]{
		problem:   problem,
		cfg:       cfg,
		bestG:     make(map[S]Cost),
		parent:    make(map[S]S),
		hasParent: make(map[S]bool),
	}
	return r.run()
}

func (r *runner[S]) run() Result[S] {
	start := r.problem.Start()
	r.bestG[start] = 0
	heap.Init(&r.open)
	r.push(start, 0)

	for r.open.Len() > 0 {
		if r.cfg.MaxExplored > 0 && r.explored >= r.cfg.MaxExplored {
			return Result[S]{OverBudget: true}
		}
		entry := heap.Pop(&r.open).(*queueEntry[S])
		if entry.g > r.bestG[entry.state] {
			// Stale lazy-decrease-key entry: a better g was already found
			// for this state. Skip it rather than reprocessing.
			continue
		}
		r.explored++

		if r.problem.IsGoal(entry.state) {
			return r.reconstruct(entry.state, entry.g)
		}

		for _, step := range r.problem.Neighbors(entry.state) {
			newG := entry.g + step.Cost
			if r.cfg.MaxCost > 0 && newG > r.cfg.MaxCost {
				continue
			}
			if best, ok := r.bestG[step.State]; ok && newG >= best {
				continue
			}
			r.bestG[step.State] = newG
			r.parent[step.State] = entry.state
			r.hasParent[step.State] = true
			r.push(step.State, newG)
		}
	}

	return Result[S]{Found: false}
}

func (r *runner[S]) push(s S, g Cost) {
	h := r.problem.Heuristic(s)
	heap.Push(&r.open, &queueEntry[S]{f: g + h, g: g, seq: r.nextSeq, state: s})
	r.nextSeq++
}

func (r *runner[S]) reconstruct(goal S, cost Cost) Result[S] {
	path := []S{goal}
	cur := goal
	for r.hasParent[cur] {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	// path was built goal-to-start; reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return Result[S]{Path: path, Cost: cost, Found: true}
}
