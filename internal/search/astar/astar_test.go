package astar_test

import (
	"testing"

	"github.com/andrewsmike/redhdl/internal/search/astar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridPoint is a tiny 2D integer state used to exercise astar.Problem
// without pulling in the geom/voxel packages.
type gridPoint struct{ x, y int }

// gridProblem is a Manhattan-distance grid with an optional set of
// blocked points, used both for the optimality property and
// for an obstacle-detour scenario.
type gridProblem struct {
	start, goal gridPoint
	blocked map[gridPoint]bool
	width, height int
}

func (p gridProblem) Start() gridPoint { return p.start }
func (p gridProblem) IsGoal(s gridPoint) bool { return s == p.goal }

func (p gridProblem) Heuristic(s gridPoint) astar.Cost {
	dx := s.x - p.goal.x
	if dx < 0 {
		dx = -dx
	}
	dy := s.y - p.goal.y
	if dy < 0 {
		dy = -dy
	}
	return astar.Cost(dx + dy)
}

func (p gridProblem) Neighbors(s gridPoint) []astar.Step[gridPoint] {
	deltas := []gridPoint{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	out := make([]astar.Step[gridPoint], 0, 4)
	for _, d := range deltas {
		n := gridPoint{s.x + d.x, s.y + d.y}
		if n.x < 0 || n.y < 0 || n.x >= p.width || n.y >= p.height {
			continue
		}
		if p.blocked[n] {
			continue
		}
		out = append(out, astar.Step[gridPoint]{State: n, Cost: 1})
	}
	return out
}

func TestSearchFindsShortestOpenGridPath(t *testing.T) {
	prob := gridProblem{start: gridPoint{0, 0}, goal: gridPoint{3, 3}, width: 10, height: 10}
	res := astar.Search[gridPoint](prob, astar.Config{})
	require.True(t, res.Found)
	assert.EqualValues(t, 6, res.Cost) // Manhattan distance, no obstacles
	assert.Equal(t, prob.start, res.Path[0])
	assert.Equal(t, prob.goal, res.Path[len(res.Path)-1])
}

// TestSearchDetourCost mirrors scenario 4: driver and sink 5
// apart, a wall forces a 2-cell detour (one step up over the wall's top
// at y=2, one step back down).
func TestSearchDetourCost(t *testing.T) {
	blocked := map[gridPoint]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}
	prob := gridProblem{start: gridPoint{0, 2}, goal: gridPoint{5, 2}, width: 10, height: 10, blocked: blocked}
	res := astar.Search[gridPoint](prob, astar.Config{})
	require.True(t, res.Found)
	assert.EqualValues(t, 5+2, res.Cost)
}

func TestSearchNoPathWhenFullyBlocked(t *testing.T) {
	blocked := map[gridPoint]bool{}
	for y := 0; y < 5; y++ {
		blocked[gridPoint{2, y}] = true
	}
	prob := gridProblem{start: gridPoint{0, 0}, goal: gridPoint{4, 0}, width: 5, height: 5, blocked: blocked}
	res := astar.Search[gridPoint](prob, astar.Config{})
	assert.False(t, res.Found)
	assert.False(t, res.OverBudget)
}

func TestSearchOverBudget(t *testing.T) {
	prob := gridProblem{start: gridPoint{0, 0}, goal: gridPoint{9, 9}, width: 10, height: 10}
	res := astar.Search[gridPoint](prob, astar.Config{MaxExplored: 1})
	assert.False(t, res.Found)
	assert.True(t, res.OverBudget)
}

// TestSearchDeterministic checks "A* determinism": identical
// inputs produce an identical path.
func TestSearchDeterministic(t *testing.T) {
	prob := gridProblem{start: gridPoint{0, 0}, goal: gridPoint{6, 6}, width: 12, height: 12}
	first := astar.Search[gridPoint](prob, astar.Config{})
	second := astar.Search[gridPoint](prob, astar.Config{})
	require.True(t, first.Found)
	require.True(t, second.Found)
	assert.Equal(t, first.Path, second.Path)
}

// bfsCost computes the true shortest-path cost via exhaustive BFS, used
// to check A* optimality against an independent, heuristic-free method.
func bfsCost(prob gridProblem) (astar.Cost, bool) {
	type item struct {
		s gridPoint
		cost astar.Cost
	}
	visited := map[gridPoint]bool{prob.start: true}
	queue := []item{{prob.start, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.s == prob.goal {
			return cur.cost, true
		}
		for _, step := range prob.Neighbors(cur.s) {
			if !visited[step.State] {
				visited[step.State] = true
				queue = append(queue, item{step.State, cur.cost + 1})
			}
		}
	}
	return 0, false
}

func TestSearchOptimalityAgainstBFS(t *testing.T) {
	blocked := map[gridPoint]bool{{2, 0}: true, {2, 1}: true, {2, 3}: true, {2, 4}: true}
	prob := gridProblem{start: gridPoint{0, 2}, goal: gridPoint{5, 2}, width: 8, height: 8, blocked: blocked}

	want, ok := bfsCost(prob)
	require.True(t, ok)

	got := astar.Search[gridPoint](prob, astar.Config{})
	require.True(t, got.Found)
	assert.Equal(t, want, got.Cost)
}
