// Package graph implements a tiny synthetic directed multigraph as a
// retrograde.Game[int]: positions are bare integer ids, moves are edges
// indexed per-source, and each edge carries its own go-again flag. It
// exists purely so internal/retrograde's own tests can build the exact
// hand-specified position graphs the test scenarios call for (a single
// terminal, a forced one-move win, a mutual cycle, and so on) as real
// Game implementations instead of ad hoc per-test stubs, the same way
// internal/games/krk backs a real chess endgame.
package graph

import "github.com/hailam/retrograde/internal/retrograde"

// edge is one outgoing move from a position.
type edge struct {
	to      int
	goAgain bool
}

// Game is a mutable directed multigraph under construction until Build is
// called, after which its parent index is fixed.
type Game struct {
	n          int
	primitives []retrograde.Value
	edges      [][]edge
	parents    [][]int
	built      bool
}

// New allocates a graph over positions [0, n).
func New(n int) *Game {
	primitives := make([]retrograde.Value, n)
	for i := range primitives {
		primitives[i] = retrograde.Undecided
	}
	return &Game{
		n:          n,
		primitives: primitives,
		edges:      make([][]edge, n),
	}
}

// SetPrimitive marks id as a terminal position with the given value. v must
// be Win, Lose, or Tie; Undecided is the zero-value default and need not be
// set explicitly.
func (g *Game) SetPrimitive(id int, v retrograde.Value) {
	g.primitives[id] = v
}

// AddMove records a move from "from" to "to". goAgain marks the move as one
// after which the same player moves again (spec §4.6). Call Build once all
// moves are recorded.
func (g *Game) AddMove(from, to int, goAgain bool) {
	g.edges[from] = append(g.edges[from], edge{to: to, goAgain: goAgain})
}

// Build inverts the recorded forward edges into a parent index. It must be
// called once, after all AddMove calls and before the graph is handed to a
// Solver.
func (g *Game) Build() *Game {
	parents := make([][]int, g.n)
	for from, outgoing := range g.edges {
		for _, e := range outgoing {
			parents[e.to] = append(parents[e.to], from)
		}
	}
	g.parents = parents
	g.built = true
	return g
}

// NumPositions implements retrograde.Game[int].
func (g *Game) NumPositions() int { return g.n }

// Primitive implements retrograde.Game[int].
func (g *Game) Primitive(id int) retrograde.Value { return g.primitives[id] }

// GenerateMoves implements retrograde.Game[int]. A move is the index of the
// outgoing edge within that position's edge list.
func (g *Game) GenerateMoves(id int) []int {
	moves := make([]int, len(g.edges[id]))
	for i := range moves {
		moves[i] = i
	}
	return moves
}

// DoMove implements retrograde.Game[int].
func (g *Game) DoMove(id int, m int) int {
	return g.edges[id][m].to
}

// GoAgain implements retrograde.Game[int].
func (g *Game) GoAgain(id int, m int) bool {
	return g.edges[id][m].goAgain
}

// GenerateParents implements retrograde.Game[int] using the index built by
// Build. Calling it before Build returns an empty slice for every id.
func (g *Game) GenerateParents(id int) []int {
	if !g.built {
		return nil
	}
	return g.parents[id]
}
