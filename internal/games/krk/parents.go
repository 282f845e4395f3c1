package krk

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// buildParentsSerial inverts the forward move relation: for every
// position, generate its legal moves and record it as a parent of each
// resulting child. This sidesteps writing a chess "unmove" generator — the
// position space is small and fully enumerable up front, so simply
// forward-playing every position once is enough to learn every
// parent/child edge, satisfying invariant 5 (a position appears across its
// children's parent lists exactly as many times as it has moves) by
// construction.
func buildParentsSerial(g *Game) [][]int32 {
	parents := make([][]int32, len(g.idToRaw))
	for id := range g.idToRaw {
		for _, m := range g.GenerateMoves(id) {
			child := g.DoMove(id, m)
			parents[child] = append(parents[child], int32(id))
		}
	}
	return parents
}

// NewGameParallel enumerates the King+Rook-vs-King position space and
// builds its parent index sharded across GOMAXPROCS workers. It is
// functionally identical to NewGame, only faster on the full 8x8 board:
// the expensive step, generating every position's legal moves, is
// embarrassingly parallel across ids since each id's forward edges are
// computed independently; only the cheap inversion step (appending a
// parent to its children's lists) needs to run against shared state, so it
// stays single-threaded after the parallel pass.
//
// This lives entirely in the surrounding game module's offline precompute,
// not the solver's core (spec §5 constrains the retrograde fixed point
// itself to be single-threaded; it says nothing about how a game module
// builds the tables it hands the solver).
func NewGameParallel() *Game {
	g := enumerate()

	n := len(g.idToRaw)
	children := make([][]int32, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = 1
	}
	if workers < 1 {
		workers = 1
	}
	shard := (n + workers - 1) / workers

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := lo + shard
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		eg.Go(func() error {
			for id := lo; id < hi; id++ {
				moves := g.GenerateMoves(id)
				edges := make([]int32, 0, len(moves))
				for _, m := range moves {
					edges = append(edges, int32(g.DoMove(id, m)))
				}
				children[id] = edges
			}
			return nil
		})
	}
	// GenerateMoves/DoMove never return an error in this game, so the only
	// possible error here would be a panic from an out-of-space move,
	// which errgroup.Wait cannot observe; Wait is still called for the
	// synchronization barrier it provides.
	_ = eg.Wait()

	parents := make([][]int32, n)
	for id, edges := range children {
		for _, child := range edges {
			parents[child] = append(parents[child], int32(id))
		}
	}

	g.parents = parents
	return g
}
