package retrograde

// Game is the set of oracles the solver depends on, per spec §6. M is the
// concrete move representation a game chooses (an int, or krk.Move
// elsewhere in this repository) — the solver never inspects a move
// itself, only passes it between GenerateMoves and DoMove/GoAgain.
//
// Positions are dense integer ids in [0, NumPositions()). The solver never
// interprets an id; it is opaque outside the game module.
type Game[M any] interface {
	// NumPositions returns the total position count, N.
	NumPositions() int

	// Primitive returns Win, Lose, or Tie if id is a terminal position
	// whose value is determined by game rules alone, or Undecided
	// otherwise. Never called mid-propagation — only during Phase 1.
	Primitive(id int) Value

	// GenerateMoves enumerates the moves available from id. Ordering is
	// irrelevant. The returned slice is owned by the caller; the game
	// module must not retain or mutate it after returning it.
	GenerateMoves(id int) []M

	// GenerateParents yields, once per move that reaches id, the source
	// position of that move. An id unreachable from any other position
	// yields an empty slice. Per invariant 5, for a non-primitive position
	// p with move count M, p must appear in exactly M children's parent
	// lists in total.
	GenerateParents(id int) []int

	// DoMove deterministically applies m at id and returns the resulting
	// position id.
	DoMove(id int, m M) int

	// GoAgain reports whether the same player moves again after playing m
	// at id. Games without a go-again rule report false for every move;
	// the solver does not special-case that game-wide ("constant false")
	// case via a sentinel the way the original C solver compared a
	// function pointer against a DefaultGoAgain global — it is selected
	// explicitly via Mode at NewSolver time instead (see config.go).
	GoAgain(id int, m M) bool
}
