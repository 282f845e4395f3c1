// Package krk is a concrete retrograde.Game implementation: the King and
// Rook versus King chess endgame, solved from scratch by retrograde
// analysis rather than probed from a downloaded tablebase.
//
// The board mechanics here are deliberately minimal: this endgame only
// ever has three pieces on the board, so there is no need for a general
// move generator, bitboard attack tables, or a transposition-hashing
// scheme built for a full 32-piece game. GenerateLegalMoves, applyMove,
// IsCheckmate, and IsStalemate exist only in the shapes this game needs,
// the way the teacher's internal/tablebase package exercised board
// positions for WDL probing — except here the table is generated, not
// downloaded.
package krk

import (
	"fmt"

	"github.com/hailam/retrograde/internal/retrograde"
)

// Game enumerates every legal King+Rook-vs-King placement (white king,
// white rook, black king, side to move) as a dense id space and answers
// the retrograde.Game[Move] contract against it.
//
// One extra id, drawID, absorbs every position reached by the black king
// capturing the undefended white rook: material is then insufficient to
// force mate from either side, so it is a single dead-drawn state rather
// than a second king-position space to track.
type Game struct {
	idToRaw []int32
	rawToID []int32 // indexed by raw encoding, -1 if not a member of the position space
	parents [][]int32
	drawID  int
}

// NewGame enumerates the full King+Rook-vs-King position space and builds
// its parent index serially. For the full 8x8 board this enumeration and
// the move generation that follows it are sizable one-time costs; use
// NewGameParallel to shard the parent-index build across workers instead.
func NewGame() *Game {
	g := enumerate()
	g.parents = buildParentsSerial(g)
	return g
}

func enumerate() *Game {
	g := &Game{rawToID: make([]int32, rawSpace)}
	for i := range g.rawToID {
		g.rawToID[i] = -1
	}

	for raw := 0; raw < rawSpace; raw++ {
		pl := decode(raw)
		if !legalPlacement(pl) {
			continue
		}
		g.rawToID[raw] = int32(len(g.idToRaw))
		g.idToRaw = append(g.idToRaw, int32(raw))
	}

	g.drawID = len(g.idToRaw)
	g.idToRaw = append(g.idToRaw, -1) // sentinel: insufficient-material draw, never decoded
	return g
}

func (g *Game) placement(id int) Placement {
	return decode(int(g.idToRaw[id]))
}

// NumPositions implements retrograde.Game[Move].
func (g *Game) NumPositions() int { return len(g.idToRaw) }

// Primitive implements retrograde.Game[Move]. A checkmated side to move
// loses; a stalemated side ties (the game ends immediately, drawn, with
// remoteness zero — a TIE primitive, not a DRAW, since DRAW is reserved
// for positions whose value only emerges from an unresolved cycle, per
// spec §3).
func (g *Game) Primitive(id int) retrograde.Value {
	if id == g.drawID {
		return retrograde.Tie
	}
	pl := g.placement(id)
	switch {
	case IsCheckmate(pl):
		return retrograde.Lose
	case IsStalemate(pl):
		return retrograde.Tie
	default:
		return retrograde.Undecided
	}
}

// GenerateMoves implements retrograde.Game[Move].
func (g *Game) GenerateMoves(id int) []Move {
	if id == g.drawID {
		return nil
	}
	return GenerateLegalMoves(g.placement(id))
}

// DoMove implements retrograde.Game[Move].
func (g *Game) DoMove(id int, m Move) int {
	pl := g.placement(id)
	if capturesRook(pl, m) {
		return g.drawID
	}

	child, ok := g.IDFromPlacement(applyMove(pl, m))
	if !ok {
		panic(fmt.Sprintf("krk: move %s from id %d reached a position outside the enumerated space", m.ToSAN(pl), id))
	}
	return child
}

// IDFromPlacement looks up the dense id for pl. It reports ok=false if pl
// is outside the enumerated space (illegal placement).
func (g *Game) IDFromPlacement(pl Placement) (id int, ok bool) {
	raw := encode(pl)
	child := g.rawToID[raw]
	if child < 0 {
		return 0, false
	}
	return int(child), true
}

// DrawID returns the absorbing dead-drawn id used for any position reached
// by capturing the white rook.
func (g *Game) DrawID() int { return g.drawID }

// GoAgain implements retrograde.Game[Move]. Chess has no go-again rule:
// every move passes the turn to the opponent.
func (g *Game) GoAgain(id int, m Move) bool { return false }

// GenerateParents implements retrograde.Game[Move] using the parent index
// built once at construction time (see parents.go).
func (g *Game) GenerateParents(id int) []int {
	raw := g.parents[id]
	parents := make([]int, len(raw))
	for i, p := range raw {
		parents[i] = int(p)
	}
	return parents
}
