package krk

import (
	"fmt"
	"strings"
)

// Square is one of the 64 squares of a chessboard, 0 = a1 through 63 = h8,
// file-major within each rank (a1=0, b1=1, ..., h1=7, a2=8, ...).
type Square uint8

// NewSquare builds a Square from zero-based file (0=a) and rank (0=1).
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the zero-based file (0=a ... 7=h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero-based rank (0=1 ... 7=8).
func (s Square) Rank() int { return int(s) / 8 }

// String renders algebraic notation, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File(), s.Rank()+1)
}

// Side is the player to move.
type Side uint8

const (
	White Side = iota
	Black
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "w"
	}
	return "b"
}

// Placement is a complete King-and-Rook-vs-King snapshot: the white king's
// square, the white rook's square, the black king's square, and whose turn
// it is. This is the entire state space of the endgame — no other piece
// ever exists on the board.
type Placement struct {
	WK, WR, BK Square
	Turn       Side
}

// rawSpace is the size of the dense encoding space before filtering out
// placements that cannot arise in a real game: 64 choices each for the
// white king, white rook, and black king squares, times 2 for side to
// move.
const rawSpace = 64 * 64 * 64 * 2

// encode packs a Placement into a dense integer in [0, rawSpace).
func encode(pl Placement) int {
	return ((int(pl.WK)*64+int(pl.WR))*64+int(pl.BK))*2 + int(pl.Turn)
}

// decode is encode's inverse.
func decode(raw int) Placement {
	turn := raw % 2
	raw /= 2
	bk := raw % 64
	raw /= 64
	wr := raw % 64
	raw /= 64
	wk := raw
	return Placement{WK: Square(wk), WR: Square(wr), BK: Square(bk), Turn: Side(turn)}
}

func kingsAdjacent(a, b Square) bool {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	return df <= 1 && dr <= 1
}

func sameLine(a, b Square) bool {
	return a.File() == b.File() || a.Rank() == b.Rank()
}

// clearBetween reports whether blocker does not lie strictly between a and
// b along the rank or file they share. Callers must have already checked
// sameLine(a, b).
func clearBetween(a, b, blocker Square) bool {
	if a.File() == b.File() {
		if blocker.File() != a.File() {
			return true
		}
		lo, hi := a.Rank(), b.Rank()
		if lo > hi {
			lo, hi = hi, lo
		}
		return blocker.Rank() <= lo || blocker.Rank() >= hi
	}
	if blocker.Rank() != a.Rank() {
		return true
	}
	lo, hi := a.File(), b.File()
	if lo > hi {
		lo, hi = hi, lo
	}
	return blocker.File() <= lo || blocker.File() >= hi
}

// rookAttacks reports whether a rook on "from" attacks "target", given the
// single square that can block the line between them.
func rookAttacks(from, blocker, target Square) bool {
	return sameLine(from, target) && clearBetween(from, target, blocker)
}

// legalPlacement reports whether pl is a structurally valid snapshot: the
// three pieces occupy distinct squares, the kings are not adjacent, and
// the side not on move is not left in check (which chess never allows to
// persist once a move completes).
func legalPlacement(pl Placement) bool {
	if pl.WK == pl.WR || pl.WK == pl.BK || pl.WR == pl.BK {
		return false
	}
	if kingsAdjacent(pl.WK, pl.BK) {
		return false
	}
	if pl.Turn == White && rookAttacks(pl.WR, pl.WK, pl.BK) {
		return false
	}
	return true
}

// InCheck reports whether the side to move in pl is in check. White is
// never in check: Black has no piece capable of giving it.
func InCheck(pl Placement) bool {
	return pl.Turn == Black && rookAttacks(pl.WR, pl.WK, pl.BK)
}

// ParseFEN parses the piece-placement and side-to-move fields of a FEN
// string into a Placement. Only 'K', 'R', and 'k' are recognized pieces;
// any other piece letter is an error, since no other piece can exist in
// this endgame. Castling rights, en passant, and the move counters are
// accepted but ignored.
func ParseFEN(fen string) (Placement, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return Placement{}, fmt.Errorf("krk: FEN %q missing piece placement or side to move", fen)
	}

	var pl Placement
	var haveWK, haveWR, haveBK bool

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Placement{}, fmt.Errorf("krk: FEN %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c == 'K':
				if haveWK {
					return Placement{}, fmt.Errorf("krk: FEN %q has more than one white king", fen)
				}
				pl.WK, haveWK = NewSquare(file, rank), true
				file++
			case c == 'R':
				if haveWR {
					return Placement{}, fmt.Errorf("krk: FEN %q has more than one white rook", fen)
				}
				pl.WR, haveWR = NewSquare(file, rank), true
				file++
			case c == 'k':
				if haveBK {
					return Placement{}, fmt.Errorf("krk: FEN %q has more than one black king", fen)
				}
				pl.BK, haveBK = NewSquare(file, rank), true
				file++
			default:
				return Placement{}, fmt.Errorf("krk: FEN %q contains %q, which is not a King+Rook-vs-King piece", fen, string(c))
			}
		}
		if file != 8 {
			return Placement{}, fmt.Errorf("krk: FEN %q rank %d does not total 8 files", fen, rank+1)
		}
	}
	if !haveWK || !haveWR || !haveBK {
		return Placement{}, fmt.Errorf("krk: FEN %q is missing a white king, white rook, or black king", fen)
	}

	switch fields[1] {
	case "w":
		pl.Turn = White
	case "b":
		pl.Turn = Black
	default:
		return Placement{}, fmt.Errorf("krk: FEN %q has invalid side to move %q", fen, fields[1])
	}

	return pl, nil
}

// FEN renders pl back into FEN piece-placement and side-to-move fields,
// e.g. "8/8/4k3/8/8/4R3/8/4K3 w - - 0 1".
func (pl Placement) FEN() string {
	var grid [64]byte
	grid[pl.WK] = 'K'
	grid[pl.WR] = 'R'
	grid[pl.BK] = 'k'

	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			if grid[sq] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&b, "%d", empty)
				empty = 0
			}
			b.WriteByte(grid[sq])
		}
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	fmt.Fprintf(&b, " %s - - 0 1", pl.Turn)
	return b.String()
}
