// Package retrograde implements a bottom-up, fixed-point solver for finite,
// two-player, perfect-information games whose position graphs may contain
// cycles ("loopy" games), with an optional go-again rule where the same
// player moves twice.
//
// The solver assigns every reachable position a Value and a Remoteness by
// retrograde analysis: it seeds terminal (primitive) positions, then
// propagates their values backward through parent edges until the labeling
// reaches a fixed point. Positions whose value depends only on an
// unresolved cycle are swept to Draw at the end.
package retrograde

import "fmt"

// Value is a position's game-theoretic value, from the mover's perspective.
type Value uint8

const (
	// Undecided marks a position the solver has not yet determined.
	Undecided Value = iota
	// Win means the player to move can force a win in finite plies.
	Win
	// Lose means every move leads to a position where the opponent wins.
	Lose
	// Tie means no forced win/loss exists, but a forced, remoteness-bounded
	// cycle-avoiding terminal is reachable. A Tie is strictly better than a Draw.
	Tie
	// Draw means the position lies on an infinite play with no forced
	// resolution; its Remoteness is always RemotenessMax.
	Draw
)

func (v Value) String() string {
	switch v {
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	case Tie:
		return "TIE"
	case Draw:
		return "DRAW"
	case Undecided:
		return "UNDECIDED"
	default:
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
}

// Invert swaps Win and Lose, the go-again aggregation rule's value flip for
// a move after which the same player moves again. Tie, Draw, and Undecided
// are unaffected.
func (v Value) Invert() Value {
	switch v {
	case Win:
		return Lose
	case Lose:
		return Win
	default:
		return v
	}
}

// Remoteness is the number of plies to a decided outcome under optimal
// play, saturating at a solver-configured maximum.
type Remoteness int32

// DefaultRemotenessMax is the saturation cap used when a Config does not
// override it. Games with longer forced sequences should pick a larger
// value (GAMESMAN's own games commonly use 255 for small games and larger
// caps for bigger ones).
const DefaultRemotenessMax Remoteness = 255
