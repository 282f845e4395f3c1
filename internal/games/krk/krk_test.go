package krk

import (
	"testing"

	"github.com/hailam/retrograde/internal/retrograde"
)

func TestLegalPlacementRejectsOverlapAndAdjacency(t *testing.T) {
	overlap := Placement{WK: 0, WR: 0, BK: 10, Turn: White}
	if legalPlacement(overlap) {
		t.Error("expected overlapping king/rook squares to be illegal")
	}

	// Kings on adjacent squares (a1, a2) is illegal regardless of the rook.
	adjacent := Placement{WK: 0, WR: 20, BK: 8, Turn: White}
	if legalPlacement(adjacent) {
		t.Error("expected adjacent kings to be illegal")
	}
}

func TestEnumerateOnlyHoldsLegalPlacements(t *testing.T) {
	g := enumerate()
	if len(g.idToRaw) < 2 {
		t.Fatal("expected a non-trivial enumerated position space")
	}
	// The sentinel draw id must never decode to a real raw encoding.
	if g.idToRaw[g.drawID] != -1 {
		t.Errorf("drawID raw encoding = %d, want -1 sentinel", g.idToRaw[g.drawID])
	}
	for id := 0; id < g.drawID; id++ {
		pl := decode(int(g.idToRaw[id]))
		if !legalPlacement(pl) {
			t.Fatalf("id %d decodes to an illegal placement", id)
		}
	}
}

func TestDrawPrimitiveIsTie(t *testing.T) {
	g := NewGame()
	if v := g.Primitive(g.DrawID()); v != retrograde.Tie {
		t.Errorf("Primitive(drawID) = %v, want TIE", v)
	}
	if moves := g.GenerateMoves(g.DrawID()); moves != nil {
		t.Errorf("GenerateMoves(drawID) = %v, want nil", moves)
	}
}

func TestCheckmatePrimitiveIsLose(t *testing.T) {
	g := NewGame()
	// Classic box mate: black king a8, white king c7 covers b8/b7, rook a1
	// delivers check along the a-file with no escape or block available.
	pl, err := ParseFEN("k7/2K5/8/8/8/8/8/R7 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	id, ok := g.IDFromPlacement(pl)
	if !ok {
		t.Fatal("expected this position to be a member of the enumerated space")
	}
	if !IsCheckmate(pl) {
		t.Fatal("test position is not actually checkmate; fix the fixture")
	}
	if v := g.Primitive(id); v != retrograde.Lose {
		t.Errorf("Primitive(checkmated id) = %v, want LOSE", v)
	}
}

func TestDoMoveCapturingRookReachesDrawID(t *testing.T) {
	g := NewGame()
	// White king e1, white rook b1 (undefended), black king b2 to move.
	pl, err := ParseFEN("8/8/8/8/8/8/1k6/1R2K3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	id, ok := g.IDFromPlacement(pl)
	if !ok {
		t.Fatal("expected starting position to be a member of the enumerated space")
	}

	found := false
	for _, m := range g.GenerateMoves(id) {
		if g.DoMove(id, m) == g.DrawID() {
			found = true
		}
	}
	if !found {
		t.Error("expected a rook-capturing move to exist and lead to drawID")
	}
}

func TestParentIndexInvertsForwardEdges(t *testing.T) {
	g := NewGame()
	for id := 0; id < 200 && id < len(g.idToRaw); id++ {
		for _, m := range g.GenerateMoves(id) {
			child := g.DoMove(id, m)
			parents := g.GenerateParents(child)
			seen := false
			for _, p := range parents {
				if p == id {
					seen = true
					break
				}
			}
			if !seen {
				t.Fatalf("id %d's move to %d is not reflected in %d's parent list", id, child, child)
			}
		}
	}
}

func TestParseFENRejectsForeignPieces(t *testing.T) {
	if _, err := ParseFEN("8/8/8/8/8/8/8/QK1k4 w - - 0 1"); err == nil {
		t.Error("expected a queen on the board to be rejected")
	}
}

func TestFENRoundTrip(t *testing.T) {
	pl, err := ParseFEN("8/8/4k3/8/8/4R3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	again, err := ParseFEN(pl.FEN())
	if err != nil {
		t.Fatalf("ParseFEN(FEN()): %v", err)
	}
	if again != pl {
		t.Errorf("round trip mismatch: %+v != %+v", again, pl)
	}
}
