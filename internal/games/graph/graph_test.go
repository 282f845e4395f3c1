package graph

import (
	"testing"

	"github.com/hailam/retrograde/internal/retrograde"
)

func TestBuildInvertsEdgesIntoParents(t *testing.T) {
	g := New(3)
	g.AddMove(0, 2, false)
	g.AddMove(1, 2, true)
	g.Build()

	parents := g.GenerateParents(2)
	if len(parents) != 2 {
		t.Fatalf("GenerateParents(2) = %v, want 2 entries", parents)
	}

	seen := map[int]bool{}
	for _, p := range parents {
		seen[p] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("GenerateParents(2) = %v, want {0, 1}", parents)
	}
}

func TestMoveAndGoAgainRoundTrip(t *testing.T) {
	g := New(2)
	g.AddMove(0, 1, true)
	g.Build()

	moves := g.GenerateMoves(0)
	if len(moves) != 1 {
		t.Fatalf("GenerateMoves(0) = %v, want 1 move", moves)
	}
	m := moves[0]
	if g.DoMove(0, m) != 1 {
		t.Errorf("DoMove(0, m) = %d, want 1", g.DoMove(0, m))
	}
	if !g.GoAgain(0, m) {
		t.Error("GoAgain(0, m) = false, want true")
	}
}

func TestUnbuiltGraphHasNoParents(t *testing.T) {
	g := New(2)
	g.AddMove(0, 1, false)
	if parents := g.GenerateParents(1); parents != nil {
		t.Errorf("GenerateParents before Build = %v, want nil", parents)
	}
}

func TestPrimitiveDefaultsUndecided(t *testing.T) {
	g := New(1)
	if v := g.Primitive(0); v != retrograde.Undecided {
		t.Errorf("Primitive(0) = %v, want UNDECIDED", v)
	}
	g.SetPrimitive(0, retrograde.Win)
	if v := g.Primitive(0); v != retrograde.Win {
		t.Errorf("Primitive(0) = %v, want WIN", v)
	}
}
