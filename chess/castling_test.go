package chess_test

import (
	"testing"

	"github.com/kai468/chupochess/chess"
)

func TestCastlingRightsSequence(t *testing.T) {
	b := fromFEN(t, "4k2r/8/8/8/8/8/8/RN2K1NR w KQ - 0 1")
	steps := []struct {
		move string
		want int
	}{
		{"", 0},
		{"G1->F3", 1},
		{"E8->E7", 1},
		{"B1->C3", 2},
		{"H8->D8", 1}, // D1 is now attacked
		{"F3->D2", 2}, // the knight shuts the file
		{"E7->E6", 2},
		{"E1->F1", 0},
	}
	for _, s := range steps {
		if s.move != "" {
			play(t, b, s.move)
		}
		if got := len(b.CastlingRights(chess.White)); got != s.want {
			t.Fatalf("after %q castling rights: got %d want %d (%v)", s.move, got, s.want, b.CastlingRights(chess.White))
		}
	}
	if got := b.ToFEN(); got != "3r4/8/4k3/8/8/2N5/3N4/R4K1R b - - 0 4" {
		t.Fatalf("ToFEN: got %q", got)
	}
}

func TestCastlingMovesRook(t *testing.T) {
	b := fromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if got := b.CastlingRights(chess.White); len(got) != 2 {
		t.Fatalf("white rights: got %v", got)
	}
	play(t, b, "E1->G1")
	if r, ok := b.PieceAt(loc("F1")); !ok || r.Kind != chess.Rook || !r.HasMoved {
		t.Fatalf("F1 after O-O: got %+v ok=%v", r, ok)
	}
	if _, ok := b.PieceAt(loc("H1")); ok {
		t.Fatalf("H1 still occupied after O-O")
	}
	if b.King(chess.White) != loc("G1") {
		t.Fatalf("king cache: got %v want G1", b.King(chess.White))
	}

	play(t, b, "E8->C8")
	if r, ok := b.PieceAt(loc("D8")); !ok || r.Kind != chess.Rook {
		t.Fatalf("D8 after O-O-O: got %+v ok=%v", r, ok)
	}
	if _, ok := b.PieceAt(loc("A8")); ok {
		t.Fatalf("A8 still occupied after O-O-O")
	}
	if got := b.ToFEN(); got != "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 2" {
		t.Fatalf("ToFEN: got %q", got)
	}
}

func TestCastlingBlockedByAttackOnCrossingSquare(t *testing.T) {
	// The bishop on C4 covers F1; queenside is still fine since B1 may be attacked.
	b := fromFEN(t, "4k3/8/8/8/2b5/8/8/R3K2R w KQ - 0 1")
	got := b.CastlingRights(chess.White)
	if len(got) != 1 || got[0] != loc("C1") {
		t.Fatalf("rights: got %v want [C1]", got)
	}
	b = fromFEN(t, "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1")
	if got := b.CastlingRights(chess.White); len(got) != 1 || got[0] != loc("G1") {
		t.Fatalf("rights with blocked queenside: got %v want [G1]", got)
	}
	b = fromFEN(t, "4k3/8/8/8/8/8/6p1/R3K2R w KQ - 0 1")
	if got := b.CastlingRights(chess.White); len(got) != 1 || got[0] != loc("C1") {
		t.Fatalf("rights with pawn on G2: got %v want [C1]", got)
	}
}

func TestCastlingLostAfterRookMoves(t *testing.T) {
	b := fromFEN(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	play(t, b, "H1->H2", "E8->E7", "H2->H1", "E7->E8")
	got := b.CastlingRights(chess.White)
	if len(got) != 1 || got[0] != loc("C1") {
		t.Fatalf("rights after rook returned: got %v want [C1]", got)
	}
	if err := b.MakeMove(loc("E1"), loc("G1")); err == nil {
		t.Fatalf("castled with a rook that has moved")
	}
}
