package chess_test

import (
	"testing"

	"github.com/kai468/chupochess/chess"
)

func TestPins(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		piece  string
		pinner string
		moves  []string
	}{
		{"rook on rank", "8/8/1k3r1Q/8/8/8/8/4K3 b - - 0 1", "F6", "H6", []string{"C6", "D6", "E6", "G6", "H6"}},
		{"queen on diagonal", "4k3/8/8/8/8/2b5/3Q4/4K3 w - - 0 1", "D2", "C3", []string{"C3"}},
		{"knight", "8/8/4kn1R/8/8/8/8/4K3 b - - 0 1", "F6", "H6", nil},
		{"pawn on file", "4k3/8/4r3/8/3p1p2/4P3/8/4K3 w - - 0 1", "E3", "E6", []string{"E4"}},
		{"pawn on rank", "8/8/8/2k1p1Q1/8/8/8/4K3 b - - 0 1", "E5", "G5", nil},
		{"pawn on diagonal", "4k3/3p4/8/1B6/8/8/8/4K3 b - - 0 1", "D7", "B5", nil},
		{"pawn captures pinner", "4k3/3p4/2B5/8/8/8/8/4K3 b - - 0 1", "D7", "C6", []string{"C6"}},
		{"pawn against king", "4k3/8/8/8/1b6/8/3P4/4K3 w - - 0 1", "D2", "B4", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := fromFEN(t, c.fen)
			pinner, ok := b.PinnedBy(loc(c.piece))
			if !ok || pinner.Location != loc(c.pinner) {
				t.Fatalf("PinnedBy(%s): got %v,%v want %s", c.piece, pinner, ok, c.pinner)
			}
			got := b.ValidMoves(loc(c.piece))
			if len(got) != len(c.moves) {
				t.Fatalf("moves of %s: got %v want %v", c.piece, got, c.moves)
			}
			for _, m := range c.moves {
				if !containsLoc(got, loc(m)) {
					t.Fatalf("moves of %s: got %v, missing %s", c.piece, got, m)
				}
			}
		})
	}
}

func TestPinFreesPieceWhenBlocked(t *testing.T) {
	// Same pawn, rook moved in front of it: no pin, no forward move.
	b := fromFEN(t, "4k3/8/8/8/3pRp2/4P3/8/4K3 w - - 0 1")
	if _, ok := b.PinnedBy(loc("E3")); ok {
		t.Fatalf("E3 reported pinned by its own rook")
	}
	if got := b.ValidMoves(loc("E3")); len(got) != 2 {
		t.Fatalf("E3 moves: got %v want D4 and F4", got)
	}
	// Without the rook the pawn has all three moves.
	b = fromFEN(t, "4k3/8/8/8/3p1p2/4P3/8/4K3 w - - 0 1")
	if got := b.ValidMoves(loc("E3")); len(got) != 3 {
		t.Fatalf("E3 moves: got %v want 3", got)
	}
}

func TestNoPinOffLine(t *testing.T) {
	b := chess.NewBoard()
	play(t, b, "E2->E4", "E7->E5", "D1->H5", "B8->C6")
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for _, p := range b.Pieces(c) {
			_, pinned := b.PinnedBy(p.Location)
			_, straight := b.King(c).To(p.Location).Unit()
			if pinned && !straight {
				t.Fatalf("%v pinned without sharing a line with its king", p)
			}
		}
	}
	if p, ok := b.PinnedBy(loc("F7")); !ok || p.Kind != chess.Queen {
		t.Fatalf("F7: got %v,%v want pinned by queen", p, ok)
	}
	if got := b.ValidMoves(loc("F7")); len(got) != 0 {
		t.Fatalf("F7 moves: got %v want none", got)
	}
	if _, ok := b.PinnedBy(loc("G7")); ok {
		t.Fatalf("G7 is not on a line with its king")
	}
}

func TestShieldedPieceIsNotPinned(t *testing.T) {
	// Knight and pawn both stand between king and bishop: neither is pinned.
	b := fromFEN(t, "4k3/8/8/8/1b6/2P5/3N4/4K3 w - - 0 1")
	if _, ok := b.PinnedBy(loc("C3")); ok {
		t.Fatalf("C3 shielded by D2 but reported pinned")
	}
	if _, ok := b.PinnedBy(loc("D2")); ok {
		t.Fatalf("D2 has its own pawn behind it but reported pinned")
	}
	if got := b.ValidMoves(loc("D2")); len(got) == 0 {
		t.Fatalf("unpinned knight has no moves")
	}
}

func TestWrongSliderDoesNotPin(t *testing.T) {
	// A rook on the diagonal and a bishop on the file do not pin.
	b := fromFEN(t, "4k3/8/8/8/1r2b3/8/3P4/4K3 w - - 0 1")
	if _, ok := b.PinnedBy(loc("D2")); ok {
		t.Fatalf("rook reported pinning along a diagonal")
	}
	b = fromFEN(t, "4k3/4b3/8/8/8/8/4R3/4K3 w - - 0 1")
	if _, ok := b.PinnedBy(loc("E2")); ok {
		t.Fatalf("bishop reported pinning along a file")
	}
}

func TestCheckEvasion(t *testing.T) {
	b := fromFEN(t, "4r1k1/8/8/8/8/8/8/2B1K3 w - - 0 1")
	if !b.InCheck(chess.White) {
		t.Fatalf("white should be in check")
	}
	if got := b.ValidMoves(loc("C1")); len(got) != 1 || got[0] != loc("E3") {
		t.Fatalf("bishop evasions: got %v want [E3]", got)
	}
	king := b.ValidMoves(loc("E1"))
	if len(king) != 4 || containsLoc(king, loc("E2")) {
		t.Fatalf("king evasions: got %v want D1 D2 F1 F2", king)
	}
	if got := len(b.LegalMoves()); got != 5 {
		t.Fatalf("legal moves: got %d want %d", got, 5)
	}
}

func TestKnightCheckCannotBeBlocked(t *testing.T) {
	b := fromFEN(t, "4k3/8/8/8/8/3n4/8/R3K3 w Q - 0 1")
	if got := b.ValidMoves(loc("A1")); len(got) != 0 {
		t.Fatalf("rook moves under knight check: %v", got)
	}
	if got := b.CastlingRights(chess.White); len(got) != 0 {
		t.Fatalf("castling in check: %v", got)
	}
}
