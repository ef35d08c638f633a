package chess_test

import (
	"math/rand"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/kai468/chupochess/chess"
)

// refMoves lists the reference library's legal moves keyed by UCI text. Underpromotions are
// dropped because pawns here always become queens.
func refMoves(g *nchess.Game) map[string]*nchess.Move {
	out := make(map[string]*nchess.Move)
	for _, m := range g.Position().ValidMoves() {
		if p := m.Promo(); p != nchess.NoPieceType && p != nchess.Queen {
			continue
		}
		out[m.String()] = m
	}
	return out
}

func TestRandomPlayoutsAgainstNotnil(t *testing.T) {
	games := 24
	if testing.Short() {
		games = 4
	}
	for seed := int64(1); seed <= int64(games); seed++ {
		rng := rand.New(rand.NewSource(seed))
		ours := chess.NewBoard()
		ref := nchess.NewGame()
		for ply := 0; ply < 160; ply++ {
			want := refMoves(ref)
			got := ours.LegalMoves()
			if len(got) != len(want) {
				t.Fatalf("seed %d ply %d %s: got %d moves want %d", seed, ply, ours.ToFEN(), len(got), len(want))
			}
			for _, m := range got {
				if _, ok := want[ours.UCI(m)]; !ok {
					t.Fatalf("seed %d ply %d %s: %s not legal in reference", seed, ply, ours.ToFEN(), ours.UCI(m))
				}
			}

			checkPinsOnLine(t, ours)

			state := ours.State()
			lowMaterial := len(ours.Pieces(chess.White)) <= 2 && len(ours.Pieces(chess.Black)) <= 2
			switch ref.Position().Status() {
			case nchess.Checkmate:
				if state != chess.WhiteWins && state != chess.BlackWins && !(state == chess.Draw && lowMaterial) {
					t.Fatalf("seed %d ply %d %s: got %v want a win", seed, ply, ours.ToFEN(), state)
				}
			case nchess.Stalemate:
				if state != chess.Draw {
					t.Fatalf("seed %d ply %d %s: got %v want draw", seed, ply, ours.ToFEN(), state)
				}
			default:
				if state != chess.Running && !(state == chess.Draw && lowMaterial) {
					t.Fatalf("seed %d ply %d %s: got %v want running", seed, ply, ours.ToFEN(), state)
				}
			}
			if state != chess.Running {
				break
			}

			m := got[rng.Intn(len(got))]
			uci := ours.UCI(m)
			if err := ours.Apply(m); err != nil {
				t.Fatalf("seed %d ply %d: %s: %v", seed, ply, uci, err)
			}
			if err := ref.Move(want[uci]); err != nil {
				t.Fatalf("seed %d ply %d: reference rejected %s: %v", seed, ply, uci, err)
			}
			if err := ours.Validate(); err != nil {
				t.Fatalf("seed %d ply %d after %s: %v", seed, ply, uci, err)
			}
		}
	}
}

// checkPinsOnLine asserts that every reported pin lies on a straight line from the pinned
// piece's king, with the pinner further along the same ray.
func checkPinsOnLine(t *testing.T, b *chess.Board) {
	t.Helper()
	for _, c := range []chess.Color{chess.White, chess.Black} {
		king := b.King(c)
		for _, p := range b.Pieces(c) {
			pinner, ok := b.PinnedBy(p.Location)
			dir, straight := king.To(p.Location).Unit()
			if !ok {
				continue
			}
			if p.Kind == chess.King || !straight {
				t.Fatalf("%s: %s reported pinned off its king's lines", b.ToFEN(), p)
			}
			if d, _ := king.To(pinner.Location).Unit(); d != dir || pinner.Color == c {
				t.Fatalf("%s: %s pinned by %s off the pin ray", b.ToFEN(), p, pinner)
			}
		}
	}
}
