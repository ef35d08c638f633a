package oracle

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"golang.org/x/exp/slices"
)

// Goose is backed by github.com/Oliverans/GooseEngineMG.
type Goose struct{}

func (Goose) Name() string { return "goose" }

func gooseMoves(b *goosemg.Board) []goosemg.Move {
	var out []goosemg.Move
	for _, m := range b.GenerateMoves() {
		if pt := m.PromotionPieceType(); pt != goosemg.PieceTypeNone && pt != goosemg.PieceTypeQueen {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (Goose) LegalMoves(fen string) ([]string, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goose: %w", err)
	}
	var names []string
	for _, m := range gooseMoves(b) {
		// GenerateMoves may leave the final king-safety test to MakeMove.
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			names = append(names, m.String())
		}
	}
	slices.Sort(names)
	return names, nil
}

func (Goose) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goose: %w", err)
	}
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	for _, m := range gooseMoves(b) {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		out[m.String()] = goosePerft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return out, nil
}

func goosePerft(b *goosemg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, m := range gooseMoves(b) {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		n += goosePerft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return n
}
