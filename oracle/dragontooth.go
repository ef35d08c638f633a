package oracle

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// Dragontooth is backed by github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontooth" }

// parseDragontooth converts the library's panics on malformed input into errors.
func parseDragontooth(fen string) (b dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontooth: parse %q: %v", fen, r)
		}
	}()
	return dragontoothmg.ParseFen(fen), nil
}

func dtMoves(b *dragontoothmg.Board) ([]dragontoothmg.Move, []string) {
	var moves []dragontoothmg.Move
	var names []string
	for _, m := range b.GenerateLegalMoves() {
		s := strings.ToLower(m.String())
		if underpromotion(s) {
			continue
		}
		moves = append(moves, m)
		names = append(names, s)
	}
	return moves, names
}

func (Dragontooth) LegalMoves(fen string) ([]string, error) {
	b, err := parseDragontooth(fen)
	if err != nil {
		return nil, err
	}
	_, names := dtMoves(&b)
	slices.Sort(names)
	return names, nil
}

func (Dragontooth) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := parseDragontooth(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	moves, names := dtMoves(&b)
	for i, m := range moves {
		undo := b.Apply(m)
		out[names[i]] = dtPerft(&b, depth-1)
		undo()
	}
	return out, nil
}

func dtPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves, _ := dtMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		undo := b.Apply(m)
		n += dtPerft(b, depth-1)
		undo()
	}
	return n
}
