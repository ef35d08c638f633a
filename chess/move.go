package chess

import (
	"fmt"
	"strings"
)

// Move is a coordinate pair. Castling is encoded as the king's two-file move and promotion
// is implicit (always to a Queen).
type Move struct {
	From Location
	To   Location
}

// String formats the move the way the console accepts it, e.g. "E2->E4".
func (m Move) String() string { return m.From.String() + "->" + m.To.String() }

func (m Move) less(o Move) bool {
	if m.From != o.From {
		return m.From.index() < o.From.index()
	}
	return m.To.index() < o.To.index()
}

// ParseMove accepts "A2->A3", "e2-e4", "e2 e4" and "e2e4". A trailing promotion letter is
// accepted only if it is a queen.
func ParseMove(s string) (Move, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for _, sep := range []string{"->", "-", " "} {
		t = strings.ReplaceAll(t, sep, "")
	}
	if len(t) == 5 && t[4] == 'q' {
		t = t[:4]
	}
	if len(t) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseLocation(t[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, err := ParseLocation(t[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	return Move{From: from, To: to}, nil
}

// UCI formats a move of the piece on m.From in long algebraic form, e.g. "e7e8q".
func (b *Board) UCI(m Move) string {
	s := strings.ToLower(m.From.String() + m.To.String())
	if p, ok := b.PieceAt(m.From); ok && p.Kind == Pawn && m.To.Rank == p.Color.lastRank() {
		s += "q"
	}
	return s
}
