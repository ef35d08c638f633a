package chess

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Snapshot returns the presentation view of the board: location strings mapped to
// colour-and-kind codes, e.g. {"E1": "wK", "E8": "bK"}.
func (b *Board) Snapshot() map[string]string {
	out := make(map[string]string, len(b.rosters[White])+len(b.rosters[Black]))
	for _, roster := range b.rosters {
		for _, id := range roster {
			p := b.pieces[id]
			out[p.Location.String()] = p.Code()
		}
	}
	return out
}

// SnapshotKeys returns the snapshot's locations in sorted order.
func SnapshotKeys(snap map[string]string) []string {
	keys := maps.Keys(snap)
	slices.Sort(keys)
	return keys
}

// FromSetup is the inverse of Snapshot. Moved flags are inferred from home squares and no
// en-passant target is set.
func FromSetup(setup map[string]string, side Color) (*Board, error) {
	b := newEmptyBoard()
	b.whiteToMove = side == White
	for _, key := range SnapshotKeys(setup) {
		loc, err := ParseLocation(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
		}
		code := setup[key]
		if len(code) != 2 {
			return nil, fmt.Errorf("%w: bad piece code %q on %s", ErrInvalidSetup, code, key)
		}
		var color Color
		switch code[0] {
		case 'w':
			color = White
		case 'b':
			color = Black
		default:
			return nil, fmt.Errorf("%w: bad colour in %q on %s", ErrInvalidSetup, code, key)
		}
		kind, ok := ParseKind(code[1])
		if !ok {
			return nil, fmt.Errorf("%w: bad kind in %q on %s", ErrInvalidSetup, code, key)
		}
		if kind == Pawn && (loc.Rank == 0 || loc.Rank == 7) {
			return nil, fmt.Errorf("%w: pawn on %s", ErrInvalidSetup, key)
		}
		id := b.place(kind, color, loc)
		b.pieces[id].HasMoved = !onHomeSquare(kind, color, loc)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	if err := b.validateTurn(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	b.state = b.Classify()
	return b, nil
}

func onHomeSquare(k Kind, c Color, loc Location) bool {
	if k == Pawn {
		return loc.Rank == c.pawnRank()
	}
	return loc.Rank == c.homeRank() && backRank[loc.File] == k
}
