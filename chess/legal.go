package chess

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// legalMoves layers king safety, pins and check evasion on top of a piece's candidates.
func (b *Board) legalMoves(id PieceID) []Location {
	p := &b.pieces[id]
	cands := without(movements[p.Kind].candidates(b, p), b.kings[p.Color.Other()])
	if p.Kind == King {
		return b.safeKingMoves(p, cands)
	}
	king := b.kings[p.Color]
	if pinner, ok := b.pinnedBy(id); ok {
		cands = onLine(cands, king, b.pieces[pinner].Location)
	}
	checkers := b.checkers(p.Color)
	switch len(checkers) {
	case 0:
	case 1:
		block := b.evasions(king, checkers[0])
		out := cands[:0]
		for _, to := range cands {
			if contains(block, to) || (p.Kind == Pawn && b.isEnPassant(p, to) && b.passedPawn(p, to, b.enPassant) == checkers[0]) {
				out = append(out, to)
			}
		}
		cands = out
	default:
		return nil
	}
	if p.Kind != Pawn {
		return cands
	}
	out := cands[:0]
	for _, to := range cands {
		if b.isEnPassant(p, to) && !b.enPassantSafe(id, to) {
			continue
		}
		out = append(out, to)
	}
	return out
}

// without drops loc from locs in place. Kings are never captured.
func without(locs []Location, loc Location) []Location {
	out := locs[:0]
	for _, l := range locs {
		if l != loc {
			out = append(out, l)
		}
	}
	return out
}

// isEnPassant reports whether the pawn's move to `to` is a diagonal step onto an empty square.
func (b *Board) isEnPassant(p *Piece, to Location) bool {
	return to.File != p.Location.File && !b.square(to).Occupied
}

// enPassantSafe plays the capture on a copy. Removing two pawns from one rank can expose the
// king along that rank, which the pin scan does not see.
func (b *Board) enPassantSafe(id PieceID, to Location) bool {
	c := b.Clone()
	passed := c.takeEnPassant()
	movements[Pawn].apply(c, id, to, passed)
	return !c.InCheck(c.pieces[id].Color)
}

// ValidMoves returns the legal destinations of the piece on loc, or nil if loc is empty.
func (b *Board) ValidMoves(loc Location) []Location {
	id := b.occupant(loc)
	if id == noPiece {
		return nil
	}
	return b.legalMoves(id)
}

// DefendedLocations returns the squares the piece on loc controls, including squares held by
// its own side.
func (b *Board) DefendedLocations(loc Location) []Location {
	id := b.occupant(loc)
	if id == noPiece {
		return nil
	}
	p := &b.pieces[id]
	return movements[p.Kind].defended(b, p)
}

// DefendedBy returns the union of the squares controlled by the colour's pieces.
func (b *Board) DefendedBy(c Color) map[Location]bool {
	out := make(map[Location]bool)
	for _, id := range b.rosters[c] {
		p := &b.pieces[id]
		for _, loc := range movements[p.Kind].defended(b, p) {
			out[loc] = true
		}
	}
	return out
}

// LegalMoves lists every legal move of the side to move, ordered by origin then destination.
func (b *Board) LegalMoves() []Move {
	var out []Move
	for _, id := range b.rosters[b.SideToMove()] {
		from := b.pieces[id].Location
		for _, to := range b.legalMoves(id) {
			out = append(out, Move{From: from, To: to})
		}
	}
	slices.SortFunc(out, func(x, y Move) bool { return x.less(y) })
	return out
}

// hasLegalMove stops at the first piece of colour c with a legal destination.
func (b *Board) hasLegalMove(c Color) bool {
	for _, id := range b.rosters[c] {
		if len(b.legalMoves(id)) > 0 {
			return true
		}
	}
	return false
}

// MakeMove plays the piece on from to the destination to. The move is validated first; on
// error the board is left untouched.
func (b *Board) MakeMove(from, to Location) error {
	if b.state != Running {
		return fmt.Errorf("%w: %s", ErrGameOver, b.state)
	}
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s->%s", ErrInvalidLocation, from, to)
	}
	id := b.occupant(from)
	if id == noPiece {
		return fmt.Errorf("%w on %s", ErrNoPiece, from)
	}
	if p := b.pieces[id]; p.Color != b.SideToMove() {
		return fmt.Errorf("%w: %s to move, %s is %s", ErrNotYourTurn, b.SideToMove(), from, p.Color)
	}
	if !contains(b.legalMoves(id), to) {
		return fmt.Errorf("%w: %s->%s", ErrIllegalMove, from, to)
	}
	b.play(id, to)
	b.state = b.Classify()
	return nil
}

// Apply is MakeMove for a Move value.
func (b *Board) Apply(m Move) error { return b.MakeMove(m.From, m.To) }

// play executes a move already known to be legal, without classifying the result.
func (b *Board) play(id PieceID, to Location) {
	c := b.pieces[id].Color
	passed := b.takeEnPassant()
	movements[b.pieces[id].Kind].apply(b, id, to, passed)
	if c == Black {
		b.fullmove++
	}
	b.whiteToMove = !b.whiteToMove
}
