package chess

type pawnMovement struct{}

func (pawnMovement) candidates(b *Board, p *Piece) []Location {
	dir := p.Color.forward()
	var out []Location
	if one := Build(p.Location, 0, dir); one.Valid() && !b.square(one).Occupied {
		out = append(out, one)
		if !p.HasMoved {
			if two := Build(p.Location, 0, 2*dir); two.Valid() && !b.square(two).Occupied {
				out = append(out, two)
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		diag := Build(p.Location, df, dir)
		if !diag.Valid() {
			continue
		}
		if sq := b.square(diag); sq.Occupied {
			if b.pieces[sq.piece].Color != p.Color {
				out = append(out, diag)
			}
			continue
		}
		if b.passedPawn(p, diag, b.enPassant) != noPiece {
			out = append(out, diag)
		}
	}
	return out
}

func (pawnMovement) defended(b *Board, p *Piece) []Location {
	var out []Location
	for _, df := range [2]int{-1, 1} {
		if diag := Build(p.Location, df, p.Color.forward()); diag.Valid() {
			out = append(out, diag)
		}
	}
	return out
}

func (pawnMovement) apply(b *Board, id PieceID, to Location, passed []PieceID) {
	p := b.pieces[id]
	if to.File != p.Location.File && !b.square(to).Occupied {
		if victim := b.passedPawn(&p, to, passed); victim != noPiece {
			b.capture(victim)
		}
	}
	b.relocate(id, to)
	if abs(to.Rank-p.Location.Rank) == 2 {
		b.setEnPassant(id)
	}
	if to.Rank == p.Color.lastRank() {
		b.promote(id)
	}
}

// passedPawn returns the enemy en-passant target that a diagonal step of p onto the empty
// square dest would capture, or noPiece.
func (b *Board) passedPawn(p *Piece, dest Location, targets []PieceID) PieceID {
	beside := Location{Rank: p.Location.Rank, File: dest.File}
	for _, id := range targets {
		t := b.pieces[id]
		if t.Color != p.Color && t.Location == beside {
			return id
		}
	}
	return noPiece
}

// promote replaces the pawn with a new queen on the same square.
func (b *Board) promote(id PieceID) {
	pawn := b.pieces[id]
	b.capture(id)
	q := b.place(Queen, pawn.Color, pawn.Location)
	b.pieces[q].HasMoved = true
}
