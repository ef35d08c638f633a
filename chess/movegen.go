package chess

// slideMoves walks every direction from `from` one step at a time. A walk stops before a
// piece of the mover's colour, on an enemy piece and at the board edge. limit caps the
// number of steps per direction; zero means unbounded.
func slideMoves(b *Board, from Location, color Color, dirs []Offset, limit int) []Location {
	var out []Location
	for _, d := range dirs {
		loc := from.Step(d)
		for n := 1; loc.Valid() && (limit == 0 || n <= limit); n++ {
			sq := b.square(loc)
			if sq.Occupied {
				if b.pieces[sq.piece].Color != color {
					out = append(out, loc)
				}
				break
			}
			out = append(out, loc)
			loc = loc.Step(d)
		}
	}
	return out
}

// slideDefended is slideMoves for control: the first occupied square of each ray is
// included whatever its colour.
func slideDefended(b *Board, from Location, dirs []Offset, limit int) []Location {
	var out []Location
	for _, d := range dirs {
		loc := from.Step(d)
		for n := 1; loc.Valid() && (limit == 0 || n <= limit); n++ {
			out = append(out, loc)
			if b.square(loc).Occupied {
				break
			}
			loc = loc.Step(d)
		}
	}
	return out
}

type bishopMovement struct{}

func (bishopMovement) candidates(b *Board, p *Piece) []Location {
	return slideMoves(b, p.Location, p.Color, diagonals, 0)
}

func (bishopMovement) defended(b *Board, p *Piece) []Location {
	return slideDefended(b, p.Location, diagonals, 0)
}

func (bishopMovement) apply(b *Board, id PieceID, to Location, _ []PieceID) { b.relocate(id, to) }

type rookMovement struct{}

func (rookMovement) candidates(b *Board, p *Piece) []Location {
	return slideMoves(b, p.Location, p.Color, orthogonals, 0)
}

func (rookMovement) defended(b *Board, p *Piece) []Location {
	return slideDefended(b, p.Location, orthogonals, 0)
}

func (rookMovement) apply(b *Board, id PieceID, to Location, _ []PieceID) { b.relocate(id, to) }

// The queen moves as bishop and rook combined.
type queenMovement struct{}

func (queenMovement) candidates(b *Board, p *Piece) []Location {
	out := slideMoves(b, p.Location, p.Color, diagonals, 0)
	return append(out, slideMoves(b, p.Location, p.Color, orthogonals, 0)...)
}

func (queenMovement) defended(b *Board, p *Piece) []Location {
	out := slideDefended(b, p.Location, diagonals, 0)
	return append(out, slideDefended(b, p.Location, orthogonals, 0)...)
}

func (queenMovement) apply(b *Board, id PieceID, to Location, _ []PieceID) { b.relocate(id, to) }

type knightMovement struct{}

func (knightMovement) candidates(b *Board, p *Piece) []Location {
	var out []Location
	for _, j := range knightJumps {
		loc := p.Location.Step(j)
		if !loc.Valid() {
			continue
		}
		if sq := b.square(loc); sq.Occupied && b.pieces[sq.piece].Color == p.Color {
			continue
		}
		out = append(out, loc)
	}
	return out
}

func (knightMovement) defended(b *Board, p *Piece) []Location {
	var out []Location
	for _, j := range knightJumps {
		if loc := p.Location.Step(j); loc.Valid() {
			out = append(out, loc)
		}
	}
	return out
}

func (knightMovement) apply(b *Board, id PieceID, to Location, _ []PieceID) { b.relocate(id, to) }
