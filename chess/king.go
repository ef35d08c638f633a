package chess

type kingMovement struct{}

func (kingMovement) candidates(b *Board, p *Piece) []Location {
	out := slideMoves(b, p.Location, p.Color, compass, 1)
	return append(out, b.castlingTargets(p)...)
}

func (kingMovement) defended(b *Board, p *Piece) []Location {
	return slideDefended(b, p.Location, compass, 1)
}

func (kingMovement) apply(b *Board, id PieceID, to Location, _ []PieceID) {
	k := b.pieces[id]
	from := k.Location
	shift := int(to.File - from.File)
	rook := noPiece
	if abs(shift) == 2 {
		rook = b.castlingRook(from, sign(shift))
	}
	b.relocate(id, to)
	b.kings[k.Color] = to
	if rook != noPiece {
		b.relocate(rook, Build(from, sign(shift), 0))
	}
}

// castlingRook returns the first piece beyond the king in direction dir along its rank.
// Castling is only offered with an empty path, so that piece is the castling rook.
func (b *Board) castlingRook(king Location, dir int) PieceID {
	for loc := Build(king, dir, 0); loc.Valid(); loc = Build(loc, dir, 0) {
		if sq := b.square(loc); sq.Occupied {
			return sq.piece
		}
	}
	return noPiece
}

// castlingTargets computes the king's castling destinations and caches them on the piece.
func (b *Board) castlingTargets(k *Piece) []Location {
	k.castling = nil
	if k.HasMoved || b.InCheck(k.Color) {
		return nil
	}
	enemy := k.Color.Other()
	var out []Location
	for _, rid := range b.rosters[k.Color] {
		r := b.pieces[rid]
		if r.Kind != Rook || r.HasMoved || r.Location.Rank != k.Location.Rank {
			continue
		}
		gap := int(r.Location.File - k.Location.File)
		if abs(gap) < 3 {
			continue
		}
		dir := sign(gap)
		if !b.pathClear(k.Location, r.Location) {
			continue
		}
		cross := Build(k.Location, dir, 0)
		dest := Build(k.Location, 2*dir, 0)
		if b.attacked(cross, enemy, OffBoard) || b.attacked(dest, enemy, OffBoard) {
			continue
		}
		out = append(out, dest)
	}
	k.castling = out
	return out
}

// pathClear reports whether every square strictly between from and to is empty. The two
// locations must share a rank, file or diagonal.
func (b *Board) pathClear(from, to Location) bool {
	dir, ok := from.To(to).Unit()
	if !ok {
		return false
	}
	for loc := from.Step(dir); loc.Valid() && loc != to; loc = loc.Step(dir) {
		if b.square(loc).Occupied {
			return false
		}
	}
	return true
}

// CastlingRights returns the destinations the colour's king can currently castle to.
func (b *Board) CastlingRights(c Color) []Location {
	sq := b.square(b.kings[c])
	if !sq.Occupied {
		return nil
	}
	return b.castlingTargets(&b.pieces[sq.piece])
}

// InCheck reports whether the colour's king is attacked.
func (b *Board) InCheck(c Color) bool { return len(b.checkers(c)) > 0 }

// checkers lists the enemy pieces attacking the colour's king.
func (b *Board) checkers(c Color) []PieceID {
	return b.attackers(b.kings[c], c.Other(), OffBoard)
}

// safeKingMoves drops destinations the enemy controls. The king itself is treated as absent
// so it cannot retreat along the line of a checking slider.
func (b *Board) safeKingMoves(k *Piece, cands []Location) []Location {
	enemy := k.Color.Other()
	out := cands[:0]
	for _, to := range cands {
		if !b.attacked(to, enemy, k.Location) {
			out = append(out, to)
		}
	}
	return out
}
