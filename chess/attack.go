package chess

// attackers scans outward from target and returns every piece of colour `by` that attacks
// it. The square `ignore` is treated as empty (pass OffBoard to ignore nothing).
func (b *Board) attackers(target Location, by Color, ignore Location) []PieceID {
	var out []PieceID
	occupant := func(loc Location) (PieceID, bool) {
		if loc == ignore {
			return noPiece, false
		}
		sq := b.square(loc)
		return sq.piece, sq.Occupied
	}
	for _, j := range knightJumps {
		if loc := target.Step(j); loc.Valid() {
			if id, ok := occupant(loc); ok && b.is(id, by, Knight) {
				out = append(out, id)
			}
		}
	}
	for _, d := range compass {
		if loc := target.Step(d); loc.Valid() {
			if id, ok := occupant(loc); ok && b.is(id, by, King) {
				out = append(out, id)
			}
		}
	}
	// A pawn of colour `by` attacks target from one rank behind it, on either side.
	for _, df := range [2]int{-1, 1} {
		if loc := Build(target, df, -by.forward()); loc.Valid() {
			if id, ok := occupant(loc); ok && b.is(id, by, Pawn) {
				out = append(out, id)
			}
		}
	}
	for _, d := range compass {
		for loc := target.Step(d); loc.Valid(); loc = loc.Step(d) {
			id, ok := occupant(loc)
			if !ok {
				continue
			}
			if p := b.pieces[id]; p.Color == by && p.Kind.slidesAlong(d) {
				out = append(out, id)
			}
			break
		}
	}
	return out
}

// attacked reports whether any piece of colour `by` attacks target.
func (b *Board) attacked(target Location, by Color, ignore Location) bool {
	return len(b.attackers(target, by, ignore)) > 0
}

func (b *Board) is(id PieceID, c Color, k Kind) bool {
	p := b.pieces[id]
	return p.Color == c && p.Kind == k
}

// pinnedBy finds the enemy slider that pins the piece against its own king.
func (b *Board) pinnedBy(id PieceID) (PieceID, bool) {
	p := b.pieces[id]
	if p.Kind == King {
		return noPiece, false
	}
	king := b.kings[p.Color]
	dir, ok := king.To(p.Location).Unit()
	if !ok {
		return noPiece, false
	}
	if !b.pathClear(king, p.Location) {
		return noPiece, false
	}
	for loc := p.Location.Step(dir); loc.Valid(); loc = loc.Step(dir) {
		sq := b.square(loc)
		if !sq.Occupied {
			continue
		}
		other := b.pieces[sq.piece]
		if other.Color == p.Color || !other.Kind.slidesAlong(dir) {
			return noPiece, false
		}
		return other.ID, true
	}
	return noPiece, false
}

// PinnedBy returns the enemy piece pinning the piece on loc against its king, if any.
func (b *Board) PinnedBy(loc Location) (Piece, bool) {
	id := b.occupant(loc)
	if id == noPiece {
		return Piece{}, false
	}
	pinner, ok := b.pinnedBy(id)
	if !ok {
		return Piece{}, false
	}
	return b.pieces[pinner], true
}

// onLine keeps the destinations lying on the ray that leaves origin towards through.
func onLine(cands []Location, origin, through Location) []Location {
	dir, ok := origin.To(through).Unit()
	if !ok {
		return nil
	}
	out := cands[:0]
	for _, to := range cands {
		if d, ok := origin.To(to).Unit(); ok && d == dir {
			out = append(out, to)
		}
	}
	return out
}

// evasions returns the squares a non-king piece may move to in order to answer a single
// check from checker: the checker's own square and, for sliders, the squares in between.
func (b *Board) evasions(king Location, checker PieceID) []Location {
	c := b.pieces[checker]
	out := []Location{c.Location}
	if c.Kind == Knight || c.Kind == Pawn {
		return out
	}
	dir, ok := king.To(c.Location).Unit()
	if !ok {
		return out
	}
	for loc := king.Step(dir); loc.Valid() && loc != c.Location; loc = loc.Step(dir) {
		out = append(out, loc)
	}
	return out
}

func contains(locs []Location, l Location) bool {
	for _, x := range locs {
		if x == l {
			return true
		}
	}
	return false
}
