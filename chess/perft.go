package chess

// Perft counts the leaf nodes of the legal move tree to the given depth. Each move is
// played on a clone, so b is not modified.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, id := range b.rosters[b.SideToMove()] {
		moves := b.legalMoves(id)
		if depth == 1 {
			nodes += uint64(len(moves))
			continue
		}
		for _, to := range moves {
			c := b.Clone()
			c.play(id, to)
			nodes += Perft(c, depth-1)
		}
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts keyed by the move's UCI text.
func PerftDivide(b *Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range b.LegalMoves() {
		c := b.Clone()
		c.play(c.occupant(m.From), m.To)
		out[b.UCI(m)] = Perft(c, depth-1)
	}
	return out
}
