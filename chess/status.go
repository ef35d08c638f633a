package chess

// Classify evaluates the position for the side to move. Checks run cheapest first.
func (b *Board) Classify() GameState {
	if b.insufficientMaterial() {
		return Draw
	}
	side := b.SideToMove()
	king := b.occupant(b.kings[side])
	if king == noPiece {
		return Running
	}
	if len(b.legalMoves(king)) > 0 {
		return Running
	}
	checkers := b.checkers(side)
	if len(checkers) >= 2 {
		return winner(side.Other())
	}
	if b.hasLegalMove(side) {
		return Running
	}
	if len(checkers) > 0 {
		return winner(side.Other())
	}
	return Draw
}

// insufficientMaterial covers bare kings, and positions where both sides have at most two
// pieces and every non-king piece is a bishop or a knight.
func (b *Board) insufficientMaterial() bool {
	w, bl := len(b.rosters[White]), len(b.rosters[Black])
	if w == 1 && bl == 1 {
		return true
	}
	if w > 2 || bl > 2 {
		return false
	}
	for _, c := range [2]Color{White, Black} {
		for _, id := range b.rosters[c] {
			switch b.pieces[id].Kind {
			case King, Bishop, Knight:
			default:
				return false
			}
		}
	}
	return true
}
