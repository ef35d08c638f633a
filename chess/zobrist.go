package chess

import "math/rand"

// Zobrist keys for pieces, castling letters, en passant file and side to move.
var (
	zobristPiece     [2][6][64]uint64
	zobristCastle    [4]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist key of the placement, side to move, castling availability and
// en-passant file. Positions that differ only in move number hash equal.
func (b *Board) Hash() uint64 {
	var key uint64
	for c, roster := range b.rosters {
		for _, id := range roster {
			p := b.pieces[id]
			key ^= zobristPiece[c][p.Kind][p.Location.index()]
		}
	}
	if !b.whiteToMove {
		key ^= zobristSide
	}
	for _, flag := range []byte(b.castlingField()) {
		for i, f := range castleFlags {
			if f.flag == flag {
				key ^= zobristCastle[i]
			}
		}
	}
	if len(b.enPassant) > 0 {
		key ^= zobristEnPassant[b.pieces[b.enPassant[0]].Location.File]
	}
	return key
}
