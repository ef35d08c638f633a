// Package render draws boards for people: as plain or ANSI-coloured text, and onto a tcell
// screen.
package render

import (
	"bufio"
	"io"
	"unicode"

	"github.com/kai468/chupochess/chess"
)

const (
	ansiWhite = "\033[93m"
	ansiReset = "\033[0m"
	fileRow   = "  A B C D E F G H   "
)

// Options controls Text output.
type Options struct {
	// Color prints white pieces in yellow and both colours in upper case. Without it
	// black pieces are lower case.
	Color bool
	// Highlight marks these squares: empty ones print as '*'.
	Highlight []chess.Location
}

// Symbol returns the piece's letter, upper case for White and lower case for Black.
func Symbol(p chess.Piece) rune {
	r := rune(p.Kind.String()[0])
	if p.Color == chess.Black {
		return unicode.ToLower(r)
	}
	return r
}

var glyphs = [2][6]rune{
	chess.White: {chess.King: '♔', chess.Queen: '♕', chess.Bishop: '♗', chess.Knight: '♘', chess.Rook: '♖', chess.Pawn: '♙'},
	chess.Black: {chess.King: '♚', chess.Queen: '♛', chess.Bishop: '♝', chess.Knight: '♞', chess.Rook: '♜', chess.Pawn: '♟'},
}

// Glyph returns the Unicode chess figurine for the piece.
func Glyph(p chess.Piece) rune { return glyphs[p.Color][p.Kind] }

// Text writes the board from White's side, rank 8 first, with file letters above and
// below and rank numbers on both sides.
func Text(w io.Writer, b *chess.Board, opt Options) error {
	marked := make(map[chess.Location]bool, len(opt.Highlight))
	for _, l := range opt.Highlight {
		marked[l] = true
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(fileRow + "\n")
	for rank := 7; rank >= 0; rank-- {
		label := byte('1' + rank)
		bw.WriteByte(label)
		bw.WriteByte(' ')
		for f := chess.FileA; f <= chess.FileH; f++ {
			at := chess.At(f, rank)
			p, ok := b.PieceAt(at)
			switch {
			case !ok && marked[at]:
				bw.WriteByte('*')
			case !ok:
				bw.WriteByte('_')
			case opt.Color && p.Color == chess.White:
				bw.WriteString(ansiWhite)
				bw.WriteRune(Symbol(p))
				bw.WriteString(ansiReset)
			case opt.Color:
				bw.WriteRune(unicode.ToUpper(Symbol(p)))
			default:
				bw.WriteRune(Symbol(p))
			}
			bw.WriteByte(' ')
		}
		bw.WriteByte(label)
		bw.WriteByte('\n')
	}
	bw.WriteString(fileRow + "\n")
	return bw.Flush()
}
