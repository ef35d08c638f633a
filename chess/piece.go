package chess

import "fmt"

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Code is the single-letter colour prefix used in setup snapshots ("w" or "b").
func (c Color) Code() string {
	if c == White {
		return "w"
	}
	return "b"
}

// forward is the rank direction pawns of this colour advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// homeRank is the rank the colour's pieces start on.
func (c Color) homeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// pawnRank is the rank the colour's pawns start on.
func (c Color) pawnRank() int { return c.homeRank() + c.forward() }

// lastRank is the rank on which the colour's pawns promote.
func (c Color) lastRank() int { return c.Other().homeRank() }

// SquareColor is the shade of a board cell.
type SquareColor uint8

const (
	Light SquareColor = iota
	Dark
)

func (s SquareColor) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// Kind is the closed set of piece variants.
type Kind uint8

const (
	King Kind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

var kindCodes = [...]string{King: "K", Queen: "Q", Bishop: "B", Knight: "N", Rook: "R", Pawn: "P"}

// String returns the one-letter code of the kind ("K", "Q", "B", "N", "R", "P").
func (k Kind) String() string {
	if int(k) < len(kindCodes) {
		return kindCodes[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind converts a one-letter code (either case) to a Kind.
func ParseKind(code byte) (Kind, bool) {
	switch code {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'R', 'r':
		return Rook, true
	case 'P', 'p':
		return Pawn, true
	}
	return 0, false
}

// slidesAlong reports whether a piece of this kind attacks any distance along dir.
func (k Kind) slidesAlong(dir Offset) bool {
	switch {
	case dir.Orthogonal():
		return k == Rook || k == Queen
	case dir.Diagonal():
		return k == Bishop || k == Queen
	}
	return false
}

// PieceID is a handle into the board's piece storage.
type PieceID int

const noPiece PieceID = -1

// Piece is one chessman. Values returned by Board queries are copies; the board owns the
// authoritative state and addresses pieces by ID.
type Piece struct {
	ID       PieceID
	Kind     Kind
	Color    Color
	Location Location

	// HasMoved gates castling (King, Rook) and the double step (Pawn).
	HasMoved bool
	// EnPassantTarget is set on a pawn that advanced two ranks on the previous move.
	EnPassantTarget bool

	// castling holds the king's most recently computed castling targets.
	castling []Location
}

// Code returns the colour-and-kind code used in setup snapshots, e.g. "wK".
func (p Piece) Code() string { return p.Color.Code() + p.Kind.String() }

func (p Piece) String() string { return p.Code() + "@" + p.Location.String() }

// Square is one cell of the board. It records which piece sits on it but never owns it.
type Square struct {
	Color    SquareColor
	Location Location
	Occupied bool

	piece PieceID
}

// reset empties the square and returns the handle of the piece that was on it.
func (s *Square) reset() PieceID {
	id := s.piece
	s.Occupied = false
	s.piece = noPiece
	return id
}

func (s *Square) set(id PieceID) {
	s.Occupied = true
	s.piece = id
}

// movement is the per-kind capability table entry. Candidates obey blocking and
// own-piece rules only; king safety, pins and check evasion are layered on by the board.
type movement interface {
	candidates(b *Board, p *Piece) []Location
	defended(b *Board, p *Piece) []Location
	apply(b *Board, id PieceID, to Location, passed []PieceID)
}

var movements = [...]movement{
	King:   kingMovement{},
	Queen:  queenMovement{},
	Bishop: bishopMovement{},
	Knight: knightMovement{},
	Rook:   rookMovement{},
	Pawn:   pawnMovement{},
}
