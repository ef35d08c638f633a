// Package chess implements the rules of chess on a square-centric board: legal move
// enumeration per piece, check, pin, castling and en-passant detection, move execution
// with all side effects, and classification of finished games.
//
// The package does not search or evaluate positions, and it does not track repetitions
// or the fifty-move rule.
package chess

import "fmt"

// GameState classifies the position for the side to move.
type GameState uint8

const (
	Running GameState = iota
	Draw
	WhiteWins
	BlackWins
)

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case Draw:
		return "draw"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	}
	return fmt.Sprintf("state(%d)", s)
}

func winner(c Color) GameState {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Board is the aggregate root of a game. It owns the squares and the pieces; squares and
// rosters refer to pieces through PieceID handles.
//
// A Board is not safe for concurrent use.
type Board struct {
	squares [64]Square
	pieces  []Piece

	// rosters lists the live pieces of each colour, in no particular order.
	rosters [2][]PieceID
	kings   [2]Location

	whiteToMove bool
	// enPassant holds the pawn that advanced two ranks on the previous move, if any.
	enPassant []PieceID

	state    GameState
	fullmove int
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// startingPieces is the piece factory for the standard arrangement.
func startingPieces() map[Location]Piece {
	out := make(map[Location]Piece, 32)
	for f := FileA; f <= FileH; f++ {
		for _, c := range [2]Color{White, Black} {
			out[At(f, c.homeRank())] = Piece{Kind: backRank[f], Color: c}
			out[At(f, c.pawnRank())] = Piece{Kind: Pawn, Color: c}
		}
	}
	return out
}

// NewBoard returns a board in the standard starting position with White to move.
func NewBoard() *Board {
	b := newEmptyBoard()
	setup := startingPieces()
	for f := FileA; f <= FileH; f++ {
		for r := 0; r < 8; r++ {
			if p, ok := setup[At(f, r)]; ok {
				b.place(p.Kind, p.Color, At(f, r))
			}
		}
	}
	b.state = b.Classify()
	return b
}

func newEmptyBoard() *Board {
	b := &Board{
		pieces:      make([]Piece, 0, 40),
		kings:       [2]Location{OffBoard, OffBoard},
		whiteToMove: true,
		fullmove:    1,
	}
	for i := range b.squares {
		loc := locationAt(i)
		color := Light
		if (loc.Rank+int(loc.File))%2 == 0 {
			color = Dark
		}
		b.squares[i] = Square{Color: color, Location: loc, piece: noPiece}
	}
	return b
}

// place creates a piece on an empty square and registers it in its roster.
func (b *Board) place(kind Kind, color Color, loc Location) PieceID {
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{ID: id, Kind: kind, Color: color, Location: loc})
	b.square(loc).set(id)
	b.rosters[color] = append(b.rosters[color], id)
	if kind == King {
		b.kings[color] = loc
	}
	return id
}

// relocate is the common part of every move: release the origin, capture whatever sits on
// the destination, attach the piece there and mark it moved.
func (b *Board) relocate(id PieceID, to Location) {
	b.square(b.pieces[id].Location).reset()
	if victim := b.square(to).piece; victim != noPiece {
		b.capture(victim)
	}
	b.square(to).set(id)
	p := &b.pieces[id]
	p.Location = to
	p.HasMoved = true
}

// capture detaches a piece from its square and removes it from its roster.
func (b *Board) capture(id PieceID) {
	p := &b.pieces[id]
	if sq := b.square(p.Location); sq.piece == id {
		sq.reset()
	}
	p.Location = OffBoard
	p.EnPassantTarget = false
	roster := b.rosters[p.Color]
	for i, x := range roster {
		if x == id {
			roster[i] = roster[len(roster)-1]
			b.rosters[p.Color] = roster[:len(roster)-1]
			break
		}
	}
}

// takeEnPassant clears the en-passant set and returns what it held.
func (b *Board) takeEnPassant() []PieceID {
	passed := b.enPassant
	for _, id := range passed {
		b.pieces[id].EnPassantTarget = false
	}
	b.enPassant = nil
	return passed
}

func (b *Board) setEnPassant(id PieceID) {
	b.takeEnPassant()
	b.enPassant = []PieceID{id}
	b.pieces[id].EnPassantTarget = true
}

func (b *Board) square(loc Location) *Square { return &b.squares[loc.index()] }

func (b *Board) occupant(loc Location) PieceID {
	if !loc.Valid() {
		return noPiece
	}
	return b.square(loc).piece
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.pieces = append([]Piece(nil), b.pieces...)
	c.rosters[White] = append([]PieceID(nil), b.rosters[White]...)
	c.rosters[Black] = append([]PieceID(nil), b.rosters[Black]...)
	c.enPassant = append([]PieceID(nil), b.enPassant...)
	return &c
}

// SquareAt returns a copy of the square at loc.
func (b *Board) SquareAt(loc Location) Square {
	if !loc.Valid() {
		return Square{Location: OffBoard, piece: noPiece}
	}
	return *b.square(loc)
}

// PieceAt returns the piece on loc, if any.
func (b *Board) PieceAt(loc Location) (Piece, bool) {
	id := b.occupant(loc)
	if id == noPiece {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// Pieces returns the live pieces of a colour.
func (b *Board) Pieces(c Color) []Piece {
	out := make([]Piece, 0, len(b.rosters[c]))
	for _, id := range b.rosters[c] {
		out = append(out, b.pieces[id])
	}
	return out
}

// King returns the location of the colour's king.
func (b *Board) King(c Color) Location { return b.kings[c] }

// SideToMove returns the colour whose turn it is.
func (b *Board) SideToMove() Color {
	if b.whiteToMove {
		return White
	}
	return Black
}

// WhiteToMove reports whether it is White's turn.
func (b *Board) WhiteToMove() bool { return b.whiteToMove }

// EnPassantTargets returns the locations of pawns that may be captured en passant.
func (b *Board) EnPassantTargets() []Location {
	out := make([]Location, 0, len(b.enPassant))
	for _, id := range b.enPassant {
		out = append(out, b.pieces[id].Location)
	}
	return out
}

// State returns the classification computed after the last move.
func (b *Board) State() GameState { return b.state }

// FullMoveNumber starts at 1 and increments after each Black move.
func (b *Board) FullMoveNumber() int { return b.fullmove }

// validateTurn rejects positions where the side that just moved left its king attacked.
func (b *Board) validateTurn() error {
	if idle := b.SideToMove().Other(); b.InCheck(idle) {
		return fmt.Errorf("%s king on %s is in check with %s to move", idle, b.kings[idle], b.SideToMove())
	}
	return nil
}

// Validate checks the board's internal consistency and returns the first violation found.
func (b *Board) Validate() error {
	occupied := 0
	for i := range b.squares {
		sq := &b.squares[i]
		if !sq.Occupied {
			if sq.piece != noPiece {
				return fmt.Errorf("square %s: empty but refers to piece %d", sq.Location, sq.piece)
			}
			continue
		}
		occupied++
		if sq.piece < 0 || int(sq.piece) >= len(b.pieces) {
			return fmt.Errorf("square %s: bad piece handle %d", sq.Location, sq.piece)
		}
		if p := b.pieces[sq.piece]; p.Location != sq.Location {
			return fmt.Errorf("square %s: piece %s points elsewhere", sq.Location, p)
		}
	}
	if n := len(b.rosters[White]) + len(b.rosters[Black]); n != occupied {
		return fmt.Errorf("rosters hold %d pieces, %d squares occupied", n, occupied)
	}
	for _, c := range [2]Color{White, Black} {
		kings := 0
		for _, id := range b.rosters[c] {
			p := b.pieces[id]
			if p.Color != c {
				return fmt.Errorf("%s roster holds %s", c, p)
			}
			if !p.Location.Valid() || b.square(p.Location).piece != id {
				return fmt.Errorf("%s is not on its square", p)
			}
			if p.Kind == King {
				kings++
				if b.kings[c] != p.Location {
					return fmt.Errorf("%s king cached at %s, found on %s", c, b.kings[c], p.Location)
				}
			}
		}
		if kings != 1 {
			return fmt.Errorf("%s has %d kings", c, kings)
		}
	}
	if len(b.enPassant) > 1 {
		return fmt.Errorf("%d en-passant targets", len(b.enPassant))
	}
	for _, id := range b.enPassant {
		p := b.pieces[id]
		if p.Kind != Pawn || !p.EnPassantTarget || p.Color == b.SideToMove() {
			return fmt.Errorf("bad en-passant target %s", p)
		}
		if p.Location.Rank != p.Color.pawnRank()+2*p.Color.forward() {
			return fmt.Errorf("en-passant target %s did not advance two ranks", p)
		}
	}
	for _, c := range [2]Color{White, Black} {
		for _, id := range b.rosters[c] {
			if p := b.pieces[id]; p.EnPassantTarget && (len(b.enPassant) == 0 || b.enPassant[0] != id) {
				return fmt.Errorf("%s flagged en passant but not registered", p)
			}
		}
	}
	return nil
}
