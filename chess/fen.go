package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenChar converts a colour and kind to its FEN letter (upper case for White).
func fenChar(c Color, k Kind) byte {
	ch := k.String()[0]
	if c == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// castleFlags maps each FEN castling letter to the rook's home square.
var castleFlags = []struct {
	flag  byte
	color Color
	rook  Location
}{
	{'K', White, At(FileH, 0)},
	{'Q', White, At(FileA, 0)},
	{'k', Black, At(FileH, 7)},
	{'q', Black, At(FileA, 7)},
}

// ParseFEN builds a board from a FEN string. Moved flags are inferred: a king or rook keeps
// its castling ability only when the castling field grants it, and a pawn counts as unmoved
// only on its starting rank. The half-move clock is read but not tracked.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}
	b := newEmptyBoard()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, ok := ParseKind(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			color := White
			if ch >= 'a' {
				color = Black
			}
			b.place(kind, color, At(File(file), rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, rank+1)
		}
	}

	switch fields[1] {
	case "w":
		b.whiteToMove = true
	case "b":
		b.whiteToMove = false
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	rights := map[Location]bool{}
	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			found := false
			for _, f := range castleFlags {
				if f.flag == ch {
					rights[f.rook] = true
					found = true
				}
			}
			if !found {
				return nil, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
		}
	}
	for i := range b.pieces {
		p := &b.pieces[i]
		switch p.Kind {
		case Pawn:
			p.HasMoved = p.Location.Rank != p.Color.pawnRank()
		case Rook:
			p.HasMoved = !rights[p.Location] || p.Location.Rank != p.Color.homeRank()
		case King:
			home := At(FileE, p.Color.homeRank())
			p.HasMoved = p.Location != home ||
				!(rights[At(FileA, home.Rank)] || rights[At(FileH, home.Rank)])
		}
	}

	if fields[3] != "-" {
		ep, err := ParseLocation(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
		side := b.SideToMove()
		id := b.occupant(Build(ep, 0, -side.forward()))
		if id == noPiece || !b.is(id, side.Other(), Pawn) || b.square(ep).Occupied {
			return nil, fmt.Errorf("%w: no pawn to capture en passant on %s", ErrInvalidFEN, fields[3])
		}
		b.setEnPassant(id)
	}

	if len(fields) > 4 {
		if _, err := strconv.Atoi(fields[4]); err != nil {
			return nil, fmt.Errorf("%w: halfmove clock is not a number", ErrInvalidFEN)
		}
	}
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return nil, fmt.Errorf("%w: fullmove number is not a positive number", ErrInvalidFEN)
		}
		b.fullmove = fullmove
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	if err := b.validateTurn(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	b.state = b.Classify()
	return b, nil
}

// MustFEN is ParseFEN that panics on error, for fixtures.
func MustFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// ToFEN produces the FEN string of the board. The half-move clock is always 0.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			id := b.occupant(At(f, rank))
			if id == noPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			p := b.pieces[id]
			sb.WriteByte(fenChar(p.Color, p.Kind))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove().Code())
	sb.WriteByte(' ')

	castling := b.castlingField()
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteByte(' ')

	if len(b.enPassant) > 0 {
		p := b.pieces[b.enPassant[0]]
		sb.WriteString(strings.ToLower(Build(p.Location, 0, -p.Color.forward()).String()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}

// castlingField lists the castling letters still available in principle: king and rook on
// their home squares and unmoved. Temporary obstacles are ignored.
func (b *Board) castlingField() string {
	var out []byte
	for _, f := range castleFlags {
		king := b.occupant(At(FileE, f.color.homeRank()))
		rook := b.occupant(f.rook)
		if king == noPiece || rook == noPiece {
			continue
		}
		if !b.is(king, f.color, King) || !b.is(rook, f.color, Rook) {
			continue
		}
		if b.pieces[king].HasMoved || b.pieces[rook].HasMoved {
			continue
		}
		out = append(out, f.flag)
	}
	return string(out)
}
