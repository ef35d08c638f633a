package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// File is a board column, A through H.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String returns the upper-case file letter ("A".."H").
func (f File) String() string {
	if f < FileA || f > FileH {
		return "?"
	}
	return string(rune('A' + f))
}

// Location addresses one cell of the 8x8 grid. Rank runs from 0 (rank 1) to 7 (rank 8).
// Locations are comparable and can be used as map keys.
type Location struct {
	Rank int
	File File
}

// OffBoard is the sentinel returned whenever a location computation leaves the grid.
var OffBoard = Location{Rank: -1, File: -1}

// At returns the location for a file and a zero-based rank. It does not validate.
func At(file File, rank int) Location { return Location{Rank: rank, File: file} }

// Valid reports whether the location lies on the board.
func (l Location) Valid() bool {
	return l.Rank >= 0 && l.Rank <= 7 && l.File >= FileA && l.File <= FileH
}

// Build returns base shifted by the given offsets, or OffBoard if the result (or base
// itself) is outside the grid. Ray walks stop on the sentinel.
func Build(base Location, fileOffset, rankOffset int) Location {
	if !base.Valid() {
		return OffBoard
	}
	l := Location{Rank: base.Rank + rankOffset, File: base.File + File(fileOffset)}
	if !l.Valid() {
		return OffBoard
	}
	return l
}

// Step moves the location by one offset.
func (l Location) Step(o Offset) Location { return Build(l, o.File, o.Rank) }

// To returns the signed offset from l to other.
func (l Location) To(other Location) Offset {
	return Offset{Rank: other.Rank - l.Rank, File: int(other.File - l.File)}
}

// String formats the location as file letter plus rank number, e.g. "E2".
func (l Location) String() string {
	if !l.Valid() {
		return "-"
	}
	return l.File.String() + strconv.Itoa(l.Rank+1)
}

func (l Location) index() int { return l.Rank*8 + int(l.File) }

func locationAt(idx int) Location { return Location{Rank: idx / 8, File: File(idx % 8)} }

// ParseLocation parses a coordinate such as "E2" or "e2".
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return OffBoard, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	f := strings.ToUpper(s[:1])[0]
	r := s[1]
	if f < 'A' || f > 'H' || r < '1' || r > '8' {
		return OffBoard, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	return Location{Rank: int(r - '1'), File: File(f - 'A')}, nil
}

// MustLocation is ParseLocation that panics on malformed input.
func MustLocation(s string) Location {
	l, err := ParseLocation(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Offset is a signed (rank, file) delta between two locations.
type Offset struct {
	Rank int
	File int
}

var (
	orthogonals = []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonals   = []Offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	compass     = []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps = []Offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// Orthogonal reports whether the offset runs along a rank or a file.
func (o Offset) Orthogonal() bool { return (o.Rank == 0) != (o.File == 0) }

// Diagonal reports whether the offset runs along a diagonal.
func (o Offset) Diagonal() bool { return o.Rank != 0 && (o.Rank == o.File || o.Rank == -o.File) }

// Unit normalises a straight-line offset to one of the eight unit steps.
// ok is false when the offset is neither orthogonal nor diagonal.
func (o Offset) Unit() (Offset, bool) {
	if !o.Orthogonal() && !o.Diagonal() {
		return Offset{}, false
	}
	return Offset{Rank: sign(o.Rank), File: sign(o.File)}, true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
