package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kai468/chupochess/chess"
)

// Board geometry on screen: each square is CellWidth columns wide and one row high. The
// top-left square (A8 seen from White) starts at column OriginX, row OriginY.
const (
	CellWidth = 3
	OriginX   = 2
	OriginY   = 1
	// StatusRow is the screen row of the status line.
	StatusRow = OriginY + 9
)

// View is the interactive state painted on top of the board.
type View struct {
	Cursor   chess.Location
	Selected chess.Location
	Targets  []chess.Location
	Status   string
}

var (
	lightStyle    = tcell.StyleDefault.Background(tcell.ColorBurlyWood)
	darkStyle     = tcell.StyleDefault.Background(tcell.ColorSaddleBrown)
	cursorColor   = tcell.ColorGold
	selectedColor = tcell.ColorSeaGreen
	targetColor   = tcell.ColorLightGreen
	labelStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// CellOf returns the screen column and row at which the piece on loc is drawn.
func CellOf(loc chess.Location) (x, y int) {
	return OriginX + int(loc.File)*CellWidth + CellWidth/2, OriginY + 7 - loc.Rank
}

// Draw paints board and view onto s and shows the result.
func Draw(s tcell.Screen, b *chess.Board, v View) {
	s.Clear()
	targets := make(map[chess.Location]bool, len(v.Targets))
	for _, t := range v.Targets {
		targets[t] = true
	}
	for f := chess.FileA; f <= chess.FileH; f++ {
		x := OriginX + int(f)*CellWidth + CellWidth/2
		letter := rune('a' + int(f))
		s.SetContent(x, OriginY-1, letter, nil, labelStyle)
		s.SetContent(x, OriginY+8, letter, nil, labelStyle)
	}
	for rank := 0; rank < 8; rank++ {
		y := OriginY + 7 - rank
		s.SetContent(0, y, rune('1'+rank), nil, labelStyle)
		s.SetContent(OriginX+8*CellWidth+1, y, rune('1'+rank), nil, labelStyle)
		for f := chess.FileA; f <= chess.FileH; f++ {
			at := chess.At(f, rank)
			style := lightStyle
			if b.SquareAt(at).Color == chess.Dark {
				style = darkStyle
			}
			switch {
			case at == v.Cursor:
				style = style.Background(cursorColor)
			case at == v.Selected:
				style = style.Background(selectedColor)
			case targets[at]:
				style = style.Background(targetColor)
			}
			glyph := ' '
			if p, ok := b.PieceAt(at); ok {
				glyph = Glyph(p)
				if p.Color == chess.White {
					style = style.Foreground(tcell.ColorWhite)
				} else {
					style = style.Foreground(tcell.ColorBlack)
				}
			}
			x0 := OriginX + int(f)*CellWidth
			for dx := 0; dx < CellWidth; dx++ {
				r := ' '
				if dx == CellWidth/2 {
					r = glyph
				}
				s.SetContent(x0+dx, y, r, nil, style)
			}
		}
	}
	for i, r := range []rune(v.Status) {
		s.SetContent(i, StatusRow, r, nil, tcell.StyleDefault)
	}
	s.Show()
}
