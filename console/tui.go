package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kai468/chupochess/chess"
	"github.com/kai468/chupochess/render"
)

// TUI is the full-screen game. Arrow keys (or hjkl) move the cursor, Enter or Space picks
// a piece and then one of its highlighted targets, q or Escape quits.
type TUI struct {
	screen tcell.Screen
	board  *chess.Board
	view   render.View
}

// NewTUI prepares a game on an initialised screen. The caller owns Init and Fini.
func NewTUI(s tcell.Screen, b *chess.Board) *TUI {
	if b == nil {
		b = chess.NewBoard()
	}
	t := &TUI{screen: s, board: b}
	t.view.Cursor = b.King(b.SideToMove())
	t.clearSelection()
	t.view.Status = t.turnStatus()
	return t
}

// Board returns the board being played.
func (t *TUI) Board() *chess.Board { return t.board }

// Run draws the board and handles events until the player quits or the screen is
// finalised.
func (t *TUI) Run() error {
	for {
		render.Draw(t.screen, t.board, t.view)
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if t.key(ev) {
				return nil
			}
		}
	}
}

// key handles one key press and reports whether the player asked to quit.
func (t *TUI) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		t.moveCursor(0, 1)
	case tcell.KeyDown:
		t.moveCursor(0, -1)
	case tcell.KeyLeft:
		t.moveCursor(-1, 0)
	case tcell.KeyRight:
		t.moveCursor(1, 0)
	case tcell.KeyEnter:
		t.activate()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			t.moveCursor(0, 1)
		case 'j':
			t.moveCursor(0, -1)
		case 'h':
			t.moveCursor(-1, 0)
		case 'l':
			t.moveCursor(1, 0)
		case ' ':
			t.activate()
		case 'n':
			t.board = chess.NewBoard()
			t.clearSelection()
			t.view.Status = t.turnStatus()
		}
	}
	return false
}

func (t *TUI) moveCursor(df, dr int) {
	if next := chess.Build(t.view.Cursor, df, dr); next.Valid() {
		t.view.Cursor = next
	}
}

func (t *TUI) clearSelection() {
	t.view.Selected = chess.OffBoard
	t.view.Targets = nil
}

// activate selects the piece under the cursor or, with a piece selected, plays it to the
// cursor square.
func (t *TUI) activate() {
	at := t.view.Cursor
	if t.view.Selected.Valid() && containsLoc(t.view.Targets, at) {
		err := t.board.MakeMove(t.view.Selected, at)
		t.clearSelection()
		if err != nil {
			t.view.Status = err.Error()
			return
		}
		t.view.Status = t.turnStatus()
		return
	}
	p, ok := t.board.PieceAt(at)
	if !ok || p.Color != t.board.SideToMove() {
		t.clearSelection()
		t.view.Status = fmt.Sprintf("select a %s piece", t.board.SideToMove())
		return
	}
	t.view.Selected = at
	t.view.Targets = t.board.ValidMoves(at)
	t.view.Status = fmt.Sprintf("%s: %d moves", p, len(t.view.Targets))
}

func (t *TUI) turnStatus() string {
	b := t.board
	if b.State() != chess.Running {
		return "game over: " + b.State().String()
	}
	if b.InCheck(b.SideToMove()) {
		return fmt.Sprintf("%s to move, check", b.SideToMove())
	}
	return fmt.Sprintf("%s to move", b.SideToMove())
}

func containsLoc(locs []chess.Location, l chess.Location) bool {
	for _, x := range locs {
		if x == l {
			return true
		}
	}
	return false
}
