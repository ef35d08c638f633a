// Package console runs a two-player game in a terminal, either as a line-oriented loop
// over any reader and writer or as a full-screen tcell interface.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/kai468/chupochess/chess"
	"github.com/kai468/chupochess/render"
)

const help = `commands:
  A2->A3 | e2e4     move a piece
  moves <square>    list the legal moves of a piece
  board             print the board
  fen               print the position as FEN
  load <fen>        replace the position
  setup             print the piece placement
  state             print side to move and game state
  new               start a new game
  quit              leave
`

// Console is the line-oriented game loop.
type Console struct {
	in    io.Reader
	out   io.Writer
	board *chess.Board
	color bool
}

// New returns a console playing b. color enables ANSI colours on board output.
func New(in io.Reader, out io.Writer, b *chess.Board, color bool) *Console {
	if b == nil {
		b = chess.NewBoard()
	}
	return &Console{in: in, out: out, board: b, color: color}
}

// Board returns the board currently being played.
func (c *Console) Board() *chess.Board { return c.board }

// Run reads commands until quit or end of input. Bad input is reported and the loop
// continues; only write failures end it with an error.
func (c *Console) Run() error {
	scanner := bufio.NewScanner(c.in)
	if err := c.printBoard(nil); err != nil {
		return err
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		var err error
		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return nil
		case "help", "?":
			_, err = io.WriteString(c.out, help)
		case "board":
			err = c.printBoard(nil)
		case "fen":
			_, err = fmt.Fprintln(c.out, c.board.ToFEN())
		case "load", "position":
			err = c.load(strings.TrimSpace(line[len(tokens[0]):]))
		case "setup":
			err = c.printSetup()
		case "state":
			err = c.printState()
		case "new":
			c.board = chess.NewBoard()
			err = c.printBoard(nil)
		case "moves":
			err = c.moves(tokens[1:])
		default:
			err = c.move(line)
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c *Console) printBoard(highlight []chess.Location) error {
	return render.Text(c.out, c.board, render.Options{Color: c.color, Highlight: highlight})
}

func (c *Console) printSetup() error {
	snap := c.board.Snapshot()
	for _, k := range chess.SnapshotKeys(snap) {
		if _, err := fmt.Fprintf(c.out, "%s %s\n", k, snap[k]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) printState() error {
	b := c.board
	check := ""
	if b.InCheck(b.SideToMove()) {
		check = ", check"
	}
	_, err := fmt.Fprintf(c.out, "move %d, %s to move%s, %s\n", b.FullMoveNumber(), b.SideToMove(), check, b.State())
	return err
}

func (c *Console) load(fen string) error {
	b, err := chess.ParseFEN(fen)
	if err != nil {
		return c.report(err)
	}
	c.board = b
	return c.printBoard(nil)
}

func (c *Console) moves(args []string) error {
	if len(args) != 1 {
		return c.report(errors.New("usage: moves <square>"))
	}
	at, err := chess.ParseLocation(args[0])
	if err != nil {
		return c.report(err)
	}
	if _, ok := c.board.PieceAt(at); !ok {
		return c.report(fmt.Errorf("%w on %s", chess.ErrNoPiece, at))
	}
	targets := c.board.ValidMoves(at)
	if err := c.printBoard(targets); err != nil {
		return err
	}
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	slices.Sort(names)
	_, err = fmt.Fprintf(c.out, "%s: %s\n", at, strings.Join(names, " "))
	return err
}

func (c *Console) move(text string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return c.report(fmt.Errorf("%w (type help for commands)", err))
	}
	if err := c.board.Apply(m); err != nil {
		return c.report(err)
	}
	if err := c.printBoard(nil); err != nil {
		return err
	}
	b := c.board
	switch {
	case b.State() != chess.Running:
		_, err = fmt.Fprintf(c.out, "game over: %s\n", b.State())
	case b.InCheck(b.SideToMove()):
		_, err = fmt.Fprintf(c.out, "%s is in check\n", b.SideToMove())
	}
	return err
}

// report prints a user error; the returned error is only non-nil if writing fails.
func (c *Console) report(err error) error {
	_, werr := fmt.Fprintf(c.out, "error: %v\n", err)
	return werr
}
