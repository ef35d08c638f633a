// Package oracle wraps independent move generators so positions produced by the chess
// package can be cross-checked move for move. Promotions are restricted to queens on every
// backend, matching the rules engine.
package oracle

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrUnknownBackend is returned by Lookup for names not in Backends.
var ErrUnknownBackend = errors.New("unknown oracle backend")

// Backend is an independent legal move generator working on FEN positions.
type Backend interface {
	Name() string
	// LegalMoves returns the UCI text of every legal move, sorted.
	LegalMoves(fen string) ([]string, error)
	// Divide returns per-root-move leaf counts at the given depth, keyed by UCI text.
	Divide(fen string, depth int) (map[string]uint64, error)
}

// Backends lists the available generators.
func Backends() []Backend { return []Backend{Dragontooth{}, Goose{}} }

// Names returns the names of the available generators.
func Names() []string {
	var out []string
	for _, b := range Backends() {
		out = append(out, b.Name())
	}
	return out
}

// Lookup finds a backend by name.
func Lookup(name string) (Backend, error) {
	for _, b := range Backends() {
		if strings.EqualFold(b.Name(), name) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
}

// Perft is the sum of Divide.
func Perft(b Backend, fen string, depth int) (uint64, error) {
	div, err := b.Divide(fen, depth)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	var n uint64
	for _, c := range div {
		n += c
	}
	return n, nil
}

// Mismatch is one root move on which two divides disagree. A count of -1 marks a move the
// side does not generate at all.
type Mismatch struct {
	Move string
	Got  int64
	Want int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d want %d", m.Move, m.Got, m.Want)
}

// Compare lists the root moves whose counts differ, sorted by move.
func Compare(got, want map[string]uint64) []Mismatch {
	keys := maps.Keys(want)
	for k := range got {
		if _, ok := want[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	var out []Mismatch
	for _, k := range keys {
		g, gok := got[k]
		w, wok := want[k]
		if gok && wok && g == w {
			continue
		}
		m := Mismatch{Move: k, Got: -1, Want: -1}
		if gok {
			m.Got = int64(g)
		}
		if wok {
			m.Want = int64(w)
		}
		out = append(out, m)
	}
	return out
}

// underpromotion reports whether a UCI move promotes to anything but a queen.
func underpromotion(uci string) bool {
	return len(uci) == 5 && uci[4] != 'q'
}
