// Package session keeps concurrent games in memory, one board per game id.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kai468/chupochess/chess"
)

// ErrNotFound is returned for unknown game ids.
var ErrNotFound = errors.New("game not found")

// Game is a copy of a game's observable state. It does not share memory with the
// board it was taken from.
type Game struct {
	ID      string
	FEN     string
	Board   map[string]string
	ToMove  chess.Color
	State   chess.GameState
	Check   bool
	Hash    uint64
	Moves   int
	Created time.Time
	Updated time.Time
}

type entry struct {
	board   *chess.Board
	moves   int
	created time.Time
	updated time.Time
}

// Service manages games.
type Service struct {
	mu    sync.Mutex
	games map[string]*entry
	now   func() time.Time
}

// NewService returns an empty service.
func NewService() *Service {
	return &Service{games: make(map[string]*entry), now: time.Now}
}

// Create registers a game from the standard starting position.
func (s *Service) Create() Game {
	return s.add(chess.NewBoard())
}

// CreateFromFEN registers a game starting from the given position.
func (s *Service) CreateFromFEN(fen string) (Game, error) {
	b, err := chess.ParseFEN(fen)
	if err != nil {
		return Game{}, err
	}
	return s.add(b), nil
}

func (s *Service) add(b *chess.Board) Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	now := s.now()
	e := &entry{board: b, created: now, updated: now}
	s.games[id] = e
	return e.view(id)
}

// Get returns the game with the given id.
func (s *Service) Get(id string) (Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.games[id]
	if !ok {
		return Game{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.view(id), nil
}

// Moves lists the legal destinations of the piece on from. An empty square yields an
// empty list.
func (s *Service) Moves(id string, from chess.Location) ([]chess.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.board.ValidMoves(from), nil
}

// Play applies a move for whichever side is to move. On error the game is unchanged.
func (s *Service) Play(id string, from, to chess.Location) (Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.games[id]
	if !ok {
		return Game{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := e.board.MakeMove(from, to); err != nil {
		return Game{}, err
	}
	e.moves++
	e.updated = s.now()
	return e.view(id), nil
}

// Len reports how many games are registered.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

func (e *entry) view(id string) Game {
	b := e.board
	side := b.SideToMove()
	return Game{
		ID:      id,
		FEN:     b.ToFEN(),
		Board:   b.Snapshot(),
		ToMove:  side,
		State:   b.State(),
		Check:   b.InCheck(side),
		Hash:    b.Hash(),
		Moves:   e.moves,
		Created: e.created,
		Updated: e.updated,
	}
}
