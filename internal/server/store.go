package server

import (
	"sync"
	"time"

	"github.com/danmuck/bowlctl/internal/game"
	"github.com/danmuck/bowlctl/internal/scoreboard"
)

// Store keeps the latest scoreboard published by a running game.
type Store struct {
	mu      sync.RWMutex
	board   scoreboard.Board
	updated time.Time
	version uint64
}

var _ game.Publisher = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Publish(board scoreboard.Board) {
	s.mu.Lock()
	s.board = board
	s.updated = time.Now()
	s.version++
	s.mu.Unlock()
}

// Snapshot returns the latest board, its version, and when it was published.
// Version 0 means nothing has been published yet.
func (s *Store) Snapshot() (scoreboard.Board, uint64, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board, s.version, s.updated
}
