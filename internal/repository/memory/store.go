// Package memory provides map-backed repositories used by tests and by
// the DB-less development mode.
package memory

import (
	"sync"
	"time"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
)

// Store holds the shared state of all in-memory repositories so joins
// between videos, campaigns and matches can be resolved.
type Store struct {
	mu sync.RWMutex

	users     map[int]domain.User
	videos    map[int]domain.Video
	campaigns map[int]domain.Campaign
	matches   map[int]domain.Match
	nextID    int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:     make(map[int]domain.User),
		videos:    make(map[int]domain.Video),
		campaigns: make(map[int]domain.Campaign),
		matches:   make(map[int]domain.Match),
		now:       time.Now,
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}
