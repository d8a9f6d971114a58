package store

import (
	"sync"

	"github.com/ngmaloney/velib-terminal/internal/models"
)

// Store holds the last successfully fetched station snapshot.
// Each refresh replaces the whole collection; there is no merge.
type Store struct {
	mu       sync.RWMutex
	stations []models.Station
}

// New creates an empty store
func New() *Store {
	return &Store{stations: make([]models.Station, 0)}
}

// Replace swaps the held snapshot for a copy of stations
func (s *Store) Replace(stations []models.Station) {
	next := make([]models.Station, len(stations))
	copy(next, stations)

	s.mu.Lock()
	s.stations = next
	s.mu.Unlock()
}

// All returns the current snapshot in feed order
func (s *Store) All() []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]models.Station, len(s.stations))
	copy(result, s.stations)
	return result
}

// Len returns the number of stations held
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stations)
}
