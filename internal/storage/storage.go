package storage

import (
	"sync"

	"skillswap/backend/internal/models"
)

// Store is the message history consumed by the relay hub. Long-term
// persistence of matches and messages belongs to an external document store;
// this store only covers the lifetime of a live match channel.
type Store interface {
	// Append adds a message to the end of the match's ordered sequence,
	// creating the sequence on first use.
	Append(matchID string, msg models.Message)
	// History returns a snapshot of the match's sequence at the time of the
	// call. Appends racing with the call are not reflected in the result.
	History(matchID string) []models.Message
	// Drop evicts the match's sequence. Called when the last connection for
	// the match goes away.
	Drop(matchID string)
}

// MemoryStore keeps an append-only, arrival-ordered message sequence per
// match. There is no size cap and no compaction: matches are small and
// short-lived, and the hub drops the whole sequence once its channel empties.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[string][]models.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		messages: make(map[string][]models.Message),
	}
}

func (s *MemoryStore) Append(matchID string, msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[matchID] = append(s.messages[matchID], msg)
}

// History never returns nil, so an empty history serializes as an empty
// sequence rather than a null.
func (s *MemoryStore) History(matchID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seq := s.messages[matchID]
	out := make([]models.Message, len(seq))
	copy(out, seq)
	return out
}

func (s *MemoryStore) Drop(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, matchID)
}
