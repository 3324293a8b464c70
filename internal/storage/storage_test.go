package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"skillswap/backend/internal/models"
	"skillswap/backend/internal/storage"
)

func msg(id, sender, content string) models.Message {
	return models.Message{
		ID:        id,
		SenderID:  sender,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

func TestAppendAndHistoryOrder(t *testing.T) {
	s := storage.NewMemoryStore()

	s.Append("m1", msg("1", "u1", "first"))
	s.Append("m1", msg("2", "u2", "second"))
	s.Append("m1", msg("3", "u1", "third"))

	history := s.History("m1")
	assert.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "second", history[1].Content)
	assert.Equal(t, "third", history[2].Content)
}

func TestHistoryUnknownMatchIsEmptyNotNil(t *testing.T) {
	s := storage.NewMemoryStore()

	history := s.History("nope")
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistoryIsSnapshot(t *testing.T) {
	s := storage.NewMemoryStore()
	s.Append("m1", msg("1", "u1", "first"))

	snapshot := s.History("m1")
	s.Append("m1", msg("2", "u2", "second"))

	// The append after the snapshot must not leak into it.
	assert.Len(t, snapshot, 1)

	// Mutating the snapshot must not corrupt the store.
	snapshot[0].Content = "tampered"
	assert.Equal(t, "first", s.History("m1")[0].Content)
}

func TestHistoryIsolationAcrossMatches(t *testing.T) {
	s := storage.NewMemoryStore()
	s.Append("m1", msg("1", "u1", "for m1"))
	s.Append("m2", msg("2", "u2", "for m2"))

	assert.Len(t, s.History("m1"), 1)
	assert.Equal(t, "for m1", s.History("m1")[0].Content)
	assert.Len(t, s.History("m2"), 1)
	assert.Equal(t, "for m2", s.History("m2")[0].Content)
}

func TestDrop(t *testing.T) {
	s := storage.NewMemoryStore()
	s.Append("m1", msg("1", "u1", "gone soon"))

	s.Drop("m1")
	assert.Empty(t, s.History("m1"))

	// Dropping an unknown match is a no-op.
	s.Drop("never-existed")
}
