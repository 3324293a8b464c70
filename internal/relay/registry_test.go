package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/backend/internal/relay"
)

func TestAdmitRejectsMissingIdentifiers(t *testing.T) {
	r := relay.NewRegistry()

	err := r.Admit(newMockClient("c1", "", "u1"))
	require.ErrorIs(t, err, relay.ErrMissingMatchID)

	err = r.Admit(newMockClient("c2", "m1", ""))
	require.ErrorIs(t, err, relay.ErrMissingUserID)

	assert.Zero(t, r.Len())
}

func TestAdmitAndConnections(t *testing.T) {
	r := relay.NewRegistry()

	c1 := newMockClient("c1", "m1", "u1")
	c2 := newMockClient("c2", "m1", "u2")
	c3 := newMockClient("c3", "m2", "u3")

	require.NoError(t, r.Admit(c1))
	require.NoError(t, r.Admit(c2))
	require.NoError(t, r.Admit(c3))

	assert.Len(t, r.Connections("m1"), 2)
	assert.Len(t, r.Connections("m2"), 1)
	assert.Empty(t, r.Connections("m3"))
	assert.Equal(t, 3, r.Len())
}

func TestRemoveReportsEmptyTransition(t *testing.T) {
	r := relay.NewRegistry()

	c1 := newMockClient("c1", "m1", "u1")
	c2 := newMockClient("c2", "m1", "u2")
	require.NoError(t, r.Admit(c1))
	require.NoError(t, r.Admit(c2))

	removed, empty := r.Remove(c1)
	assert.True(t, removed)
	assert.False(t, empty)

	removed, empty = r.Remove(c2)
	assert.True(t, removed)
	assert.True(t, empty)

	assert.Empty(t, r.Connections("m1"))
}

func TestRemoveIsIdempotent(t *testing.T) {
	r := relay.NewRegistry()

	c1 := newMockClient("c1", "m1", "u1")
	require.NoError(t, r.Admit(c1))

	removed, empty := r.Remove(c1)
	assert.True(t, removed)
	assert.True(t, empty)

	removed, empty = r.Remove(c1)
	assert.False(t, removed)
	assert.False(t, empty)

	// Removing a client that was never admitted is also a no-op.
	removed, _ = r.Remove(newMockClient("c9", "m9", "u9"))
	assert.False(t, removed)
}

func TestCloseAll(t *testing.T) {
	r := relay.NewRegistry()

	c1 := newMockClient("c1", "m1", "u1")
	c2 := newMockClient("c2", "m2", "u2")
	require.NoError(t, r.Admit(c1))
	require.NoError(t, r.Admit(c2))

	r.CloseAll()

	assert.True(t, c1.Closed())
	assert.True(t, c2.Closed())
	assert.Zero(t, r.Len())
}
