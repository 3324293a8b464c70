package relay

import (
	"errors"
	"sync"
)

var (
	// ErrMissingMatchID rejects admission without a match identifier.
	ErrMissingMatchID = errors.New("relay: missing match id")
	// ErrMissingUserID rejects admission without a user identifier.
	ErrMissingUserID = errors.New("relay: missing user id")
)

// Registry tracks which live connections belong to which match and removes
// them on disconnect. A match's entry exists only while at least one
// connection references it.
type Registry struct {
	mu      sync.RWMutex
	matches map[string]map[string]Client // matchID -> connectionID -> client
}

func NewRegistry() *Registry {
	return &Registry{
		matches: make(map[string]map[string]Client),
	}
}

// Admit adds the client to its match's connection set, creating the set on
// first use. Admission fails when either identifier is empty.
func (r *Registry) Admit(c Client) error {
	if c.GetMatchID() == "" {
		return ErrMissingMatchID
	}
	if c.GetUserID() == "" {
		return ErrMissingUserID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.matches[c.GetMatchID()]
	if set == nil {
		set = make(map[string]Client)
		r.matches[c.GetMatchID()] = set
	}
	set[c.GetConnectionID()] = c
	return nil
}

// Remove is idempotent. It reports whether the client was still registered
// and whether its match's connection set transitioned to empty; the empty
// transition is the caller's cue to evict the match's history.
func (r *Registry) Remove(c Client) (removed, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.matches[c.GetMatchID()]
	if !ok {
		return false, false
	}
	if _, ok := set[c.GetConnectionID()]; !ok {
		return false, false
	}
	delete(set, c.GetConnectionID())
	if len(set) == 0 {
		delete(r.matches, c.GetMatchID())
		return true, true
	}
	return true, false
}

// Connections returns the clients currently registered for a match.
func (r *Registry) Connections(matchID string) []Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.matches[matchID]
	if len(set) == 0 {
		return nil
	}
	out := make([]Client, 0, len(set))
	for _, c := range set {
		out = append(out, c)
	}
	return out
}

// Len returns the total number of registered connections across all matches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, set := range r.matches {
		n += len(set)
	}
	return n
}

// CloseAll closes every registered connection. Used during shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, set := range r.matches {
		for _, c := range set {
			c.Close()
		}
	}
	r.matches = make(map[string]map[string]Client)
}
