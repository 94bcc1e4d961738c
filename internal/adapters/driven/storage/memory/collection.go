// Package memory provides the in-memory collection store. Provider
// state is session-scoped: every page load replaces it with a fresh
// fetch and nothing is persisted across runs.
package memory

import (
	"sync"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
)

// Ensure Collection implements the interface.
var _ driven.CollectionStore = (*Collection)(nil)

// Collection is an in-memory implementation of driven.CollectionStore.
// It keeps providers in load order (the order the server returned them)
// plus an id index and the liked-set.
type Collection struct {
	mu        sync.RWMutex
	providers []domain.Provider
	index     map[string]int
	liked     map[string]bool
}

// NewCollection creates an empty collection store.
func NewCollection() *Collection {
	return &Collection{
		index: make(map[string]int),
		liked: make(map[string]bool),
	}
}

// ReplaceAll swaps in a freshly fetched collection and rebuilds the
// liked-set from each record's CurrentUserLiked flag, keeping the two
// in sync by construction.
func (c *Collection) ReplaceAll(providers []domain.Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.providers = make([]domain.Provider, len(providers))
	c.index = make(map[string]int, len(providers))
	c.liked = make(map[string]bool)

	for i := range providers {
		c.providers[i] = providers[i].Clone()
		c.index[providers[i].ID] = i
		if providers[i].CurrentUserLiked {
			c.liked[providers[i].ID] = true
		}
	}
}

// All returns a copy of the collection in load order.
func (c *Collection) All() []domain.Provider {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Provider, len(c.providers))
	for i := range c.providers {
		out[i] = c.providers[i].Clone()
	}
	return out
}

// Get returns a copy of the record with the given id.
func (c *Collection) Get(id string) (*domain.Provider, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := c.providers[i].Clone()
	return &p, nil
}

// Put replaces the record with the same id in place. Unknown ids are
// ignored; the client never creates records, only the server does.
func (c *Collection) Put(p domain.Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[p.ID]
	if !ok {
		return
	}
	c.providers[i] = p.Clone()
}

// Liked reports whether the id is in the liked-set.
func (c *Collection) Liked(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.liked[id]
}

// SetLiked adds or removes an id from the liked-set.
func (c *Collection) SetLiked(id string, liked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if liked {
		c.liked[id] = true
	} else {
		delete(c.liked, id)
	}
}

// Snapshot returns a deep copy of the collection and liked-set.
func (c *Collection) Snapshot() ([]domain.Provider, map[string]bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	providers := make([]domain.Provider, len(c.providers))
	for i := range c.providers {
		providers[i] = c.providers[i].Clone()
	}
	liked := make(map[string]bool, len(c.liked))
	for id := range c.liked {
		liked[id] = true
	}
	return providers, liked
}

// Restore replaces the collection and liked-set with a snapshot.
func (c *Collection) Restore(providers []domain.Provider, liked map[string]bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.providers = make([]domain.Provider, len(providers))
	c.index = make(map[string]int, len(providers))
	for i := range providers {
		c.providers[i] = providers[i].Clone()
		c.index[providers[i].ID] = i
	}

	c.liked = make(map[string]bool, len(liked))
	for id, v := range liked {
		if v {
			c.liked[id] = true
		}
	}
}
