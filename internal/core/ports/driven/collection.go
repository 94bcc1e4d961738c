package driven

import "github.com/trustcircle/trustcircle-cli/internal/core/domain"

// CollectionStore holds the page-scoped provider collection and the
// liked-set. It is session-scoped view state, not persistence: each
// page load replaces the collection with a fresh fetch, and nothing
// survives the process.
//
// The liked-set exists only for O(1) "is this liked" checks during
// rendering. Outside the brief window of an in-flight mutation it must
// agree with every record's CurrentUserLiked flag.
type CollectionStore interface {
	// ReplaceAll swaps in a freshly fetched collection and rebuilds the
	// liked-set from each record's CurrentUserLiked flag.
	ReplaceAll(providers []domain.Provider)

	// All returns the collection in load order. The returned slice is a
	// copy; mutating it does not affect the store.
	All() []domain.Provider

	// Get returns a copy of the record with the given id, or
	// domain.ErrNotFound.
	Get(id string) (*domain.Provider, error)

	// Put replaces the record with the same id in place. Unknown ids
	// are ignored.
	Put(p domain.Provider)

	// Liked reports whether the id is in the liked-set.
	Liked(id string) bool

	// SetLiked adds or removes an id from the liked-set.
	SetLiked(id string, liked bool)

	// Snapshot returns a deep copy of the collection and liked-set for
	// rollback.
	Snapshot() ([]domain.Provider, map[string]bool)

	// Restore replaces the collection and liked-set with a snapshot.
	Restore(providers []domain.Provider, liked map[string]bool)
}
