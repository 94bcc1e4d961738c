package services

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
)

// withOptimisticUpdate is the shared transaction shape for local-first
// mutations: snapshot the collection and liked-set, apply the local
// change synchronously, then issue the remote call. On success the
// reconcile step merges the server's authoritative response; on failure
// the pre-apply snapshot is restored exactly.
//
// If a second mutation starts before the first resolves, its optimistic
// step computes from the already-updated state and its rollback restores
// its own snapshot. The last-settling response wins the authoritative
// overwrite, which can transiently show a stale count when responses
// arrive out of order. Accepted limitation.
func withOptimisticUpdate[T any](
	ctx context.Context,
	store driven.CollectionStore,
	apply func() error,
	remote func(context.Context) (T, error),
	reconcile func(T),
) error {
	providers, liked := store.Snapshot()

	if err := apply(); err != nil {
		return err
	}

	result, err := remote(ctx)
	if err != nil {
		store.Restore(providers, liked)
		return err
	}

	reconcile(result)
	return nil
}
