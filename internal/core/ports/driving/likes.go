package driving

import "context"

// LikeService toggles the viewer's like on a provider with optimistic
// local state and rollback on failure.
type LikeService interface {
	// ToggleLike flips the like state of the provider in the page
	// collection immediately, then reconciles with the server. On a
	// remote failure the pre-call state is restored exactly and the
	// error returned.
	ToggleLike(ctx context.Context, providerID string) error
}
