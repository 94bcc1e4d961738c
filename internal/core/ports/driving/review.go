package driving

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// ReviewService validates and submits reviews.
type ReviewService interface {
	// Submit validates the draft locally, posts it, and on success
	// unions the submitted tags into the provider's record. Rating
	// aggregates are server-computed; callers refresh the page to pick
	// them up.
	Submit(ctx context.Context, providerID string, draft domain.ReviewDraft) error
}
