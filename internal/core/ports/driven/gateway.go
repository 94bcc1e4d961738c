package driven

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// ProviderGateway is the REST boundary for provider reads and mutations.
// All endpoints are safe to retry from the client's perspective.
type ProviderGateway interface {
	// CategoryProviders fetches the raw provider list for a vertical,
	// scoped to the viewer's circle.
	CategoryProviders(ctx context.Context, category domain.Category, identity domain.Identity) ([]domain.RawProvider, error)

	// SearchProviders searches providers across categories. The state
	// filter is optional; empty means nationwide.
	SearchProviders(ctx context.Context, query string, identity domain.Identity, state string) ([]domain.RawProvider, error)

	// ToggleLike flips the viewer's like on a provider and returns the
	// server's authoritative like state.
	ToggleLike(ctx context.Context, providerID string, identity domain.Identity) (domain.LikeResult, error)

	// SubmitReview posts a review. The response carries no body beyond
	// ok/not-ok.
	SubmitReview(ctx context.Context, review domain.ReviewRequest) error

	// BatchComments fetches comments for a set of providers in one call,
	// keyed by provider id.
	BatchComments(ctx context.Context, serviceIDs []string) (map[string][]domain.Comment, error)
}

// UserGateway is the REST boundary for account operations.
type UserGateway interface {
	// CompleteOnboarding finalises the onboarding flow.
	CompleteOnboarding(ctx context.Context, req domain.OnboardingRequest) error

	// CheckUsername reports whether a candidate handle is available.
	CheckUsername(ctx context.Context, username string) (bool, error)
}

// ConnectionGateway is the REST boundary for circle-building operations.
type ConnectionGateway interface {
	// TopRecommenders fetches ranked contact suggestions for a state.
	TopRecommenders(ctx context.Context, state, userID string) ([]domain.RecommenderSuggestion, error)

	// SendConnectionRequest sends one follow request. Duplicates are
	// tolerated server-side, not deduplicated here.
	SendConnectionRequest(ctx context.Context, fromUserID, toUserID string) error
}
