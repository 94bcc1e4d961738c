package driving

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// OnboardingService finalises the onboarding wizard and builds the
// user's initial circle.
type OnboardingService interface {
	// GenerateUsername produces an available handle from the preferred
	// name: slug plus a random 3-digit suffix, retried on collision,
	// with a timestamp-derived fallback that guarantees termination.
	GenerateUsername(ctx context.Context, preferredName string) (string, error)

	// Complete submits the finished form under the generated username.
	Complete(ctx context.Context, form domain.OnboardingForm, username string) error

	// TopRecommenders fetches ranked contact suggestions for the state
	// collected in the location step.
	TopRecommenders(ctx context.Context, state string) ([]domain.RecommenderSuggestion, error)

	// SendConnectionRequests fires one connection request per selected
	// contact. Partial failures are logged, never block completion; the
	// return value is how many requests succeeded.
	SendConnectionRequests(ctx context.Context, toUserIDs []string) int
}
