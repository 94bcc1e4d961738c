package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
	"github.com/trustcircle/trustcircle-cli/internal/logger"
)

// Ensure OnboardingService implements the interface.
var _ driving.OnboardingService = (*OnboardingService)(nil)

const (
	// usernameSlugMax caps the slug portion of a generated handle.
	usernameSlugMax = 15

	// usernameAttempts is how many random suffixes are tried before
	// falling back to a timestamp-derived suffix.
	usernameAttempts = 10
)

// OnboardingService finalises the wizard: generates a unique handle,
// submits the form, and builds the user's initial circle from the
// suggested recommenders.
type OnboardingService struct {
	users       driven.UserGateway
	connections driven.ConnectionGateway
	identity    domain.Identity

	// now and randSuffix are injection points for deterministic tests.
	now        func() time.Time
	randSuffix func() int
}

// NewOnboardingService creates an onboarding service for the given viewer.
func NewOnboardingService(users driven.UserGateway, connections driven.ConnectionGateway, identity domain.Identity) *OnboardingService {
	return &OnboardingService{
		users:       users,
		connections: connections,
		identity:    identity,
		now:         time.Now,
		randSuffix:  func() int { return rand.Intn(1000) },
	}
}

// GenerateUsername produces an available handle: the preferred name
// slugified (lower-cased, non-alphanumerics stripped, truncated) plus a
// random 3-digit suffix. Collisions retry with fresh suffixes up to
// usernameAttempts times; after that the suffix derives from the current
// timestamp, which guarantees termination without unbounded retry.
func (s *OnboardingService) GenerateUsername(ctx context.Context, preferredName string) (string, error) {
	slug := slugify(preferredName)
	if slug == "" {
		return "", fmt.Errorf("%w: name has no usable characters", domain.ErrInvalidInput)
	}

	for attempt := 0; attempt < usernameAttempts; attempt++ {
		candidate := fmt.Sprintf("%s%03d", slug, s.randSuffix())
		available, err := s.users.CheckUsername(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
		if available {
			logger.Debug("Username available after %d attempt(s): %s", attempt+1, candidate)
			return candidate, nil
		}
	}

	fallback := fmt.Sprintf("%s%03d", slug, s.now().UnixMilli()%1000)
	logger.Warn("Username collided %d times, using timestamp fallback: %s",
		usernameAttempts, fallback)
	return fallback, nil
}

// Complete submits the finished form under the generated username.
func (s *OnboardingService) Complete(ctx context.Context, form domain.OnboardingForm, username string) error {
	if !s.identity.HasUser() {
		return fmt.Errorf("complete onboarding: %w", domain.ErrAuthRequired)
	}

	interests := make([]string, 0, len(form.Interests))
	for _, c := range form.Interests {
		interests = append(interests, string(c))
	}

	req := domain.OnboardingRequest{
		UserID:        s.identity.UserID,
		Email:         s.identity.Email,
		Username:      username,
		PreferredName: strings.TrimSpace(form.PreferredName),
		PhoneNumber:   form.NormalizedPhone(),
		Location:      strings.TrimSpace(form.City),
		State:         domain.ResolveState(form.State),
		Interests:     interests,
	}

	if err := s.users.CompleteOnboarding(ctx, req); err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	logger.Info("Onboarding complete: username=%s state=%s", username, req.State)
	return nil
}

// TopRecommenders fetches ranked contact suggestions for a state.
func (s *OnboardingService) TopRecommenders(ctx context.Context, state string) ([]domain.RecommenderSuggestion, error) {
	suggestions, err := s.connections.TopRecommenders(ctx, domain.ResolveState(state), s.identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("top recommenders: %w", err)
	}
	return suggestions, nil
}

// SendConnectionRequests fires one connection request per selected
// contact. Partial failures are logged and skipped; finishing always
// proceeds. Returns how many requests succeeded.
func (s *OnboardingService) SendConnectionRequests(ctx context.Context, toUserIDs []string) int {
	sent := 0
	for _, toID := range toUserIDs {
		if err := s.connections.SendConnectionRequest(ctx, s.identity.UserID, toID); err != nil {
			logger.Warn("Connection request to %s failed: %v", toID, err)
			continue
		}
		sent++
	}
	logger.Info("Connection requests: %d/%d sent", sent, len(toUserIDs))
	return sent
}

// slugify lower-cases a name, strips non-alphanumerics, and truncates
// to usernameSlugMax characters.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= usernameSlugMax {
			break
		}
	}
	return b.String()
}
