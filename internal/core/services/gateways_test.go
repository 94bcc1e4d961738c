package services

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// testIdentity is a signed-in viewer for service tests.
var testIdentity = domain.Identity{
	UserID:    "u1",
	Email:     "sam@example.com",
	FirstName: "Sam",
	LastName:  "Rivera",
}

// MockProviderGateway implements driven.ProviderGateway.
type MockProviderGateway struct {
	CategoryProvidersFunc func(ctx context.Context, category domain.Category, identity domain.Identity) ([]domain.RawProvider, error)
	SearchProvidersFunc   func(ctx context.Context, query string, identity domain.Identity, state string) ([]domain.RawProvider, error)
	ToggleLikeFunc        func(ctx context.Context, providerID string, identity domain.Identity) (domain.LikeResult, error)
	SubmitReviewFunc      func(ctx context.Context, review domain.ReviewRequest) error
	BatchCommentsFunc     func(ctx context.Context, serviceIDs []string) (map[string][]domain.Comment, error)
}

func (m *MockProviderGateway) CategoryProviders(
	ctx context.Context, category domain.Category, identity domain.Identity,
) ([]domain.RawProvider, error) {
	if m.CategoryProvidersFunc != nil {
		return m.CategoryProvidersFunc(ctx, category, identity)
	}
	return []domain.RawProvider{}, nil
}

func (m *MockProviderGateway) SearchProviders(
	ctx context.Context, query string, identity domain.Identity, state string,
) ([]domain.RawProvider, error) {
	if m.SearchProvidersFunc != nil {
		return m.SearchProvidersFunc(ctx, query, identity, state)
	}
	return []domain.RawProvider{}, nil
}

func (m *MockProviderGateway) ToggleLike(
	ctx context.Context, providerID string, identity domain.Identity,
) (domain.LikeResult, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, providerID, identity)
	}
	return domain.LikeResult{}, nil
}

func (m *MockProviderGateway) SubmitReview(ctx context.Context, review domain.ReviewRequest) error {
	if m.SubmitReviewFunc != nil {
		return m.SubmitReviewFunc(ctx, review)
	}
	return nil
}

func (m *MockProviderGateway) BatchComments(
	ctx context.Context, serviceIDs []string,
) (map[string][]domain.Comment, error) {
	if m.BatchCommentsFunc != nil {
		return m.BatchCommentsFunc(ctx, serviceIDs)
	}
	return map[string][]domain.Comment{}, nil
}

// MockUserGateway implements driven.UserGateway.
type MockUserGateway struct {
	CompleteOnboardingFunc func(ctx context.Context, req domain.OnboardingRequest) error
	CheckUsernameFunc      func(ctx context.Context, username string) (bool, error)
}

func (m *MockUserGateway) CompleteOnboarding(ctx context.Context, req domain.OnboardingRequest) error {
	if m.CompleteOnboardingFunc != nil {
		return m.CompleteOnboardingFunc(ctx, req)
	}
	return nil
}

func (m *MockUserGateway) CheckUsername(ctx context.Context, username string) (bool, error) {
	if m.CheckUsernameFunc != nil {
		return m.CheckUsernameFunc(ctx, username)
	}
	return true, nil
}

// MockConnectionGateway implements driven.ConnectionGateway.
type MockConnectionGateway struct {
	TopRecommendersFunc       func(ctx context.Context, state, userID string) ([]domain.RecommenderSuggestion, error)
	SendConnectionRequestFunc func(ctx context.Context, fromUserID, toUserID string) error
}

func (m *MockConnectionGateway) TopRecommenders(
	ctx context.Context, state, userID string,
) ([]domain.RecommenderSuggestion, error) {
	if m.TopRecommendersFunc != nil {
		return m.TopRecommendersFunc(ctx, state, userID)
	}
	return []domain.RecommenderSuggestion{}, nil
}

func (m *MockConnectionGateway) SendConnectionRequest(ctx context.Context, fromUserID, toUserID string) error {
	if m.SendConnectionRequestFunc != nil {
		return m.SendConnectionRequestFunc(ctx, fromUserID, toUserID)
	}
	return nil
}
