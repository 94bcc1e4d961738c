package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// MockCatalogService implements driving.CatalogService for testing.
type MockCatalogService struct {
	LoadCategoryFunc func(ctx context.Context, category domain.Category) ([]domain.Provider, error)
	SearchFunc       func(ctx context.Context, query, state string) ([]domain.Provider, error)
	CityFacetsFunc   func(list []domain.Provider) []domain.CityFacet
	VisibleListFunc  func(list []domain.Provider, selectedCities []string) []domain.Provider
	CommentsForFunc  func(ctx context.Context, serviceIDs []string) (map[string][]domain.Comment, error)
}

func (m *MockCatalogService) LoadCategory(
	ctx context.Context, category domain.Category,
) ([]domain.Provider, error) {
	if m.LoadCategoryFunc != nil {
		return m.LoadCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockCatalogService) Search(
	ctx context.Context, query, state string,
) ([]domain.Provider, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, state)
	}
	return nil, nil
}

func (m *MockCatalogService) CityFacets(list []domain.Provider) []domain.CityFacet {
	if m.CityFacetsFunc != nil {
		return m.CityFacetsFunc(list)
	}
	return nil
}

func (m *MockCatalogService) VisibleList(
	list []domain.Provider, selectedCities []string,
) []domain.Provider {
	if m.VisibleListFunc != nil {
		return m.VisibleListFunc(list, selectedCities)
	}
	return list
}

func (m *MockCatalogService) CommentsFor(
	ctx context.Context, serviceIDs []string,
) (map[string][]domain.Comment, error) {
	if m.CommentsForFunc != nil {
		return m.CommentsForFunc(ctx, serviceIDs)
	}
	return nil, nil
}

// MockLikeService implements driving.LikeService for testing.
type MockLikeService struct {
	ToggleLikeFunc func(ctx context.Context, providerID string) error
}

func (m *MockLikeService) ToggleLike(ctx context.Context, providerID string) error {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, providerID)
	}
	return nil
}

// MockReviewService implements driving.ReviewService for testing.
type MockReviewService struct {
	SubmitFunc func(ctx context.Context, providerID string, draft domain.ReviewDraft) error
}

func (m *MockReviewService) Submit(
	ctx context.Context, providerID string, draft domain.ReviewDraft,
) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, providerID, draft)
	}
	return nil
}

// MockOnboardingService implements driving.OnboardingService for testing.
type MockOnboardingService struct {
	GenerateUsernameFunc       func(ctx context.Context, preferredName string) (string, error)
	CompleteFunc               func(ctx context.Context, form domain.OnboardingForm, username string) error
	TopRecommendersFunc        func(ctx context.Context, state string) ([]domain.RecommenderSuggestion, error)
	SendConnectionRequestsFunc func(ctx context.Context, toUserIDs []string) int
}

func (m *MockOnboardingService) GenerateUsername(
	ctx context.Context, preferredName string,
) (string, error) {
	if m.GenerateUsernameFunc != nil {
		return m.GenerateUsernameFunc(ctx, preferredName)
	}
	return "tester742", nil
}

func (m *MockOnboardingService) Complete(
	ctx context.Context, form domain.OnboardingForm, username string,
) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, form, username)
	}
	return nil
}

func (m *MockOnboardingService) TopRecommenders(
	ctx context.Context, state string,
) ([]domain.RecommenderSuggestion, error) {
	if m.TopRecommendersFunc != nil {
		return m.TopRecommendersFunc(ctx, state)
	}
	return nil, nil
}

func (m *MockOnboardingService) SendConnectionRequests(
	ctx context.Context, toUserIDs []string,
) int {
	if m.SendConnectionRequestsFunc != nil {
		return m.SendConnectionRequestsFunc(ctx, toUserIDs)
	}
	return len(toUserIDs)
}

// MockCollectionStore implements driven.CollectionStore for testing.
// It is a straightforward in-memory map, safe for the sequential
// access pattern the view tests use.
type MockCollectionStore struct {
	mu        sync.Mutex
	providers []domain.Provider
	liked     map[string]bool
}

func NewMockCollectionStore() *MockCollectionStore {
	return &MockCollectionStore{liked: make(map[string]bool)}
}

func (m *MockCollectionStore) ReplaceAll(providers []domain.Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers = make([]domain.Provider, len(providers))
	copy(m.providers, providers)
	m.liked = make(map[string]bool)
	for i := range providers {
		if providers[i].CurrentUserLiked {
			m.liked[providers[i].ID] = true
		}
	}
}

func (m *MockCollectionStore) All() []domain.Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Provider, len(m.providers))
	copy(out, m.providers)
	return out
}

func (m *MockCollectionStore) Get(id string) (*domain.Provider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.providers {
		if m.providers[i].ID == id {
			p := m.providers[i].Clone()
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockCollectionStore) Put(p domain.Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.providers {
		if m.providers[i].ID == p.ID {
			m.providers[i] = p
			return
		}
	}
}

func (m *MockCollectionStore) Liked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liked[id]
}

func (m *MockCollectionStore) SetLiked(id string, liked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if liked {
		m.liked[id] = true
		return
	}
	delete(m.liked, id)
}

func (m *MockCollectionStore) Snapshot() ([]domain.Provider, map[string]bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	providers := make([]domain.Provider, len(m.providers))
	for i := range m.providers {
		providers[i] = m.providers[i].Clone()
	}
	liked := make(map[string]bool, len(m.liked))
	for k, v := range m.liked {
		liked[k] = v
	}
	return providers, liked
}

func (m *MockCollectionStore) Restore(providers []domain.Provider, liked map[string]bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers = providers
	m.liked = liked
}

func TestNewPorts(t *testing.T) {
	catalog := &MockCatalogService{}
	likes := &MockLikeService{}
	reviews := &MockReviewService{}
	onboarding := &MockOnboardingService{}
	store := NewMockCollectionStore()

	ports := NewPorts(catalog, likes, reviews, onboarding, store)

	require.NotNil(t, ports)
	assert.Equal(t, catalog, ports.Catalog)
	assert.Equal(t, likes, ports.Likes)
	assert.Equal(t, reviews, ports.Reviews)
	assert.Equal(t, onboarding, ports.Onboarding)
	assert.Equal(t, store, ports.Store)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Catalog:    &MockCatalogService{},
		Likes:      &MockLikeService{},
		Reviews:    &MockReviewService{},
		Onboarding: &MockOnboardingService{},
		Store:      NewMockCollectionStore(),
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingCatalog(t *testing.T) {
	ports := &Ports{
		Catalog:    nil,
		Likes:      &MockLikeService{},
		Reviews:    &MockReviewService{},
		Onboarding: &MockOnboardingService{},
		Store:      NewMockCollectionStore(),
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCatalogService)
}

func TestPorts_Validate_MissingLikes(t *testing.T) {
	ports := &Ports{
		Catalog:    &MockCatalogService{},
		Likes:      nil,
		Reviews:    &MockReviewService{},
		Onboarding: &MockOnboardingService{},
		Store:      NewMockCollectionStore(),
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingLikeService)
}

func TestPorts_Validate_MissingReviews(t *testing.T) {
	ports := &Ports{
		Catalog:    &MockCatalogService{},
		Likes:      &MockLikeService{},
		Reviews:    nil,
		Onboarding: &MockOnboardingService{},
		Store:      NewMockCollectionStore(),
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingReviewService)
}

func TestPorts_Validate_MissingOnboarding(t *testing.T) {
	ports := &Ports{
		Catalog:    &MockCatalogService{},
		Likes:      &MockLikeService{},
		Reviews:    &MockReviewService{},
		Onboarding: nil,
		Store:      NewMockCollectionStore(),
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingOnboardingService)
}

func TestPorts_Validate_MissingStore(t *testing.T) {
	ports := &Ports{
		Catalog:    &MockCatalogService{},
		Likes:      &MockLikeService{},
		Reviews:    &MockReviewService{},
		Onboarding: &MockOnboardingService{},
		Store:      nil,
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCollectionStore)
}
