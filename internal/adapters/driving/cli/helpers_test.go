package cli

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// stubCatalog implements driving.CatalogService for command tests.
type stubCatalog struct {
	loadFunc   func(ctx context.Context, category domain.Category) ([]domain.Provider, error)
	searchFunc func(ctx context.Context, query, state string) ([]domain.Provider, error)
}

func (s *stubCatalog) LoadCategory(
	ctx context.Context, category domain.Category,
) ([]domain.Provider, error) {
	if s.loadFunc != nil {
		return s.loadFunc(ctx, category)
	}
	return stubProviders(), nil
}

func (s *stubCatalog) Search(
	ctx context.Context, query, state string,
) ([]domain.Provider, error) {
	if s.searchFunc != nil {
		return s.searchFunc(ctx, query, state)
	}
	return stubProviders(), nil
}

func (s *stubCatalog) CityFacets([]domain.Provider) []domain.CityFacet { return nil }

func (s *stubCatalog) VisibleList(list []domain.Provider, cities []string) []domain.Provider {
	if len(cities) == 0 {
		return list
	}
	allowed := make(map[string]bool, len(cities))
	for _, c := range cities {
		allowed[c] = true
	}
	out := make([]domain.Provider, 0, len(list))
	for i := range list {
		if allowed[list[i].City] {
			out = append(out, list[i])
		}
	}
	return out
}

func (s *stubCatalog) CommentsFor(context.Context, []string) (map[string][]domain.Comment, error) {
	return nil, nil
}

// stubLikes implements driving.LikeService.
type stubLikes struct {
	toggleFunc func(ctx context.Context, providerID string) error
}

func (s *stubLikes) ToggleLike(ctx context.Context, providerID string) error {
	if s.toggleFunc != nil {
		return s.toggleFunc(ctx, providerID)
	}
	return nil
}

// stubReviews implements driving.ReviewService.
type stubReviews struct {
	submitFunc func(ctx context.Context, providerID string, draft domain.ReviewDraft) error
	lastDraft  domain.ReviewDraft
	lastID     string
}

func (s *stubReviews) Submit(
	ctx context.Context, providerID string, draft domain.ReviewDraft,
) error {
	s.lastID = providerID
	s.lastDraft = draft
	if s.submitFunc != nil {
		return s.submitFunc(ctx, providerID, draft)
	}
	return nil
}

// stubOnboarding implements driving.OnboardingService.
type stubOnboarding struct {
	generateFunc func(ctx context.Context, preferredName string) (string, error)
	completeFunc func(ctx context.Context, form domain.OnboardingForm, username string) error
	topFunc      func(ctx context.Context, state string) ([]domain.RecommenderSuggestion, error)
	sentIDs      []string
}

func (s *stubOnboarding) GenerateUsername(
	ctx context.Context, preferredName string,
) (string, error) {
	if s.generateFunc != nil {
		return s.generateFunc(ctx, preferredName)
	}
	return "tester501", nil
}

func (s *stubOnboarding) Complete(
	ctx context.Context, form domain.OnboardingForm, username string,
) error {
	if s.completeFunc != nil {
		return s.completeFunc(ctx, form, username)
	}
	return nil
}

func (s *stubOnboarding) TopRecommenders(
	ctx context.Context, state string,
) ([]domain.RecommenderSuggestion, error) {
	if s.topFunc != nil {
		return s.topFunc(ctx, state)
	}
	return nil, nil
}

func (s *stubOnboarding) SendConnectionRequests(
	_ context.Context, toUserIDs []string,
) int {
	s.sentIDs = toUserIDs
	return len(toUserIDs)
}

// stubStore implements driven.CollectionStore.
type stubStore struct {
	providers []domain.Provider
	liked     map[string]bool
}

func newStubStore(providers ...domain.Provider) *stubStore {
	s := &stubStore{liked: make(map[string]bool)}
	s.ReplaceAll(providers)
	return s
}

func (s *stubStore) ReplaceAll(providers []domain.Provider) {
	s.providers = make([]domain.Provider, len(providers))
	copy(s.providers, providers)
	s.liked = make(map[string]bool)
	for i := range providers {
		if providers[i].CurrentUserLiked {
			s.liked[providers[i].ID] = true
		}
	}
}

func (s *stubStore) All() []domain.Provider {
	out := make([]domain.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

func (s *stubStore) Get(id string) (*domain.Provider, error) {
	for i := range s.providers {
		if s.providers[i].ID == id {
			p := s.providers[i].Clone()
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) Put(p domain.Provider) {
	for i := range s.providers {
		if s.providers[i].ID == p.ID {
			s.providers[i] = p
			return
		}
	}
}

func (s *stubStore) Liked(id string) bool { return s.liked[id] }

func (s *stubStore) SetLiked(id string, liked bool) {
	if liked {
		s.liked[id] = true
		return
	}
	delete(s.liked, id)
}

func (s *stubStore) Snapshot() ([]domain.Provider, map[string]bool) {
	providers := make([]domain.Provider, len(s.providers))
	copy(providers, s.providers)
	liked := make(map[string]bool, len(s.liked))
	for k, v := range s.liked {
		liked[k] = v
	}
	return providers, liked
}

func (s *stubStore) Restore(providers []domain.Provider, liked map[string]bool) {
	s.providers = providers
	s.liked = liked
}

func stubProviders() []domain.Provider {
	return []domain.Provider{
		{
			ID:              "p1",
			BusinessName:    "Acme Cleaning",
			City:            "Seattle",
			AverageRating:   4.5,
			TotalReviews:    12,
			NumLikes:        3,
			RecommenderName: "Dana",
		},
		{
			ID:           "p2",
			BusinessName: "Shiny Homes",
			City:         "Tacoma",
		},
	}
}

// setupTestServices wires stub services into the package globals and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	prevCatalog := catalogService
	prevLikes := likeService
	prevReviews := reviewService
	prevOnboarding := onboardingService
	prevStore := collectionStore
	prevConfig := configStore

	store := newStubStore(stubProviders()...)
	catalogService = &stubCatalog{}
	likeService = &stubLikes{}
	reviewService = &stubReviews{}
	onboardingService = &stubOnboarding{}
	collectionStore = store

	return func() {
		catalogService = prevCatalog
		likeService = prevLikes
		reviewService = prevReviews
		onboardingService = prevOnboarding
		collectionStore = prevStore
		configStore = prevConfig
	}
}
