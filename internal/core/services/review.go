package services

import (
	"context"
	"fmt"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
	"github.com/trustcircle/trustcircle-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService validates and submits reviews. Unlike like-toggles,
// reviews perform no optimistic aggregate mutation: average_rating and
// total_reviews are server-computed, so the page refreshes to pick them
// up after a successful submit. Only the submitted tags are merged into
// the local record.
type ReviewService struct {
	gateway  driven.ProviderGateway
	store    driven.CollectionStore
	identity domain.Identity
}

// NewReviewService creates a review service for the given viewer.
func NewReviewService(gateway driven.ProviderGateway, store driven.CollectionStore, identity domain.Identity) *ReviewService {
	return &ReviewService{
		gateway:  gateway,
		store:    store,
		identity: identity,
	}
}

// Submit posts a review for a provider in the page collection.
func (s *ReviewService) Submit(ctx context.Context, providerID string, draft domain.ReviewDraft) error {
	if !s.identity.HasUser() {
		return fmt.Errorf("submit review: %w", domain.ErrAuthRequired)
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	target, err := s.store.Get(providerID)
	if err != nil {
		return fmt.Errorf("submit review %s: %w", providerID, err)
	}

	req := domain.ReviewRequest{
		ProviderID:    providerID,
		ProviderEmail: target.Email,
		UserID:        s.identity.UserID,
		Email:         s.identity.Email,
		Rating:        draft.Rating,
		Content:       draft.Content,
		Tags:          draft.Tags,
	}

	if err := s.gateway.SubmitReview(ctx, req); err != nil {
		// No rollback needed: nothing was mutated locally.
		return fmt.Errorf("submit review %s: %w", providerID, err)
	}

	target.Tags = domain.MergeTags(target.Tags, draft.Tags)
	s.store.Put(*target)
	logger.Debug("Review submitted: provider=%s rating=%d tags=%d",
		providerID, draft.Rating, len(draft.Tags))

	return nil
}
