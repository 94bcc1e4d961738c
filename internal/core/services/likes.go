package services

import (
	"context"
	"fmt"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
	"github.com/trustcircle/trustcircle-cli/internal/logger"
)

// Ensure LikeService implements the interface.
var _ driving.LikeService = (*LikeService)(nil)

// LikeService toggles likes with optimistic local state. The flip and
// count change land in the collection before the network call; the
// server response overwrites them as the source of truth, and a failed
// call restores the exact pre-call state.
type LikeService struct {
	gateway  driven.ProviderGateway
	store    driven.CollectionStore
	identity domain.Identity
}

// NewLikeService creates a like service for the given viewer.
func NewLikeService(gateway driven.ProviderGateway, store driven.CollectionStore, identity domain.Identity) *LikeService {
	return &LikeService{
		gateway:  gateway,
		store:    store,
		identity: identity,
	}
}

// ToggleLike flips the viewer's like on a provider.
func (s *LikeService) ToggleLike(ctx context.Context, providerID string) error {
	if !s.identity.HasUser() {
		return fmt.Errorf("toggle like: %w", domain.ErrAuthRequired)
	}

	target, err := s.store.Get(providerID)
	if err != nil {
		return fmt.Errorf("toggle like %s: %w", providerID, err)
	}

	return withOptimisticUpdate(ctx, s.store,
		func() error {
			next := target.Clone()
			next.CurrentUserLiked = !target.CurrentUserLiked
			if next.CurrentUserLiked {
				next.NumLikes = target.NumLikes + 1
			} else {
				// Likes can never go negative.
				next.NumLikes = max(0, target.NumLikes-1)
			}
			s.store.Put(next)
			s.store.SetLiked(providerID, next.CurrentUserLiked)
			logger.Debug("Optimistic like: provider=%s liked=%t likes=%d",
				providerID, next.CurrentUserLiked, next.NumLikes)
			return nil
		},
		func(ctx context.Context) (domain.LikeResult, error) {
			return s.gateway.ToggleLike(ctx, providerID, s.identity)
		},
		func(result domain.LikeResult) {
			settled, err := s.store.Get(providerID)
			if err != nil {
				// Collection was replaced mid-flight; discard the result.
				logger.Debug("Like settled after reload, dropping: %s", providerID)
				return
			}
			settled.NumLikes = result.NumLikes
			settled.CurrentUserLiked = result.CurrentUserLiked
			s.store.Put(*settled)
			s.store.SetLiked(providerID, result.CurrentUserLiked)
			logger.Debug("Like settled: provider=%s liked=%t likes=%d",
				providerID, result.CurrentUserLiked, result.NumLikes)
		},
	)
}
