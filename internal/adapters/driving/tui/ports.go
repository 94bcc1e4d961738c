// Package tui provides an interactive terminal user interface for Trust Circle.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
)

// Ports aggregates all ports required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog loads and derives provider list views.
	Catalog driving.CatalogService

	// Likes toggles likes with optimistic rollback.
	Likes driving.LikeService

	// Reviews validates and submits reviews.
	Reviews driving.ReviewService

	// Onboarding finalises the onboarding wizard.
	Onboarding driving.OnboardingService

	// Store is the session-scoped page collection. Views read it after
	// mutations so optimistic flips and rollbacks show immediately.
	Store driven.CollectionStore
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	likes driving.LikeService,
	reviews driving.ReviewService,
	onboarding driving.OnboardingService,
	store driven.CollectionStore,
) *Ports {
	return &Ports{
		Catalog:    catalog,
		Likes:      likes,
		Reviews:    reviews,
		Onboarding: onboarding,
		Store:      store,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Likes == nil {
		return ErrMissingLikeService
	}
	if p.Reviews == nil {
		return ErrMissingReviewService
	}
	if p.Onboarding == nil {
		return ErrMissingOnboardingService
	}
	if p.Store == nil {
		return ErrMissingCollectionStore
	}
	return nil
}
