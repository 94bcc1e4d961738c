package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingLikeService is returned when the like service is not provided.
var ErrMissingLikeService = errors.New("tui: like service is required")

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("tui: review service is required")

// ErrMissingOnboardingService is returned when the onboarding service is not provided.
var ErrMissingOnboardingService = errors.New("tui: onboarding service is required")

// ErrMissingCollectionStore is returned when the collection store is not provided.
var ErrMissingCollectionStore = errors.New("tui: collection store is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
