package driving

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// CatalogService loads provider lists and exposes the derived views a
// category page renders.
type CatalogService interface {
	// LoadCategory fetches a vertical's providers, normalises them, and
	// replaces the page collection. A fetch failure leaves the
	// collection empty and returns the error so callers can distinguish
	// empty-from-error.
	LoadCategory(ctx context.Context, category domain.Category) ([]domain.Provider, error)

	// Search fetches providers matching a query, de-duplicated by id.
	Search(ctx context.Context, query, state string) ([]domain.Provider, error)

	// CityFacets derives (city, count) pairs from a collection, counts
	// descending, ties broken by first-encountered order.
	CityFacets(list []domain.Provider) []domain.CityFacet

	// VisibleList filters a collection by selected cities and sorts it
	// for display: most recent first, dated before undated, original
	// server order as the final tie-break. The input is not mutated.
	VisibleList(list []domain.Provider, selectedCities []string) []domain.Provider

	// CommentsFor batch-fetches comments for the given provider ids.
	CommentsFor(ctx context.Context, serviceIDs []string) (map[string][]domain.Comment, error)
}
