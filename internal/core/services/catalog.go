package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
	"github.com/trustcircle/trustcircle-cli/internal/logger"
	"github.com/trustcircle/trustcircle-cli/internal/normalisers/provider"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService loads providers from the REST boundary, normalises
// them into the page collection, and derives the filtered/sorted views
// a category page renders.
type CatalogService struct {
	gateway  driven.ProviderGateway
	store    driven.CollectionStore
	identity domain.Identity
}

// NewCatalogService creates a catalog service for the given viewer.
func NewCatalogService(gateway driven.ProviderGateway, store driven.CollectionStore, identity domain.Identity) *CatalogService {
	return &CatalogService{
		gateway:  gateway,
		store:    store,
		identity: identity,
	}
}

// LoadCategory fetches a vertical's providers fresh and replaces the
// page collection. On failure the collection is left empty so the page
// can render an error state distinct from "no data".
func (s *CatalogService) LoadCategory(ctx context.Context, category domain.Category) ([]domain.Provider, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	logger.Section("Load Category")
	logger.Debug("Category: %s", category)

	raw, err := s.gateway.CategoryProviders(ctx, category, s.identity)
	if err != nil {
		logger.Warn("Category fetch failed: %v", err)
		s.store.ReplaceAll(nil)
		return nil, fmt.Errorf("load category %s: %w", category, err)
	}

	providers := provider.Normalise(raw)
	logger.Debug("Normalised %d providers", len(providers))

	s.store.ReplaceAll(providers)
	return providers, nil
}

// Search fetches providers matching a query across categories,
// de-duplicated by id (the backend can return the same provider once
// per recommendation), and replaces the page collection.
func (s *CatalogService) Search(ctx context.Context, query, state string) ([]domain.Provider, error) {
	logger.Section("Provider Search")
	logger.Debug("Query: %q, state: %q", query, state)

	raw, err := s.gateway.SearchProviders(ctx, query, s.identity, state)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		s.store.ReplaceAll(nil)
		return nil, fmt.Errorf("search providers: %w", err)
	}

	providers := dedupeByID(provider.Normalise(raw))
	logger.Debug("Search returned %d unique providers", len(providers))

	s.store.ReplaceAll(providers)
	return providers, nil
}

// CityFacets derives (city, count) pairs from a collection. Records
// without a city count under "Other". Facets are ordered by count
// descending; ties keep first-encountered order.
func (s *CatalogService) CityFacets(list []domain.Provider) []domain.CityFacet {
	counts := make(map[string]int, len(list))
	order := make([]string, 0, len(list))

	for i := range list {
		city := list[i].City
		if city == "" {
			city = domain.NoCityFacet
		}
		if _, seen := counts[city]; !seen {
			order = append(order, city)
		}
		counts[city]++
	}

	facets := make([]domain.CityFacet, 0, len(order))
	for _, city := range order {
		facets = append(facets, domain.CityFacet{City: city, Count: counts[city]})
	}

	sort.SliceStable(facets, func(i, j int) bool {
		return facets[i].Count > facets[j].Count
	})

	return facets
}

// VisibleList filters a collection by selected cities and sorts it for
// display. Records with a date sort most-recent-first and always before
// undated records; among undated records the original server order is
// preserved. The input slice is never mutated.
func (s *CatalogService) VisibleList(list []domain.Provider, selectedCities []string) []domain.Provider {
	selected := make(map[string]bool, len(selectedCities))
	for _, city := range selectedCities {
		selected[city] = true
	}

	visible := make([]domain.Provider, 0, len(list))
	for i := range list {
		if len(selected) > 0 {
			city := list[i].City
			if city == "" {
				city = domain.NoCityFacet
			}
			if !selected[city] {
				continue
			}
		}
		visible = append(visible, list[i])
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i].RecommendedAt, visible[j].RecommendedAt
		switch {
		case a != nil && b != nil:
			if !a.Equal(*b) {
				return a.After(*b)
			}
			return visible[i].OriginalIndex < visible[j].OriginalIndex
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return visible[i].OriginalIndex < visible[j].OriginalIndex
		}
	})

	return visible
}

// CommentsFor batch-fetches comments for the given provider ids.
func (s *CatalogService) CommentsFor(ctx context.Context, serviceIDs []string) (map[string][]domain.Comment, error) {
	if len(serviceIDs) == 0 {
		return map[string][]domain.Comment{}, nil
	}

	comments, err := s.gateway.BatchComments(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("batch comments: %w", err)
	}
	return comments, nil
}

// dedupeByID keeps the first occurrence of each provider id.
func dedupeByID(list []domain.Provider) []domain.Provider {
	seen := make(map[string]bool, len(list))
	out := make([]domain.Provider, 0, len(list))
	for i := range list {
		if seen[list[i].ID] {
			continue
		}
		seen[list[i].ID] = true
		out = append(out, list[i])
	}
	return out
}
