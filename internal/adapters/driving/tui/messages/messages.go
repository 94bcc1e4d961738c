// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the category picker menu.
	ViewMenu ViewType = iota
	// ViewCategory is the category browse view with the provider list.
	ViewCategory
	// ViewSearch is the free-text search view.
	ViewSearch
	// ViewOnboarding is the profile onboarding wizard.
	ViewOnboarding
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCategory:
		return "category"
	case ViewSearch:
		return "search"
	case ViewOnboarding:
		return "onboarding"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CategorySelected is sent when a category is chosen from the menu.
type CategorySelected struct {
	Category domain.Category
}

// ProvidersLoaded carries the providers for the active category.
type ProvidersLoaded struct {
	Category  domain.Category
	Providers []domain.Provider
	Err       error
}

// SearchCompleted carries free-text search results back to the model.
type SearchCompleted struct {
	Query     string
	Providers []domain.Provider
	Err       error
}

// CityFilterChanged is sent when the active city facet changes.
type CityFilterChanged struct {
	City string
}

// CommentsLoaded carries batch-fetched comments keyed by provider ID.
type CommentsLoaded struct {
	Comments map[string][]domain.Comment
	Err      error
}

// LikeSettled signals that a like toggle round-trip finished. The
// optimistic flip has already been applied or rolled back by the time
// this message arrives.
type LikeSettled struct {
	ProviderID string
	Provider   *domain.Provider
	Err        error
}

// ReviewSubmitted signals a review submission finished.
type ReviewSubmitted struct {
	ProviderID string
	Err        error
}

// UsernameGenerated carries a generated unique username.
type UsernameGenerated struct {
	Username string
	Err      error
}

// OnboardingCompleted signals the onboarding request finished.
type OnboardingCompleted struct {
	Identity domain.Identity
	Err      error
}

// SuggestionsLoaded carries top recommender suggestions for the
// post-onboarding connect step.
type SuggestionsLoaded struct {
	Suggestions []domain.RecommenderSuggestion
	Err         error
}

// ConnectionsSent signals connection requests were dispatched.
type ConnectionsSent struct {
	Sent int
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
