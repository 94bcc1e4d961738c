package domain

// RecommenderSuggestion is a ranked contact suggested after onboarding,
// scoped by the state collected in the location step.
type RecommenderSuggestion struct {
	// UserID is the suggested contact's id.
	UserID string `json:"user_id"`

	// Name is the suggested contact's display name.
	Name string `json:"name"`

	// State is the contact's home state.
	State string `json:"state"`

	// RecommendationCount is how many recommendations the contact
	// has shared; suggestions arrive ranked by it.
	RecommendationCount int `json:"recommendation_count"`
}
