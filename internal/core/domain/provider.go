package domain

import "time"

// RawProvider is a provider record exactly as the REST boundary delivers it.
// Numeric fields arrive as numbers, numeric strings, or null depending on
// which backend path produced them, so they are kept loosely typed until
// the normaliser produces a Provider.
type RawProvider struct {
	// ID is the server-assigned identifier. String or integer on the wire.
	ID any `json:"id"`

	// BusinessName is the display name.
	BusinessName string `json:"business_name"`

	// Description is optional free text about the provider.
	Description string `json:"description"`

	// Email is the provider's contact email.
	Email string `json:"email"`

	// PhoneNumber is the provider's contact phone.
	PhoneNumber string `json:"phone_number"`

	// Website is the provider's web address.
	Website string `json:"website"`

	// AverageRating is the server-derived mean rating. May be a number,
	// a numeric string, or absent.
	AverageRating any `json:"average_rating"`

	// TotalReviews is the review count. May be a number, a numeric
	// string, or absent.
	TotalReviews any `json:"total_reviews"`

	// NumLikes is the like count. May be a number, a numeric string,
	// or absent.
	NumLikes any `json:"num_likes"`

	// CurrentUserLiked reports whether the viewer likes this provider.
	// Absent means false.
	CurrentUserLiked any `json:"currentUserLiked"`

	// Tags is the free-text tag list. May be absent or not array-shaped.
	Tags any `json:"tags"`

	// City is where the provider operates. Optional.
	City string `json:"city"`

	// DateOfRecommendation is when the recommendation was shared. Optional.
	DateOfRecommendation string `json:"date_of_recommendation"`

	// RecommenderName identifies who shared the recommendation. Optional.
	RecommenderName string `json:"recommender_name"`

	// RecommenderUserID is the recommender's user id. Optional.
	RecommenderUserID string `json:"recommender_user_id"`

	// RecommenderPhone is the recommender's phone. Optional.
	RecommenderPhone string `json:"recommender_phone"`

	// RecommenderEmail is the recommender's email. Optional.
	RecommenderEmail string `json:"recommender_email"`

	// UsersWhoReviewed carries the "also used by" names. May be absent.
	UsersWhoReviewed any `json:"users_who_reviewed"`
}

// Reviewer is an entry in a provider's "also used by" list.
type Reviewer struct {
	// Name is the reviewer's display name.
	Name string `json:"name"`
}

// Provider is the canonical in-memory provider record produced by the
// normaliser. All downstream components work with this shape; none may
// re-interpret raw fields.
//
// Invariants: AverageRating is in [0,5], TotalReviews and NumLikes are
// never negative. Records are created only by the server; the client
// never constructs an ID.
type Provider struct {
	// ID is the server-assigned identifier, stable across requests.
	ID string

	// BusinessName is the display name.
	BusinessName string

	// Description is optional free text about the provider.
	Description string

	// Email is the provider's contact email.
	Email string

	// PhoneNumber is the provider's contact phone.
	PhoneNumber string

	// Website is the provider's web address.
	Website string

	// AverageRating is the server-derived mean rating, clamped to [0,5].
	AverageRating float64

	// TotalReviews is the non-negative review count.
	TotalReviews int

	// NumLikes is the non-negative like count.
	NumLikes int

	// CurrentUserLiked reports whether the viewer currently likes
	// this provider.
	CurrentUserLiked bool

	// Tags is the ordered tag list, deduplicated case-insensitively.
	Tags []string

	// City is where the provider operates. Empty means unknown and
	// renders under the "Other" facet.
	City string

	// DateOfRecommendation is the raw date string for display.
	DateOfRecommendation string

	// RecommendedAt is the parsed recommendation date. Nil when the
	// record carries no parseable date; undated records sort after
	// dated ones.
	RecommendedAt *time.Time

	// RecommenderName identifies who shared the recommendation.
	RecommenderName string

	// RecommenderUserID is the recommender's user id.
	RecommenderUserID string

	// RecommenderPhone is the recommender's phone.
	RecommenderPhone string

	// RecommenderEmail is the recommender's email.
	RecommenderEmail string

	// UsersWhoReviewed carries the "also used by" names.
	UsersWhoReviewed []Reviewer

	// OriginalIndex is the record's position in the server response.
	// It is the final, stable tie-break in sorts.
	OriginalIndex int
}

// Clone returns a deep copy of the provider. Slices are copied so the
// clone shares no mutable state with the original. Used for optimistic
// mutation snapshots.
func (p Provider) Clone() Provider {
	c := p
	if p.Tags != nil {
		c.Tags = make([]string, len(p.Tags))
		copy(c.Tags, p.Tags)
	}
	if p.UsersWhoReviewed != nil {
		c.UsersWhoReviewed = make([]Reviewer, len(p.UsersWhoReviewed))
		copy(c.UsersWhoReviewed, p.UsersWhoReviewed)
	}
	if p.RecommendedAt != nil {
		t := *p.RecommendedAt
		c.RecommendedAt = &t
	}
	return c
}

// LikeResult is the server's authoritative state after a like toggle.
// The server may disagree with the optimistic guess, e.g. under
// concurrent likes from other sessions.
type LikeResult struct {
	// NumLikes is the authoritative like count.
	NumLikes int `json:"num_likes"`

	// CurrentUserLiked is the authoritative liked flag for the viewer.
	CurrentUserLiked bool `json:"currentUserLiked"`
}

// CityFacet is a derived count-per-city used to populate the filter UI.
type CityFacet struct {
	// City is the facet label. Records without a city count under "Other".
	City string

	// Count is how many loaded providers fall under this city.
	Count int
}

// NoCityFacet is the facet label for records without a city.
const NoCityFacet = "Other"
