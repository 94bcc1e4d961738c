// Package provider normalises raw provider records from the REST
// boundary into canonical domain.Provider values.
package provider

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// dateLayouts are tried in order when parsing date_of_recommendation.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Normalise converts raw provider records into canonical providers.
//
// Output length always equals input length; no element is dropped
// (filtering happens downstream). Malformed fields degrade to defaults
// rather than raising errors: ratings clamp into [0,5], counts floor at
// zero, missing arrays become empty, and currentUserLiked defaults to
// false. OriginalIndex records each element's position in the server
// response and is the final tie-break in sorts.
func Normalise(raw []domain.RawProvider) []domain.Provider {
	out := make([]domain.Provider, len(raw))
	for i := range raw {
		out[i] = normaliseOne(&raw[i], i)
	}
	return out
}

func normaliseOne(r *domain.RawProvider, index int) domain.Provider {
	p := domain.Provider{
		ID:                   asString(r.ID),
		BusinessName:         r.BusinessName,
		Description:          r.Description,
		Email:                r.Email,
		PhoneNumber:          r.PhoneNumber,
		Website:              r.Website,
		AverageRating:        clampRating(asFloat(r.AverageRating)),
		TotalReviews:         clampCount(asInt(r.TotalReviews)),
		NumLikes:             clampCount(asInt(r.NumLikes)),
		CurrentUserLiked:     asBool(r.CurrentUserLiked),
		Tags:                 asTags(r.Tags),
		City:                 strings.TrimSpace(r.City),
		DateOfRecommendation: r.DateOfRecommendation,
		RecommendedAt:        parseDate(r.DateOfRecommendation),
		RecommenderName:      r.RecommenderName,
		RecommenderUserID:    r.RecommenderUserID,
		RecommenderPhone:     r.RecommenderPhone,
		RecommenderEmail:     r.RecommenderEmail,
		UsersWhoReviewed:     asReviewers(r.UsersWhoReviewed),
		OriginalIndex:        index,
	}
	return p
}

// asString coerces the loosely-typed id field. JSON numbers arrive as
// float64; integral values render without a decimal point.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == math.Trunc(s) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// asFloat coerces a number, numeric string, or null; anything else is 0.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// asInt coerces a count field; fractional values truncate.
func asInt(v any) int {
	return int(asFloat(v))
}

// asBool coerces the tri-state liked flag. Absent or anything
// non-boolean is false.
func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// asTags coerces the tag field to an ordered, case-insensitively
// deduplicated list. Non-array shapes yield the empty list.
func asTags(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	tags := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, s)
	}
	return tags
}

// asReviewers coerces the "also used by" field. Entries may arrive as
// objects with a name key or as bare strings.
func asReviewers(v any) []domain.Reviewer {
	items, ok := v.([]any)
	if !ok {
		return []domain.Reviewer{}
	}
	reviewers := make([]domain.Reviewer, 0, len(items))
	for _, item := range items {
		switch entry := item.(type) {
		case map[string]any:
			if name, ok := entry["name"].(string); ok && name != "" {
				reviewers = append(reviewers, domain.Reviewer{Name: name})
			}
		case string:
			if entry != "" {
				reviewers = append(reviewers, domain.Reviewer{Name: entry})
			}
		}
	}
	return reviewers
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func clampRating(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 5 {
		return 5
	}
	return f
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
