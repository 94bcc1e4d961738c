package domain

import (
	"fmt"
	"strings"
)

// ReviewDraft is a review being composed for a provider. Rating and tags
// are validated locally before any network call.
type ReviewDraft struct {
	// Rating is the star rating, an integer in [1,5].
	Rating int

	// Content is the free-text review body. Optional.
	Content string

	// Tags is the deduplicated tag list accumulated for this submission.
	Tags []string
}

// Validate checks the draft's local preconditions. A failure wraps
// ErrInvalidInput with a display-ready reason.
func (d ReviewDraft) Validate() error {
	if d.Rating < 1 || d.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	return nil
}

// ParseTagInput splits free-text tag input on commas and newlines,
// trims and lower-cases each tag, and deduplicates against both the new
// batch and any tags already accumulated. Existing tags keep their
// position; new tags append in input order.
func ParseTagInput(existing []string, input string) []string {
	out := make([]string, 0, len(existing))
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}

	for _, piece := range strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		tag := strings.ToLower(strings.TrimSpace(piece))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// MergeTags unions newly submitted tags into a provider's existing tag
// list, case-insensitively, preserving the existing order.
func MergeTags(current, added []string) []string {
	merged := make([]string, 0, len(current)+len(added))
	seen := make(map[string]bool, len(current))
	for _, t := range current {
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, t)
	}
	for _, t := range added {
		key := strings.ToLower(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, t)
	}
	return merged
}

// ReviewRequest is the wire-level review submission.
type ReviewRequest struct {
	// ProviderID identifies the reviewed provider.
	ProviderID string `json:"provider_id"`

	// ProviderEmail is the provider's contact email, forwarded for
	// notification.
	ProviderEmail string `json:"provider_email"`

	// UserID is the reviewer's id.
	UserID string `json:"user_id"`

	// Email is the reviewer's email.
	Email string `json:"email"`

	// Rating is the star rating in [1,5].
	Rating int `json:"rating"`

	// Content is the review body.
	Content string `json:"content"`

	// Tags is the deduplicated tag list.
	Tags []string `json:"tags"`
}
