package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ProviderGateway = (*Client)(nil)

// providersEnvelope is the standard list response shape.
type providersEnvelope struct {
	Success   bool                 `json:"success"`
	Providers []domain.RawProvider `json:"providers"`
	Message   string               `json:"message"`
}

// CategoryProviders fetches the raw provider list for a vertical.
func (c *Client) CategoryProviders(ctx context.Context, category domain.Category, identity domain.Identity) ([]domain.RawProvider, error) {
	query := identityQuery(identity)

	var envelope providersEnvelope
	path := fmt.Sprintf("/api/%sProviders", category)
	if err := c.get(ctx, path, query, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, envelopeError("list providers", envelope.Message)
	}
	return envelope.Providers, nil
}

// SearchProviders searches providers across categories.
func (c *Client) SearchProviders(ctx context.Context, q string, identity domain.Identity, state string) ([]domain.RawProvider, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("user_id", identity.UserID)
	query.Set("email", identity.Email)
	if state != "" {
		query.Set("state", state)
	}

	var envelope providersEnvelope
	if err := c.get(ctx, "/api/providers/search", query, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, envelopeError("search providers", envelope.Message)
	}
	return envelope.Providers, nil
}

// ToggleLike flips the viewer's like and returns the authoritative state.
func (c *Client) ToggleLike(ctx context.Context, providerID string, identity domain.Identity) (domain.LikeResult, error) {
	body := struct {
		UserID    string `json:"userId"`
		UserEmail string `json:"userEmail"`
	}{
		UserID:    identity.UserID,
		UserEmail: identity.Email,
	}

	var result domain.LikeResult
	path := fmt.Sprintf("/api/providers/%s/like", url.PathEscape(providerID))
	if err := c.post(ctx, path, body, &result); err != nil {
		return domain.LikeResult{}, err
	}
	return result, nil
}

// SubmitReview posts a review; only ok/not-ok matters in the response.
func (c *Client) SubmitReview(ctx context.Context, review domain.ReviewRequest) error {
	return c.post(ctx, "/api/reviews", review, nil)
}

// BatchComments fetches comments for a set of providers in one call.
func (c *Client) BatchComments(ctx context.Context, serviceIDs []string) (map[string][]domain.Comment, error) {
	body := struct {
		ServiceIDs []string `json:"service_ids"`
	}{ServiceIDs: serviceIDs}

	var envelope struct {
		Success  bool                        `json:"success"`
		Comments map[string][]domain.Comment `json:"comments"`
		Message  string                      `json:"message"`
	}
	if err := c.post(ctx, "/api/comments/batch", body, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, envelopeError("batch comments", envelope.Message)
	}
	if envelope.Comments == nil {
		envelope.Comments = map[string][]domain.Comment{}
	}
	return envelope.Comments, nil
}

// identityQuery builds the standard viewer-scoping query parameters.
func identityQuery(identity domain.Identity) url.Values {
	query := url.Values{}
	query.Set("user_id", identity.UserID)
	query.Set("email", identity.Email)
	query.Set("firstName", identity.FirstName)
	query.Set("lastName", identity.LastName)
	return query
}

// envelopeError wraps a success=false envelope as a remote failure.
func envelopeError(op, message string) error {
	if message == "" {
		message = "request rejected"
	}
	return fmt.Errorf("%s: %s: %w", op, message, domain.ErrRemote)
}
