package rest

import (
	"context"
	"net/url"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ConnectionGateway = (*Client)(nil)

// TopRecommenders fetches ranked contact suggestions for a state.
func (c *Client) TopRecommenders(ctx context.Context, state, userID string) ([]domain.RecommenderSuggestion, error) {
	query := url.Values{}
	query.Set("state", state)
	query.Set("userId", userID)

	var envelope struct {
		Success      bool                           `json:"success"`
		Recommenders []domain.RecommenderSuggestion `json:"recommenders"`
		Message      string                         `json:"message"`
	}
	if err := c.get(ctx, "/api/connections/top-recommenders", query, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, envelopeError("top recommenders", envelope.Message)
	}
	return envelope.Recommenders, nil
}

// SendConnectionRequest sends one follow request. The endpoint is the
// only one in the API that is not idempotent-safe to retry; duplicates
// are tolerated server-side.
func (c *Client) SendConnectionRequest(ctx context.Context, fromUserID, toUserID string) error {
	body := struct {
		FromUserID string `json:"fromUserId"`
		ToUserID   string `json:"toUserId"`
	}{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
	}
	return c.post(ctx, "/api/connections/send", body, nil)
}
