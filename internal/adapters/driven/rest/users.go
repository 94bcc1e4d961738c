package rest

import (
	"context"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.UserGateway = (*Client)(nil)

// CompleteOnboarding finalises the onboarding flow.
func (c *Client) CompleteOnboarding(ctx context.Context, req domain.OnboardingRequest) error {
	return c.post(ctx, "/api/users/onboarding", req, nil)
}

// CheckUsername reports whether a candidate handle is available.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	body := struct {
		Username string `json:"username"`
	}{Username: username}

	var result struct {
		Available bool `json:"available"`
	}
	if err := c.post(ctx, "/api/users/check-username", body, &result); err != nil {
		return false, err
	}
	return result.Available, nil
}
