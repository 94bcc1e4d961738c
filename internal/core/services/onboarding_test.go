package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

func newOnboarding(users *MockUserGateway, connections *MockConnectionGateway) *OnboardingService {
	svc := NewOnboardingService(users, connections, testIdentity)
	// Deterministic suffixes for tests.
	svc.randSuffix = func() int { return 417 }
	svc.now = func() time.Time { return time.UnixMilli(1700000000742) }
	return svc
}

func TestGenerateUsername_FirstCandidateAvailable(t *testing.T) {
	var checked string
	users := &MockUserGateway{
		CheckUsernameFunc: func(_ context.Context, username string) (bool, error) {
			checked = username
			return true, nil
		},
	}
	svc := newOnboarding(users, &MockConnectionGateway{})

	username, err := svc.GenerateUsername(context.Background(), "Sam Rivera")

	require.NoError(t, err)
	assert.Equal(t, "samrivera417", username)
	assert.Equal(t, "samrivera417", checked)
}

func TestGenerateUsername_SlugStripsAndTruncates(t *testing.T) {
	users := &MockUserGateway{}
	svc := newOnboarding(users, &MockConnectionGateway{})

	username, err := svc.GenerateUsername(context.Background(), "D'Angelo O'Brien-Smith III")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(username, "dangeloobriensm"), "got %q", username)
	assert.Len(t, username, 15+3)
}

func TestGenerateUsername_RetriesOnCollision(t *testing.T) {
	attempts := 0
	users := &MockUserGateway{
		CheckUsernameFunc: func(context.Context, string) (bool, error) {
			attempts++
			return attempts >= 3, nil
		},
	}
	svc := newOnboarding(users, &MockConnectionGateway{})

	username, err := svc.GenerateUsername(context.Background(), "Sam")

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "sam417", username)
}

func TestGenerateUsername_TimestampFallbackAfterExhaustion(t *testing.T) {
	attempts := 0
	users := &MockUserGateway{
		CheckUsernameFunc: func(context.Context, string) (bool, error) {
			attempts++
			return false, nil
		},
	}
	svc := newOnboarding(users, &MockConnectionGateway{})

	username, err := svc.GenerateUsername(context.Background(), "Sam")

	require.NoError(t, err)
	assert.Equal(t, 10, attempts, "bounded retry")
	assert.Equal(t, "sam742", username, "suffix derives from the clock, not another roll")
}

func TestGenerateUsername_CheckError(t *testing.T) {
	users := &MockUserGateway{
		CheckUsernameFunc: func(context.Context, string) (bool, error) {
			return false, errors.New("boom")
		},
	}
	svc := newOnboarding(users, &MockConnectionGateway{})

	_, err := svc.GenerateUsername(context.Background(), "Sam")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "check username")
}

func TestGenerateUsername_UnusableName(t *testing.T) {
	svc := newOnboarding(&MockUserGateway{}, &MockConnectionGateway{})

	_, err := svc.GenerateUsername(context.Background(), "!!! ---")

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComplete_BuildsRequest(t *testing.T) {
	var got domain.OnboardingRequest
	users := &MockUserGateway{
		CompleteOnboardingFunc: func(_ context.Context, req domain.OnboardingRequest) error {
			got = req
			return nil
		},
	}
	svc := newOnboarding(users, &MockConnectionGateway{})

	form := domain.OnboardingForm{
		PreferredName: "  Sam Rivera ",
		PhoneNumber:   "(206) 555-0142",
		City:          " Seattle ",
		State:         "washington",
		Interests:     []domain.Category{domain.CategoryCleaning, domain.CategoryRepair},
	}
	err := svc.Complete(context.Background(), form, "samrivera417")

	require.NoError(t, err)
	assert.Equal(t, testIdentity.UserID, got.UserID)
	assert.Equal(t, testIdentity.Email, got.Email)
	assert.Equal(t, "samrivera417", got.Username)
	assert.Equal(t, "Sam Rivera", got.PreferredName)
	assert.Equal(t, "2065550142", got.PhoneNumber)
	assert.Equal(t, "Seattle", got.Location)
	assert.Equal(t, "WA", got.State, "full names resolve to USPS codes")
	assert.Equal(t, []string{"cleaning", "repair"}, got.Interests)
}

func TestComplete_RequiresIdentity(t *testing.T) {
	svc := NewOnboardingService(&MockUserGateway{}, &MockConnectionGateway{}, domain.Identity{})

	err := svc.Complete(context.Background(), domain.OnboardingForm{}, "sam417")

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestComplete_RemoteError(t *testing.T) {
	users := &MockUserGateway{
		CompleteOnboardingFunc: func(context.Context, domain.OnboardingRequest) error {
			return errors.New("boom")
		},
	}
	svc := newOnboarding(users, &MockConnectionGateway{})

	err := svc.Complete(context.Background(), domain.OnboardingForm{}, "sam417")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "complete onboarding")
}

func TestTopRecommenders_ResolvesState(t *testing.T) {
	connections := &MockConnectionGateway{
		TopRecommendersFunc: func(_ context.Context, state, userID string) ([]domain.RecommenderSuggestion, error) {
			assert.Equal(t, "WA", state)
			assert.Equal(t, testIdentity.UserID, userID)
			return []domain.RecommenderSuggestion{
				{UserID: "u2", Name: "Dana", RecommendationCount: 12},
			}, nil
		},
	}
	svc := newOnboarding(&MockUserGateway{}, connections)

	suggestions, err := svc.TopRecommenders(context.Background(), "Washington")

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Dana", suggestions[0].Name)
}

func TestTopRecommenders_Error(t *testing.T) {
	connections := &MockConnectionGateway{
		TopRecommendersFunc: func(context.Context, string, string) ([]domain.RecommenderSuggestion, error) {
			return nil, errors.New("boom")
		},
	}
	svc := newOnboarding(&MockUserGateway{}, connections)

	_, err := svc.TopRecommenders(context.Background(), "WA")

	assert.Error(t, err)
}

func TestSendConnectionRequests_CountsSuccesses(t *testing.T) {
	var sent []string
	connections := &MockConnectionGateway{
		SendConnectionRequestFunc: func(_ context.Context, fromUserID, toUserID string) error {
			assert.Equal(t, testIdentity.UserID, fromUserID)
			if toUserID == "u3" {
				return errors.New("boom")
			}
			sent = append(sent, toUserID)
			return nil
		},
	}
	svc := newOnboarding(&MockUserGateway{}, connections)

	count := svc.SendConnectionRequests(context.Background(), []string{"u2", "u3", "u4"})

	// Partial failure never blocks the rest.
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"u2", "u4"}, sent)
}

func TestSendConnectionRequests_Empty(t *testing.T) {
	svc := newOnboarding(&MockUserGateway{}, &MockConnectionGateway{})
	assert.Zero(t, svc.SendConnectionRequests(context.Background(), nil))
}
