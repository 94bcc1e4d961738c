package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

var (
	onboardName      string
	onboardPhone     string
	onboardCity      string
	onboardState     string
	onboardInterests string
	onboardConnect   int
	onboardInvite    bool
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Complete your profile non-interactively",
	Long: `Completes the onboarding flow in one shot: validates your
answers, generates an available username, and submits the profile.
For the step-by-step wizard run 'trustcircle tui' and pick Get
Started.

With --connect N, connection requests are sent to the top N most
active recommenders in your state. Invited signups (--invite) skip
the recommender step: the inviter's circle is already theirs.`,
	RunE: runOnboard,
}

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "preferred display name (required)")
	onboardCmd.Flags().StringVar(&onboardPhone, "phone", "", "10-digit phone number (required)")
	onboardCmd.Flags().StringVar(&onboardCity, "city", "", "home city (required)")
	onboardCmd.Flags().StringVar(&onboardState, "state", "", "home state (required)")
	onboardCmd.Flags().StringVar(&onboardInterests, "interests", "", "comma-separated categories (required)")
	onboardCmd.Flags().IntVar(&onboardConnect, "connect", 0, "also connect with the top N recommenders in your state")
	onboardCmd.Flags().BoolVar(&onboardInvite, "invite", false, "signing up from an invite; skips the recommender step")
	_ = onboardCmd.MarkFlagRequired("name")
	_ = onboardCmd.MarkFlagRequired("phone")
	_ = onboardCmd.MarkFlagRequired("city")
	_ = onboardCmd.MarkFlagRequired("state")
	_ = onboardCmd.MarkFlagRequired("interests")
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	if onboardingService == nil {
		return errors.New("onboarding service not configured")
	}

	interests := make([]domain.Category, 0, 4)
	for _, piece := range strings.Split(onboardInterests, ",") {
		category, ok := parseCategory(piece)
		if !ok {
			return fmt.Errorf("unknown category %q (one of: %s)", strings.TrimSpace(piece), categorySlugs())
		}
		interests = append(interests, category)
	}

	form := domain.OnboardingForm{
		PreferredName: onboardName,
		PhoneNumber:   onboardPhone,
		City:          onboardCity,
		State:         onboardState,
		Interests:     interests,
	}

	// Run the same validators the wizard applies per step.
	wizard := domain.NewWizard()
	*wizard.Form() = form
	for !wizard.Done() {
		if !wizard.Next() {
			return errors.New(wizard.Err())
		}
	}

	username, err := onboardingService.GenerateUsername(cmd.Context(), form.PreferredName)
	if err != nil {
		return fmt.Errorf("generating username: %w", err)
	}

	if err := onboardingService.Complete(cmd.Context(), form, username); err != nil {
		return fmt.Errorf("completing onboarding: %w", err)
	}

	cmd.Printf("Welcome to Trust Circle, @%s!\n", username)

	if onboardInvite || onboardConnect <= 0 {
		return nil
	}

	suggestions, err := onboardingService.TopRecommenders(cmd.Context(), form.State)
	if err != nil {
		// Connection building is best-effort; onboarding already
		// succeeded.
		cmd.Printf("Could not fetch recommenders: %v\n", err)
		return nil
	}
	if len(suggestions) > onboardConnect {
		suggestions = suggestions[:onboardConnect]
	}

	ids := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		ids = append(ids, s.UserID)
	}
	sent := onboardingService.SendConnectionRequests(cmd.Context(), ids)
	cmd.Printf("Connection requests sent: %d\n", sent)
	return nil
}
