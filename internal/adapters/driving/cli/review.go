package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

var (
	reviewCategory string
	reviewRating   int
	reviewContent  string
	reviewTags     string
)

var reviewCmd = &cobra.Command{
	Use:   "review [provider-id]",
	Short: "Submit a review for a provider",
	Long: `Posts a review with a 1-5 star rating, free-text content, and
optional comma-separated tags. The provider id comes from 'browse' or
'search' output.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewCategory, "category", "c", "", "the provider's category (required)")
	reviewCmd.Flags().IntVarP(&reviewRating, "rating", "r", 0, "star rating, 1-5 (required)")
	reviewCmd.Flags().StringVarP(&reviewContent, "comment", "m", "", "review text (required)")
	reviewCmd.Flags().StringVarP(&reviewTags, "tags", "t", "", "comma-separated tags")
	_ = reviewCmd.MarkFlagRequired("category")
	_ = reviewCmd.MarkFlagRequired("rating")
	_ = reviewCmd.MarkFlagRequired("comment")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	providerID := args[0]

	if catalogService == nil || reviewService == nil {
		return errors.New("services not configured")
	}

	category, ok := parseCategory(reviewCategory)
	if !ok {
		return fmt.Errorf("unknown category %q (one of: %s)", reviewCategory, categorySlugs())
	}

	if _, err := catalogService.LoadCategory(cmd.Context(), category); err != nil {
		return fmt.Errorf("loading %s: %w", category.Display(), err)
	}

	draft := domain.ReviewDraft{
		Rating:  reviewRating,
		Content: reviewContent,
		Tags:    domain.ParseTagInput(nil, reviewTags),
	}

	if err := reviewService.Submit(cmd.Context(), providerID, draft); err != nil {
		return fmt.Errorf("submitting review: %w", err)
	}

	cmd.Println("Review submitted.")
	return nil
}
