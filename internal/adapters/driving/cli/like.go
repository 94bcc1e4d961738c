package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var likeCategory string

var likeCmd = &cobra.Command{
	Use:   "like [provider-id]",
	Short: "Toggle a like on a provider",
	Long: `Flips your like on a provider. The provider id comes from
'browse' or 'search' output. The category is required so the page
collection can be loaded first.`,
	Args: cobra.ExactArgs(1),
	RunE: runLike,
}

func init() {
	likeCmd.Flags().StringVarP(&likeCategory, "category", "c", "", "the provider's category (required)")
	_ = likeCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(likeCmd)
}

func runLike(cmd *cobra.Command, args []string) error {
	providerID := args[0]

	if catalogService == nil || likeService == nil || collectionStore == nil {
		return errors.New("services not configured")
	}

	category, ok := parseCategory(likeCategory)
	if !ok {
		return fmt.Errorf("unknown category %q (one of: %s)", likeCategory, categorySlugs())
	}

	if _, err := catalogService.LoadCategory(cmd.Context(), category); err != nil {
		return fmt.Errorf("loading %s: %w", category.Display(), err)
	}

	if err := likeService.ToggleLike(cmd.Context(), providerID); err != nil {
		return fmt.Errorf("toggling like: %w", err)
	}

	p, err := collectionStore.Get(providerID)
	if err != nil {
		return fmt.Errorf("reading provider: %w", err)
	}

	if p.CurrentUserLiked {
		cmd.Printf("Liked %s (%d likes)\n", p.BusinessName, p.NumLikes)
	} else {
		cmd.Printf("Unliked %s (%d likes)\n", p.BusinessName, p.NumLikes)
	}
	return nil
}
