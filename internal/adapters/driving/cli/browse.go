package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

var (
	browseCities []string
	browseJSON   bool
)

var browseCmd = &cobra.Command{
	Use:   "browse [category]",
	Short: "Browse recommendations in a category",
	Long: `Lists providers recommended by your circle in one vertical,
most recent first. Filter to specific cities with --city (repeatable).

Categories: appliance, cleaning, auto, repair, outdoor, moving,
financial, utilities.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringArrayVar(&browseCities, "city", nil, "only show providers in this city (repeatable)")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	category, ok := parseCategory(args[0])
	if !ok {
		return fmt.Errorf("unknown category %q (one of: %s)", args[0], categorySlugs())
	}

	providers, err := catalogService.LoadCategory(cmd.Context(), category)
	if err != nil {
		return fmt.Errorf("loading %s: %w", category.Display(), err)
	}

	visible := catalogService.VisibleList(providers, browseCities)

	if browseJSON {
		data, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal providers: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputProviderTable(cmd, category.Display(), visible)
}

func outputProviderTable(cmd *cobra.Command, heading string, providers []domain.Provider) error {
	if len(providers) == 0 {
		cmd.Println("No recommendations yet. Ask your circle to share one.")
		return nil
	}

	// Keep lines inside the terminal when attached to one.
	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
		width = w
	}

	cmd.Printf("%s (%d)\n\n", heading, len(providers))
	for i := range providers {
		p := &providers[i]

		liked := " "
		if p.CurrentUserLiked {
			liked = "@"
		}
		line := fmt.Sprintf("  [%d] %s  * %.1f (%d)  %s %d", i+1, p.BusinessName, p.AverageRating, p.TotalReviews, liked, p.NumLikes)
		if len(line) > width {
			line = line[:width-3] + "..."
		}
		cmd.Println(line)

		city := p.City
		if city == "" {
			city = domain.NoCityFacet
		}
		meta := "      " + city
		if p.RecommenderName != "" {
			meta += " - via " + p.RecommenderName
		}
		if p.DateOfRecommendation != "" {
			meta += " - " + p.DateOfRecommendation
		}
		cmd.Println(meta)

		cmd.Printf("      id: %s\n", p.ID)
		cmd.Println()
	}

	return nil
}
