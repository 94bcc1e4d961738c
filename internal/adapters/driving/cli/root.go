// Package cli implements the command-line driving adapter. Commands
// talk to core services through the driving ports; wiring happens in
// main via the Set* functions.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
	"github.com/trustcircle/trustcircle-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	catalogService    driving.CatalogService
	likeService       driving.LikeService
	reviewService     driving.ReviewService
	onboardingService driving.OnboardingService
	collectionStore   driven.CollectionStore
	configStore       driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "trustcircle",
	Short: "Trusted recommendations from your circle",
	Long: `Trust Circle surfaces home service providers recommended by
people you actually know. Browse a category, search across all of
them, like and review providers, and build your circle.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Services bundles everything the commands need. Main constructs the
// real implementations and injects them here.
type Services struct {
	Catalog    driving.CatalogService
	Likes      driving.LikeService
	Reviews    driving.ReviewService
	Onboarding driving.OnboardingService
	Store      driven.CollectionStore
	Config     driven.ConfigStore
}

// SetServices injects the core services used by all commands.
func SetServices(s Services) {
	catalogService = s.Catalog
	likeService = s.Likes
	reviewService = s.Reviews
	onboardingService = s.Onboarding
	collectionStore = s.Store
	configStore = s.Config
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseCategory maps a user-supplied vertical name to a Category.
// It accepts the canonical slug ("repair") and the display name
// ("Home Repair"), case-insensitively.
func parseCategory(arg string) (domain.Category, bool) {
	c := domain.Category(strings.ToLower(strings.TrimSpace(arg)))
	if c.Valid() {
		return c, true
	}
	for _, known := range domain.Categories() {
		if strings.EqualFold(known.Display(), strings.TrimSpace(arg)) {
			return known, true
		}
	}
	return "", false
}

// categorySlugs returns the canonical slugs for help text.
func categorySlugs() string {
	slugs := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		slugs = append(slugs, string(c))
	}
	return strings.Join(slugs, ", ")
}
