package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchState string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search recommendations across all categories",
	Long: `Searches providers recommended by your circle across every
vertical. Results are de-duplicated by provider. Scope to your home
state with --state.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchState, "state", "", "limit results to a state (code or full name)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	providers, err := catalogService.Search(cmd.Context(), query, searchState)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(providers, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal providers: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	heading := fmt.Sprintf("Results for %q", query)
	return outputProviderTable(cmd, heading, providers)
}
