package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Trust Circle.

Browse categories, filter by city, like and review providers, and run
the onboarding wizard with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  l        - Like / unlike
  r        - Write a review
  c        - Connect with the recommender
  f        - Filter by city
  Esc      - Back / Cancel
  q        - Quit`,
	RunE: runTUI,
}

var tuiInvite bool

func init() {
	tuiCmd.Flags().BoolVar(&tuiInvite, "invite", false, "Join via an invite: onboarding skips the suggested-recommenders step")
	rootCmd.AddCommand(tuiCmd)
}

// watchConfig starts the config store's file watcher for the lifetime
// of a long-running session and returns the stop function. A store that
// cannot watch (or no store at all) is not fatal.
func watchConfig() func() {
	if configStore == nil {
		return func() {}
	}
	if err := configStore.Watch(); err != nil {
		return func() {}
	}
	return func() {
		_ = configStore.Close() //nolint:errcheck // best-effort cleanup
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery with a stack trace; a raw panic inside bubbletea
	// leaves the terminal in a bad state.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Pick up config edits made while the TUI is running.
	stopWatch := watchConfig()
	defer stopWatch()

	ports := tui.NewPorts(catalogService, likeService, reviewService, onboardingService, collectionStore)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	app.WithInvite(tuiInvite)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
