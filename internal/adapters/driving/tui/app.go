package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/messages"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/styles"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/views/category"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/views/menu"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/views/onboarding"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/views/search"
	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// categoryView is the parameterized category browse view.
	categoryView *category.View

	// searchView is the free-text search view.
	searchView *search.View

	// onboardingView is the onboarding wizard view.
	onboardingView *onboarding.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	categoryView := category.NewView(s, nil, ports.Catalog, ports.Likes, ports.Reviews, ports.Store).
		WithConnections(ports.Onboarding)
	searchView := search.NewView(s, nil, ports.Catalog)
	onboardingView := onboarding.NewView(s, ports.Onboarding)

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menuView,
		categoryView:   categoryView,
		searchView:     searchView,
		onboardingView: onboardingView,
		currentView:    messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.categoryView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.onboardingView.WithContext(ctx)
	return a
}

// WithInvite marks the session as an invited signup, which gives the
// onboarding wizard its minimal completion screen.
func (a *App) WithInvite(invite bool) *App {
	a.onboardingView.WithInvite(invite)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("trustcircle - Trusted Recommendations"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.categoryView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.onboardingView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewCategory:
			a.categoryView, cmd = a.categoryView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewOnboarding:
			a.onboardingView, cmd = a.onboardingView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.CategorySelected:
		a.currentView = messages.ViewCategory
		a.categoryView.SetCategory(msg.Category)
		return a, a.categoryView.Init()

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewOnboarding:
			a.onboardingView.Reset()
			return a, a.onboardingView.Init()
		case messages.ViewMenu, messages.ViewHelp, messages.ViewCategory:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ProvidersLoaded, messages.CommentsLoaded,
		messages.LikeSettled, messages.ReviewSubmitted:
		a.categoryView, cmd = a.categoryView.Update(msg)
		return a, cmd

	case messages.UsernameGenerated, messages.OnboardingCompleted,
		messages.SuggestionsLoaded:
		a.onboardingView, cmd = a.onboardingView.Update(msg)
		return a, cmd

	case messages.ConnectionsSent:
		// Both the onboarding connect step and category cards send
		// connection requests; deliver to whichever is on screen.
		if a.currentView == messages.ViewCategory {
			a.categoryView, cmd = a.categoryView.Update(msg)
			return a, cmd
		}
		a.onboardingView, cmd = a.onboardingView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewCategory:
			a.categoryView, cmd = a.categoryView.Update(msg)
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewOnboarding:
			a.onboardingView, cmd = a.onboardingView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
			// Menu and help don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCategory:
		a.categoryView, cmd = a.categoryView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewOnboarding:
		a.onboardingView, cmd = a.onboardingView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewCategory:
		return a.categoryView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewOnboarding:
		return a.onboardingView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Browsing a category:
  j/k, ↑/↓    Navigate recommendations
  l           Like / unlike
  r           Write a review
  f           Filter by city
  g           Refresh
  esc         Back to Menu

Search:
  (type)      Enter a query
  enter       Submit search
  n           New search
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// ActiveCategory returns the category the browse view is showing.
func (a *App) ActiveCategory() domain.Category {
	return a.categoryView.Category()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.categoryView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.onboardingView.SetDimensions(width, height)
}
