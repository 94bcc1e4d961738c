// Package onboarding provides the profile onboarding wizard view for
// the TUI: four validated steps, username generation, and the
// post-signup connect step.
package onboarding

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/messages"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/styles"
	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
)

// Phase tracks the wizard's macro state beyond the form steps.
type Phase int

const (
	PhaseForm Phase = iota
	PhaseSubmitting
	PhaseConnect
	PhaseDone
)

// Key constants.
const (
	keyEnter = "enter"
	keyDown  = "down"
)

// View is the onboarding wizard view.
type View struct {
	styles     *styles.Styles
	onboarding driving.OnboardingService
	ctx        context.Context

	wizard *domain.Wizard
	phase  Phase
	invite bool

	// Form inputs per step
	nameInput  textinput.Model
	phoneInput textinput.Model
	cityInput  textinput.Model
	stateInput textinput.Model
	locFocus   int // 0 = city, 1 = state

	// Interests step
	categories       []domain.Category
	interestIndex    int
	pickedCategories map[domain.Category]bool

	// Result state
	username string

	// Connect step
	suggestions     []domain.RecommenderSuggestion
	suggestionIndex int
	picked          map[string]bool
	sent            int
	connectionsSent bool

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new onboarding wizard view.
func NewView(s *styles.Styles, onboarding driving.OnboardingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Your name"
	nameInput.CharLimit = 64

	phoneInput := textinput.New()
	phoneInput.Placeholder = "(555) 123-4567"
	phoneInput.CharLimit = 20

	cityInput := textinput.New()
	cityInput.Placeholder = "City"
	cityInput.CharLimit = 64

	stateInput := textinput.New()
	stateInput.Placeholder = "State (e.g. WA or Washington)"
	stateInput.CharLimit = 32

	return &View{
		styles:           s,
		onboarding:       onboarding,
		ctx:              context.Background(),
		wizard:           domain.NewWizard(),
		nameInput:        nameInput,
		phoneInput:       phoneInput,
		cityInput:        cityInput,
		stateInput:       stateInput,
		categories:       domain.Categories(),
		pickedCategories: make(map[domain.Category]bool),
		picked:           make(map[string]bool),
		width:            80,
		height:           24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithInvite marks the session as an invited signup. Invited users land
// on the plain completion screen; only organic signups get the connect
// step with suggested recommenders.
func (v *View) WithInvite(invite bool) *View {
	v.invite = invite
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.nameInput.Focus()
}

// Update handles messages for the onboarding view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.UsernameGenerated:
		if msg.Err != nil {
			v.err = msg.Err
			v.phase = PhaseForm
			return v, nil
		}
		v.username = msg.Username
		return v, v.complete()

	case messages.OnboardingCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.phase = PhaseForm
			return v, nil
		}
		v.err = nil
		if v.invite {
			// Invited signups joined through someone's circle already;
			// no suggestion fetch, straight to the completion screen.
			v.phase = PhaseDone
			return v, nil
		}
		v.phase = PhaseConnect
		return v, v.loadSuggestions()

	case messages.SuggestionsLoaded:
		// Suggestion failures never block completion; the connect step
		// just renders empty.
		if msg.Err == nil {
			v.suggestions = msg.Suggestions
		}
		return v, nil

	case messages.ConnectionsSent:
		v.sent = msg.Sent
		v.connectionsSent = true
		v.phase = PhaseDone
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg dispatches keys by phase.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.phase {
	case PhaseForm:
		return v.handleFormKey(msg)
	case PhaseSubmitting:
		// Waiting on the server, no key handling
		return v, nil
	case PhaseConnect:
		return v.handleConnectKey(msg)
	case PhaseDone:
		if msg.String() == keyEnter || msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}
	return v, nil
}

// handleFormKey handles keys during the four form steps.
func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if v.wizard.Current() == domain.StepName {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.wizard.Back()
		return v, v.focusStep()
	}

	if msg.String() == keyEnter {
		v.syncForm()
		if !v.wizard.Next() {
			return v, nil
		}
		if v.wizard.Done() {
			v.phase = PhaseSubmitting
			v.err = nil
			return v, v.generateUsername()
		}
		return v, v.focusStep()
	}

	switch v.wizard.Current() {
	case domain.StepName:
		var cmd tea.Cmd
		v.nameInput, cmd = v.nameInput.Update(msg)
		return v, cmd

	case domain.StepPhone:
		var cmd tea.Cmd
		v.phoneInput, cmd = v.phoneInput.Update(msg)
		return v, cmd

	case domain.StepLocation:
		switch msg.String() {
		case "tab", "shift+tab":
			if v.locFocus == 0 {
				v.locFocus = 1
				v.cityInput.Blur()
				return v, v.stateInput.Focus()
			}
			v.locFocus = 0
			v.stateInput.Blur()
			return v, v.cityInput.Focus()
		}
		var cmd tea.Cmd
		if v.locFocus == 0 {
			v.cityInput, cmd = v.cityInput.Update(msg)
		} else {
			v.stateInput, cmd = v.stateInput.Update(msg)
		}
		return v, cmd

	case domain.StepInterests:
		switch msg.String() {
		case "up", "k":
			if v.interestIndex > 0 {
				v.interestIndex--
			}
		case keyDown, "j":
			if v.interestIndex < len(v.categories)-1 {
				v.interestIndex++
			}
		case " ":
			c := v.categories[v.interestIndex]
			if v.pickedCategories[c] {
				delete(v.pickedCategories, c)
			} else {
				v.pickedCategories[c] = true
			}
			v.syncForm()
		}
		return v, nil
	}

	return v, nil
}

// handleConnectKey handles keys on the success/connect screen.
func (v *View) handleConnectKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		v.phase = PhaseDone
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.suggestionIndex > 0 {
			v.suggestionIndex--
		}
	case keyDown, "j":
		if v.suggestionIndex < len(v.suggestions)-1 {
			v.suggestionIndex++
		}
	case " ":
		if v.suggestionIndex < len(v.suggestions) {
			id := v.suggestions[v.suggestionIndex].UserID
			if v.picked[id] {
				delete(v.picked, id)
			} else {
				v.picked[id] = true
			}
		}
	case "c", keyEnter:
		if len(v.picked) == 0 {
			v.phase = PhaseDone
			return v, nil
		}
		return v, v.sendConnections()
	case "s":
		// Skip connecting
		v.phase = PhaseDone
	}

	return v, nil
}

// syncForm copies the inputs into the wizard's answer struct.
func (v *View) syncForm() {
	form := v.wizard.Form()
	form.PreferredName = strings.TrimSpace(v.nameInput.Value())
	form.PhoneNumber = v.phoneInput.Value()
	form.City = strings.TrimSpace(v.cityInput.Value())
	form.State = strings.TrimSpace(v.stateInput.Value())

	interests := make([]domain.Category, 0, len(v.pickedCategories))
	for _, c := range v.categories {
		if v.pickedCategories[c] {
			interests = append(interests, c)
		}
	}
	form.Interests = interests
}

// focusStep focuses the input belonging to the current step.
func (v *View) focusStep() tea.Cmd {
	v.nameInput.Blur()
	v.phoneInput.Blur()
	v.cityInput.Blur()
	v.stateInput.Blur()

	switch v.wizard.Current() {
	case domain.StepName:
		return v.nameInput.Focus()
	case domain.StepPhone:
		return v.phoneInput.Focus()
	case domain.StepLocation:
		v.locFocus = 0
		return v.cityInput.Focus()
	}
	return nil
}

// generateUsername returns a command that generates an available handle.
func (v *View) generateUsername() tea.Cmd {
	name := v.wizard.Form().PreferredName
	return func() tea.Msg {
		if v.onboarding == nil {
			return messages.UsernameGenerated{Err: fmt.Errorf("onboarding service not available")}
		}
		username, err := v.onboarding.GenerateUsername(v.ctx, name)
		return messages.UsernameGenerated{Username: username, Err: err}
	}
}

// complete returns a command that submits the finished form.
func (v *View) complete() tea.Cmd {
	form := *v.wizard.Form()
	username := v.username
	return func() tea.Msg {
		if err := v.onboarding.Complete(v.ctx, form, username); err != nil {
			return messages.OnboardingCompleted{Err: err}
		}
		return messages.OnboardingCompleted{}
	}
}

// loadSuggestions returns a command that fetches top recommenders for
// the user's state.
func (v *View) loadSuggestions() tea.Cmd {
	state := v.wizard.Form().State
	return func() tea.Msg {
		suggestions, err := v.onboarding.TopRecommenders(v.ctx, state)
		return messages.SuggestionsLoaded{Suggestions: suggestions, Err: err}
	}
}

// sendConnections returns a command that fires connection requests to
// the picked suggestions.
func (v *View) sendConnections() tea.Cmd {
	ids := make([]string, 0, len(v.picked))
	for _, s := range v.suggestions {
		if v.picked[s.UserID] {
			ids = append(ids, s.UserID)
		}
	}
	return func() tea.Msg {
		sent := v.onboarding.SendConnectionRequests(v.ctx, ids)
		return messages.ConnectionsSent{Sent: sent}
	}
}

// View renders the onboarding wizard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Join Trust Circle"))
	b.WriteString("\n\n")
	b.WriteString(v.renderProgress())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	} else if reason := v.wizard.Err(); reason != "" && v.phase == PhaseForm {
		b.WriteString(v.styles.Warning.Render(reason))
		b.WriteString("\n\n")
	}

	switch v.phase {
	case PhaseForm:
		b.WriteString(v.renderStep())
	case PhaseSubmitting:
		b.WriteString(v.styles.Muted.Render("Creating your profile..."))
	case PhaseConnect:
		b.WriteString(v.renderConnect())
	case PhaseDone:
		b.WriteString(v.renderDone())
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderProgress renders the step tracker.
func (v *View) renderProgress() string {
	stepNames := []string{"Name", "Phone", "Location", "Interests"}
	current := v.wizard.Current()
	if v.phase != PhaseForm {
		current = domain.StepSuccess
	}

	progress := ""
	for i, name := range stepNames {
		step := i + 1
		if i > 0 {
			progress += " > "
		}
		switch {
		case step == current:
			progress += v.styles.Selected.Render(name)
		case v.wizard.Completed(step):
			progress += v.styles.Success.Render(name)
		default:
			progress += v.styles.Muted.Render(name)
		}
	}
	return progress
}

// renderStep renders the active form step.
func (v *View) renderStep() string {
	var b strings.Builder

	switch v.wizard.Current() {
	case domain.StepName:
		b.WriteString(v.styles.Subtitle.Render("What should your circle call you?"))
		b.WriteString("\n\n")
		b.WriteString(v.nameInput.View())

	case domain.StepPhone:
		b.WriteString(v.styles.Subtitle.Render("What's your phone number?"))
		b.WriteString("\n\n")
		b.WriteString(v.phoneInput.View())

	case domain.StepLocation:
		b.WriteString(v.styles.Subtitle.Render("Where are you located?"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Normal.Render("City:"))
		b.WriteString("\n")
		b.WriteString(v.cityInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Normal.Render("State:"))
		b.WriteString("\n")
		b.WriteString(v.stateInput.View())

	case domain.StepInterests:
		b.WriteString(v.styles.Subtitle.Render("Which services do you care about?"))
		b.WriteString("\n\n")
		for i, c := range v.categories {
			indicator := "  "
			if i == v.interestIndex {
				indicator = "> "
			}
			check := "[ ]"
			if v.pickedCategories[c] {
				check = "[x]"
			}
			line := fmt.Sprintf("%s%s %s", indicator, check, c.Display())
			if i == v.interestIndex {
				b.WriteString(v.styles.Selected.Render(line))
			} else {
				b.WriteString(v.styles.Normal.Render(line))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderConnect renders the post-signup connect screen.
func (v *View) renderConnect() string {
	var b strings.Builder

	b.WriteString(v.styles.Success.Render("Welcome, @" + v.username + "!"))
	b.WriteString("\n\n")

	if len(v.suggestions) == 0 {
		b.WriteString(v.styles.Muted.Render("Looking for active recommenders near you..."))
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render("Build your circle"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("These neighbors share the most recommendations in your state."))
	b.WriteString("\n\n")

	for i, s := range v.suggestions {
		indicator := "  "
		if i == v.suggestionIndex {
			indicator = "> "
		}
		check := "[ ]"
		if v.picked[s.UserID] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s (%d recommendations)", indicator, check, s.Name, s.RecommendationCount)
		if i == v.suggestionIndex {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderDone renders the terminal screen.
func (v *View) renderDone() string {
	var b strings.Builder

	b.WriteString(v.styles.Success.Render("You're all set!"))
	b.WriteString("\n\n")
	if v.username != "" {
		b.WriteString(v.styles.Normal.Render("Username: @" + v.username))
		b.WriteString("\n")
	}
	if v.sent > 0 {
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Connection requests sent: %d", v.sent)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderHelp renders the per-phase help footer.
func (v *View) renderHelp() string {
	switch v.phase {
	case PhaseForm:
		if v.wizard.Current() == domain.StepInterests {
			return v.styles.Help.Render("[space] toggle  [enter] finish  [esc] back")
		}
		return v.styles.Help.Render("[enter] continue  [esc] back")
	case PhaseConnect:
		return v.styles.Help.Render("[space] toggle  [c/enter] connect  [s] skip")
	case PhaseDone:
		return v.styles.Help.Render("[enter] back to menu")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset restores the wizard to its initial state.
func (v *View) Reset() {
	v.wizard = domain.NewWizard()
	v.phase = PhaseForm
	v.nameInput.SetValue("")
	v.phoneInput.SetValue("")
	v.cityInput.SetValue("")
	v.stateInput.SetValue("")
	v.locFocus = 0
	v.interestIndex = 0
	v.pickedCategories = make(map[domain.Category]bool)
	v.username = ""
	v.suggestions = nil
	v.suggestionIndex = 0
	v.picked = make(map[string]bool)
	v.sent = 0
	v.connectionsSent = false
	v.err = nil
}

// Wizard exposes the step machine for inspection.
func (v *View) Wizard() *domain.Wizard {
	return v.wizard
}

// CurrentPhase returns the wizard's macro phase.
func (v *View) CurrentPhase() Phase {
	return v.phase
}

// Username returns the generated handle, if any.
func (v *View) Username() string {
	return v.username
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
