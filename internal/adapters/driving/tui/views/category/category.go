// Package category provides the category browse view for the TUI. Every
// vertical renders through this one view, parameterized by the active
// category.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/components/list"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/components/status"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/keymap"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/messages"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/styles"
	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driven"
	"github.com/trustcircle/trustcircle-cli/internal/core/ports/driving"
)

// Mode tracks which overlay, if any, is active.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFilter
	ModeReview
)

// reviewForm holds the review modal's inputs.
type reviewForm struct {
	providerID string
	rating     int
	content    textinput.Model
	tags       textinput.Model
	focus      int // 0 = content, 1 = tags
}

// View is the category browse view: a filtered, sorted recommendation
// list with like, review, and city filter actions.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.ProviderList
	statusbar *status.Bar

	catalog     driving.CatalogService
	likes       driving.LikeService
	reviews     driving.ReviewService
	connections driving.OnboardingService
	store       driven.CollectionStore
	ctx         context.Context

	category       domain.Category
	facets         []domain.CityFacet
	selectedCities map[string]bool
	facetIndex     int

	mode    Mode
	review  reviewForm
	loading bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new category view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	likes driving.LikeService,
	reviews driving.ReviewService,
	store driven.CollectionStore,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	content := textinput.New()
	content.Placeholder = "What was your experience?"
	content.CharLimit = 512

	tags := textinput.New()
	tags.Placeholder = "Tags, comma separated"
	tags.CharLimit = 256

	return &View{
		styles:         s,
		keymap:         km,
		list:           list.NewProviderList(s),
		statusbar:      status.NewBar(s, km),
		catalog:        catalog,
		likes:          likes,
		reviews:        reviews,
		store:          store,
		ctx:            context.Background(),
		selectedCities: make(map[string]bool),
		review:         reviewForm{content: content, tags: tags},
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithConnections enables the connect-to-recommender action on cards.
func (v *View) WithConnections(svc driving.OnboardingService) *View {
	v.connections = svc
	return v
}

// SetCategory switches the view to a vertical and resets the filter.
func (v *View) SetCategory(c domain.Category) {
	v.category = c
	v.selectedCities = make(map[string]bool)
	v.facetIndex = 0
	v.mode = ModeBrowse
	v.err = nil
}

// Category returns the active vertical.
func (v *View) Category() domain.Category {
	return v.category
}

// Init initialises the view and loads the category's providers.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.statusbar.SetState(status.StateLoading)
	return v.loadProviders()
}

// loadProviders returns a command that fetches the active category.
func (v *View) loadProviders() tea.Cmd {
	category := v.category
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.ProvidersLoaded{Category: category, Err: fmt.Errorf("catalog service not available")}
		}
		providers, err := v.catalog.LoadCategory(v.ctx, category)
		return messages.ProvidersLoaded{Category: category, Providers: providers, Err: err}
	}
}

// loadComments returns a command that batch-fetches comments for the
// loaded providers.
func (v *View) loadComments(providers []domain.Provider) tea.Cmd {
	if v.catalog == nil || len(providers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(providers))
	for i := range providers {
		ids = append(ids, providers[i].ID)
	}
	return func() tea.Msg {
		comments, err := v.catalog.CommentsFor(v.ctx, ids)
		return messages.CommentsLoaded{Comments: comments, Err: err}
	}
}

// Update handles messages for the category view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProvidersLoaded:
		if msg.Category != v.category {
			// Stale load from a previous category.
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			v.refreshVisible()
			return v, nil
		}
		v.err = nil
		v.refreshVisible()
		return v, v.loadComments(msg.Providers)

	case messages.CommentsLoaded:
		if msg.Err == nil {
			v.list.SetComments(msg.Comments)
		}
		return v, nil

	case messages.LikeSettled:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StateBrowsing)
			v.statusbar.SetMessage("")
		}
		v.refreshVisible()
		return v, nil

	case messages.ReviewSubmitted:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.mode = ModeBrowse
		v.resetReviewForm()
		v.statusbar.SetState(status.StateBrowsing)
		v.statusbar.SetMessage("")
		// Show the merged tags immediately, then reload the page so the
		// server-computed average_rating and total_reviews come back.
		v.refreshVisible()
		return v, v.loadProviders()

	case messages.CityFilterChanged:
		// The list behind the overlay tracks facet toggles live.
		v.refreshVisible()
		return v, nil

	case messages.ConnectionsSent:
		switch {
		case msg.Err != nil:
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		case msg.Sent == 0:
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("Connection request failed")
		default:
			v.statusbar.SetState(status.StateBrowsing)
			v.statusbar.SetMessage("Connection request sent")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// refreshVisible recomputes facets and the filtered, sorted list from
// the current collection.
func (v *View) refreshVisible() {
	if v.store == nil || v.catalog == nil {
		return
	}
	all := v.store.All()
	v.facets = v.catalog.CityFacets(all)
	visible := v.catalog.VisibleList(all, v.citiesSlice())
	selected := v.list.Selected()
	v.list.SetProviders(visible)
	v.list.SetSelected(selected)
	if v.err == nil {
		v.statusbar.SetState(status.StateBrowsing)
		v.statusbar.SetProviderCount(len(visible))
	}
}

// citiesSlice returns the active city filter as a slice, nil when no
// filter is applied.
func (v *View) citiesSlice() []string {
	if len(v.selectedCities) == 0 {
		return nil
	}
	cities := make([]string, 0, len(v.selectedCities))
	for _, f := range v.facets {
		if v.selectedCities[f.City] {
			cities = append(cities, f.City)
		}
	}
	return cities
}

// handleKeyMsg dispatches keys by mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case ModeFilter:
		return v.handleFilterKey(msg)
	case ModeReview:
		return v.handleReviewKey(msg)
	case ModeBrowse:
	}

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(keyStr, v.keymap.Like):
		return v, v.toggleLike()
	case keymap.Matches(keyStr, v.keymap.Review):
		v.openReviewModal()
		return v, v.review.content.Focus()
	case keymap.Matches(keyStr, v.keymap.Connect):
		return v, v.connectRecommender()
	case keymap.Matches(keyStr, v.keymap.Filter):
		if len(v.facets) > 0 {
			v.mode = ModeFilter
			v.facetIndex = 0
		}
	case keymap.Matches(keyStr, v.keymap.Refresh):
		v.loading = true
		v.err = nil
		v.statusbar.SetState(status.StateLoading)
		return v, v.loadProviders()
	}

	return v, nil
}

// toggleLike flips the selected provider's like optimistically. The
// service mutates the store before the network call returns, so the
// list refreshes immediately and again when the call settles.
func (v *View) toggleLike() tea.Cmd {
	target := v.list.SelectedProvider()
	if target == nil || v.likes == nil {
		return nil
	}
	id := target.ID
	v.statusbar.SetState(status.StateSaving)
	v.statusbar.SetMessage("Saving like...")
	return func() tea.Msg {
		err := v.likes.ToggleLike(v.ctx, id)
		return messages.LikeSettled{ProviderID: id, Err: err}
	}
}

// connectRecommender sends a connection request to the selected card's
// recommender. Providers surfaced by search or bulk import may carry no
// recommender id, in which case there is nobody to connect to.
func (v *View) connectRecommender() tea.Cmd {
	target := v.list.SelectedProvider()
	if target == nil || target.RecommenderUserID == "" || v.connections == nil {
		return nil
	}
	id := target.RecommenderUserID
	v.statusbar.SetState(status.StateSaving)
	v.statusbar.SetMessage("Sending connection request...")
	return func() tea.Msg {
		sent := v.connections.SendConnectionRequests(v.ctx, []string{id})
		return messages.ConnectionsSent{Sent: sent}
	}
}

// openReviewModal opens the review form for the selected provider.
func (v *View) openReviewModal() {
	target := v.list.SelectedProvider()
	if target == nil {
		return
	}
	v.resetReviewForm()
	v.review.providerID = target.ID
	v.mode = ModeReview
}

func (v *View) resetReviewForm() {
	v.review.providerID = ""
	v.review.rating = 0
	v.review.content.SetValue("")
	v.review.tags.SetValue("")
	v.review.content.Blur()
	v.review.tags.Blur()
	v.review.focus = 0
}

// handleReviewKey processes keys while the review modal is open.
func (v *View) handleReviewKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = ModeBrowse
		v.resetReviewForm()
		return v, nil
	case "1", "2", "3", "4", "5":
		v.review.rating = int(msg.String()[0] - '0')
		return v, nil
	case "tab", "shift+tab":
		if v.review.focus == 0 {
			v.review.focus = 1
			v.review.content.Blur()
			return v, v.review.tags.Focus()
		}
		v.review.focus = 0
		v.review.tags.Blur()
		return v, v.review.content.Focus()
	case "enter":
		return v, v.submitReview()
	}

	var cmd tea.Cmd
	if v.review.focus == 0 {
		v.review.content, cmd = v.review.content.Update(msg)
	} else {
		v.review.tags, cmd = v.review.tags.Update(msg)
	}
	return v, cmd
}

// submitReview validates and posts the review draft.
func (v *View) submitReview() tea.Cmd {
	if v.reviews == nil || v.review.providerID == "" {
		return nil
	}
	id := v.review.providerID
	draft := domain.ReviewDraft{
		Rating:  v.review.rating,
		Content: strings.TrimSpace(v.review.content.Value()),
		Tags:    domain.ParseTagInput(nil, v.review.tags.Value()),
	}
	v.statusbar.SetState(status.StateSaving)
	v.statusbar.SetMessage("Submitting review...")
	return func() tea.Msg {
		err := v.reviews.Submit(v.ctx, id, draft)
		return messages.ReviewSubmitted{ProviderID: id, Err: err}
	}
}

// handleFilterKey processes keys while the city filter overlay is open.
func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "f":
		v.mode = ModeBrowse
		v.refreshVisible()
		return v, nil
	case "up", "k":
		if v.facetIndex > 0 {
			v.facetIndex--
		}
	case "down", "j":
		if v.facetIndex < len(v.facets)-1 {
			v.facetIndex++
		}
	case " ":
		if v.facetIndex < len(v.facets) {
			city := v.facets[v.facetIndex].City
			if v.selectedCities[city] {
				delete(v.selectedCities, city)
			} else {
				v.selectedCities[city] = true
			}
			return v, func() tea.Msg {
				return messages.CityFilterChanged{City: city}
			}
		}
	case "c":
		v.selectedCities = make(map[string]bool)
		// An empty city means the whole filter was cleared.
		return v, func() tea.Msg {
			return messages.CityFilterChanged{}
		}
	}
	return v, nil
}

// View renders the category view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render(v.category.Display())
	if len(v.selectedCities) > 0 {
		header += "  " + v.styles.Muted.Render(fmt.Sprintf("(filtered: %s)", strings.Join(v.citiesSlice(), ", ")))
	}
	sections = append(sections, header, "")

	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading recommendations..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
		sections = append(sections, "")
		sections = append(sections, v.styles.Help.Render("[g] retry  [esc] back"))
	case v.list.IsEmpty():
		sections = append(sections, v.styles.Muted.Render("No recommendations yet. Ask your circle to share one."))
	default:
		sections = append(sections, v.list.View())
	}

	if v.mode == ModeFilter {
		sections = append(sections, "", v.renderFilterOverlay())
	}
	if v.mode == ModeReview {
		sections = append(sections, "", v.renderReviewModal())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFilterOverlay renders the city facet picker.
func (v *View) renderFilterOverlay() string {
	lines := make([]string, 0, len(v.facets)+2)
	lines = append(lines, v.styles.Subtitle.Render("Filter by city"), "")

	for i, f := range v.facets {
		indicator := "  "
		if i == v.facetIndex {
			indicator = "> "
		}
		check := "[ ]"
		if v.selectedCities[f.City] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s (%d)", indicator, check, f.City, f.Count)
		if i == v.facetIndex {
			lines = append(lines, v.styles.Selected.Render(line))
		} else {
			lines = append(lines, v.styles.Normal.Render(line))
		}
	}

	lines = append(lines, "", v.styles.Help.Render("[space] toggle  [c] clear  [enter] apply  [esc] close"))
	return v.styles.Card.Render(strings.Join(lines, "\n"))
}

// renderReviewModal renders the review form.
func (v *View) renderReviewModal() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Write a review"))
	b.WriteString("\n\n")

	stars := ""
	for i := 1; i <= 5; i++ {
		if i <= v.review.rating {
			stars += "*"
		} else {
			stars += "."
		}
	}
	b.WriteString(v.styles.Normal.Render("Rating: "))
	b.WriteString(v.styles.Rating.Render(stars))
	b.WriteString(v.styles.Muted.Render("  (press 1-5)"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Review:"))
	b.WriteString("\n")
	b.WriteString(v.review.content.View())
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Tags:"))
	b.WriteString("\n")
	b.WriteString(v.review.tags.View())
	b.WriteString("\n\n")

	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] submit  [esc] cancel"))

	return v.styles.Card.Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// CurrentMode returns the active overlay mode.
func (v *View) CurrentMode() Mode {
	return v.mode
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// Facets returns the derived city facets.
func (v *View) Facets() []domain.CityFacet {
	return v.facets
}

// Visible returns the providers currently shown.
func (v *View) Visible() []domain.Provider {
	return v.list.Providers()
}

// SelectedProvider returns the highlighted provider, or nil.
func (v *View) SelectedProvider() *domain.Provider {
	return v.list.SelectedProvider()
}
