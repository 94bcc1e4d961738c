// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/styles"
	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

// ProviderList displays recommendation cards in a navigable list.
type ProviderList struct {
	providers []domain.Provider
	comments  map[string][]domain.Comment
	selected  int
	styles    *styles.Styles
	width     int
	height    int
}

// NewProviderList creates a new provider list component.
func NewProviderList(s *styles.Styles) *ProviderList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProviderList{
		providers: nil,
		selected:  0,
		styles:    s,
		width:     80,
		height:    10,
	}
}

// Init initialises the provider list.
func (p *ProviderList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (p *ProviderList) Update(msg tea.Msg) (*ProviderList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			p.MoveUp()
		case tea.KeyDown:
			p.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			p.MoveUp()
		case "j":
			p.MoveDown()
		}
	}
	return p, nil
}

// View renders the provider list.
func (p *ProviderList) View() string {
	if len(p.providers) == 0 {
		return p.styles.Muted.Render("No recommendations yet")
	}

	lines := make([]string, 0, len(p.providers)*3+2)

	// Header
	header := p.styles.Subtitle.Render(fmt.Sprintf("Recommendations (%d)", len(p.providers)))
	lines = append(lines, header, "")

	// Each card takes 3 lines (name/rating, meta, tags/comment)
	visibleCount := (p.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if p.selected >= visibleCount {
		start = p.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(p.providers) {
		end = len(p.providers)
	}

	for i := start; i < end; i++ {
		line := p.renderProvider(i, &p.providers[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderProvider formats a single recommendation card.
func (p *ProviderList) renderProvider(index int, provider *domain.Provider) string {
	indicator := "  "
	if index == p.selected {
		indicator = "> "
	}

	name := provider.BusinessName
	if name == "" {
		name = "(Unnamed)"
	}

	maxNameLen := p.width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	rating := fmt.Sprintf("* %.1f (%d)", provider.AverageRating, provider.TotalReviews)
	likeMark := " "
	if provider.CurrentUserLiked {
		likeMark = "@"
	}
	likes := fmt.Sprintf("%s %d", likeMark, provider.NumLikes)

	var titleLine string
	if index == p.selected {
		titleLine = p.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s  %s", indicator, maxNameLen, name, rating, likes))
	} else {
		titleLine = p.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, name)) +
			p.styles.Rating.Render(rating) + "  " + p.styles.Liked.Render(likes)
	}

	// Meta line: city, recommender, date
	meta := make([]string, 0, 4)
	city := provider.City
	if city == "" {
		city = domain.NoCityFacet
	}
	meta = append(meta, city)
	if provider.RecommenderName != "" {
		meta = append(meta, "via "+provider.RecommenderName)
	}
	if provider.DateOfRecommendation != "" {
		meta = append(meta, provider.DateOfRecommendation)
	}
	// Contact info only on the selected card to keep rows compact.
	if index == p.selected && provider.PhoneNumber != "" {
		meta = append(meta, provider.PhoneNumber)
	}
	metaLine := p.styles.Muted.Render("    " + strings.Join(meta, " - "))

	// Detail line: tags, or the latest comment when no tags exist
	detail := ""
	if len(provider.Tags) > 0 {
		detail = p.styles.Tag.Render("    #" + strings.Join(provider.Tags, " #"))
	} else if cs := p.comments[provider.ID]; len(cs) > 0 {
		text := fmt.Sprintf("    %s: %s", cs[0].UserName, cs[0].Content)
		maxLen := p.width - 6
		if maxLen < 20 {
			maxLen = 20
		}
		if len(text) > maxLen {
			text = text[:maxLen-3] + "..."
		}
		detail = p.styles.Muted.Render(text)
	}

	if detail == "" {
		return titleLine + "\n" + metaLine
	}
	return titleLine + "\n" + metaLine + "\n" + detail
}

// SetProviders updates the list contents and resets the selection.
func (p *ProviderList) SetProviders(providers []domain.Provider) {
	p.providers = providers
	if p.selected >= len(providers) {
		p.selected = 0
	}
}

// SetComments attaches batch-fetched comments keyed by provider ID.
func (p *ProviderList) SetComments(comments map[string][]domain.Comment) {
	p.comments = comments
}

// Providers returns the current providers.
func (p *ProviderList) Providers() []domain.Provider {
	return p.providers
}

// Selected returns the index of the selected provider.
func (p *ProviderList) Selected() int {
	return p.selected
}

// SetSelected sets the selected index.
func (p *ProviderList) SetSelected(index int) {
	if index >= 0 && index < len(p.providers) {
		p.selected = index
	}
}

// SelectedProvider returns the currently selected provider, or nil.
func (p *ProviderList) SelectedProvider() *domain.Provider {
	if len(p.providers) == 0 || p.selected < 0 || p.selected >= len(p.providers) {
		return nil
	}
	return &p.providers[p.selected]
}

// MoveUp moves selection up.
func (p *ProviderList) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves selection down.
func (p *ProviderList) MoveDown() {
	if p.selected < len(p.providers)-1 {
		p.selected++
	}
}

// SetDimensions sets the component dimensions.
func (p *ProviderList) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the current width.
func (p *ProviderList) Width() int {
	return p.width
}

// Height returns the current height.
func (p *ProviderList) Height() int {
	return p.height
}

// Count returns the number of providers.
func (p *ProviderList) Count() int {
	return len(p.providers)
}

// IsEmpty returns whether the list is empty.
func (p *ProviderList) IsEmpty() bool {
	return len(p.providers) == 0
}
