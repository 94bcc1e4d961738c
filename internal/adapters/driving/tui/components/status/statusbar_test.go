package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/keymap"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := NewBar(s, km)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ProviderCount())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Init(t *testing.T) {
	bar := NewBar(nil, nil)

	cmd := bar.Init()

	assert.Nil(t, cmd)
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	updated, cmd := bar.Update(msg)

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateLoading)

	assert.Equal(t, StateLoading, bar.State())
}

func TestStatusBar_SetMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetMessage("test message")

	assert.Equal(t, "test message", bar.Message())
}

func TestStatusBar_SetProviderCount(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetProviderCount(42)

	assert.Equal(t, 42, bar.ProviderCount())
}

func TestStatusBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestStatusBar_Width_Default(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, 80, bar.Width())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("error message")
	bar.SetProviderCount(10)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ProviderCount())
}

func TestStatusBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Ready")
}

func TestStatusBar_View_Loading(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateLoading)

	view := bar.View()

	assert.Contains(t, view, "Loading")
}

func TestStatusBar_View_Saving(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSaving)

	view := bar.View()

	assert.Contains(t, view, "Saving")
}

func TestStatusBar_View_SavingWithMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSaving)
	bar.SetMessage("Submitting review...")

	view := bar.View()

	assert.Contains(t, view, "Submitting review")
}

func TestStatusBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)

	view := bar.View()

	assert.Contains(t, view, "Error")
}

func TestStatusBar_View_ErrorWithMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("connection failed")

	view := bar.View()

	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "connection failed")
}

func TestStatusBar_View_Help(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateHelp)

	view := bar.View()

	assert.Contains(t, view, "Help")
}

func TestStatusBar_View_BrowsingMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateBrowsing)
	bar.SetProviderCount(5)
	bar.SetMessage("Connection request sent")

	view := bar.View()
	assert.Contains(t, view, "Connection request sent")

	bar.SetMessage("")
	assert.Contains(t, bar.View(), "5 recommendations")
}

func TestStatusBar_View_WithProviders(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetProviderCount(5)

	view := bar.View()

	assert.Contains(t, view, "5 recommendations")
}

func TestStatusBar_View_ShowsKeybindings(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	// Should show quit keybinding
	assert.Contains(t, view, "quit")
}

func TestState_Constants(t *testing.T) {
	assert.Equal(t, State("ready"), StateReady)
	assert.Equal(t, State("loading"), StateLoading)
	assert.Equal(t, State("saving"), StateSaving)
	assert.Equal(t, State("error"), StateError)
	assert.Equal(t, State("help"), StateHelp)
	assert.Equal(t, State("browsing"), StateBrowsing)
}
