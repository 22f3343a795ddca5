package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/thematic/internal/infrastructure/kvstore"
	"github.com/alexisbeaulieu97/thematic/internal/preferences"
	"github.com/alexisbeaulieu97/thematic/internal/store"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

var testNames = []theme.Name{theme.Dark, theme.Light, "brand"}

func newActiveStore(t *testing.T, initial theme.Name) *store.Store {
	t.Helper()
	s := store.New(store.Options{InitialThemeName: initial})
	s.Activate(context.Background())
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func newTestModel(t *testing.T, s *store.Store) Model {
	t.Helper()
	m := NewModel(context.Background(), s, testNames)
	t.Cleanup(m.Close)
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestNewModelStartsOnActiveTheme(t *testing.T) {
	m := newTestModel(t, newActiveStore(t, theme.Light))

	assert.Equal(t, theme.Light, m.Current())
	assert.Equal(t, 1, m.Cursor())
	assert.False(t, m.hydrating)
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel(t, newActiveStore(t, theme.Dark))

	m = press(t, m, keyUp, keyUp)
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, len(testNames)-1, m.Cursor())
}

func TestEnterAppliesHighlightedTheme(t *testing.T) {
	s := newActiveStore(t, theme.Light)
	m := newTestModel(t, s)

	m = press(t, m, keyUp, keyEnter)

	assert.Equal(t, theme.Dark, m.Current())
	assert.Equal(t, theme.Dark, s.Current().ThemeName)
}

func TestStoreChangesReachTheModel(t *testing.T) {
	s := newActiveStore(t, theme.Light)
	m := newTestModel(t, s)

	s.SetThemeName("brand")

	msg := waitForTheme(m.updates, m.done)()
	changed, ok := msg.(ThemeChangedMsg)
	require.True(t, ok)
	assert.Equal(t, theme.Name("brand"), changed.Snapshot.ThemeName)

	updated, cmd := m.Update(changed)
	m = updated.(Model)
	assert.Equal(t, theme.Name("brand"), m.Current())
	assert.NotNil(t, cmd, "the model keeps listening")
}

func TestCloseStopsListening(t *testing.T) {
	s := newActiveStore(t, theme.Light)
	m := NewModel(context.Background(), s, testNames)

	m.Close()
	m.Close()
	assert.Nil(t, waitForTheme(m.updates, m.done)())

	s.SetThemeName(theme.Dark)
	assert.Len(t, m.updates, 0, "unsubscribed models receive nothing")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, newActiveStore(t, theme.Light))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.(Model).View())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, newActiveStore(t, theme.Light))
	short := m.View()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
}

func TestViewListsThemesAndPreview(t *testing.T) {
	m := newTestModel(t, newActiveStore(t, theme.Dark))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "dark *")
	assert.Contains(t, view, "light")
	assert.Contains(t, view, "brand")
	assert.Contains(t, view, "Subheading sample")
	assert.Contains(t, view, "#6e86ff")
	assert.NotContains(t, view, "loading saved theme")
}

func TestViewWhileHydrating(t *testing.T) {
	s := store.New(store.Options{})
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	m := newTestModel(t, s)

	assert.True(t, m.hydrating)
	assert.Contains(t, m.View(), "loading saved theme")
	assert.NotNil(t, m.Init())

	s.SetThemeName(theme.Dark)
	updated, _ := m.Update(ThemeChangedMsg{Snapshot: s.Current()})
	m = updated.(Model)
	assert.False(t, m.hydrating)
	assert.NotContains(t, m.View(), "loading saved theme")
}

func TestHydratedThemeMovesCursor(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	prefs := preferences.NewAdapter(kv, nil)
	prefs.SaveThemeName(ctx, theme.Dark)

	s := store.New(store.Options{Preferences: prefs})
	t.Cleanup(func() { _ = s.Close(ctx) })

	m := newTestModel(t, s)
	assert.Equal(t, 1, m.Cursor(), "placeholder name is light")

	s.Activate(ctx)
	msg := waitForTheme(m.updates, m.done)()
	changed, ok := msg.(ThemeChangedMsg)
	require.True(t, ok)

	updated, _ := m.Update(changed)
	m = updated.(Model)
	assert.Equal(t, theme.Dark, m.Current())
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, keyEnter)
	assert.Equal(t, theme.Dark, s.Current().ThemeName)
}
