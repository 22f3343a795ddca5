package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/thematic/internal/store"
)

// ThemeChangedMsg carries a store change into the program.
type ThemeChangedMsg struct {
	Snapshot store.Snapshot
}

// waitForTheme blocks until the store reports a change or done closes.
func waitForTheme(updates <-chan store.Snapshot, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case snapshot := <-updates:
			return ThemeChangedMsg{Snapshot: snapshot}
		case <-done:
			return nil
		}
	}
}
