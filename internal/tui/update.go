package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/thematic/internal/store"
)

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ThemeChangedMsg:
		m.current = msg.Snapshot.ThemeName
		m.cursor = m.indexOf(m.current)
		m.hydrating = false
		return m, waitForTheme(m.updates, m.done)

	case spinner.TickMsg:
		if !m.hydrating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.store.State() == store.Active {
			m.hydrating = false
			m.current = m.store.Current().ThemeName
			m.cursor = m.indexOf(m.current)
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.names) == 0 {
			return m, nil
		}
		name := m.names[m.cursor]
		m.store.SetThemeName(name)
		m.current = name
		m.hydrating = false

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
