// Package tui is the interactive theme picker. It subscribes to a store,
// applies the highlighted theme on enter and renders a live preview with the
// themed components.
package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
	"github.com/alexisbeaulieu97/thematic/internal/store"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

const updateBuffer = 16

// Model is the bubbletea state of the picker.
type Model struct {
	ctx   context.Context
	store *store.Store

	names     []theme.Name
	cursor    int
	current   theme.Name
	hydrating bool
	quitting  bool

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	updates   chan store.Snapshot
	done      chan struct{}
	closeOnce *sync.Once
	sub       ports.Subscription

	width int
}

// NewModel creates a picker over names for s. The caller must call Close
// once the program has exited.
func NewModel(ctx context.Context, s *store.Store, names []theme.Name) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		ctx:       store.WithStore(ctx, s),
		store:     s,
		names:     append([]theme.Name(nil), names...),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		updates:   make(chan store.Snapshot, updateBuffer),
		done:      make(chan struct{}),
		closeOnce: &sync.Once{},
	}

	updates := m.updates
	m.sub = s.Subscribe(func(snapshot store.Snapshot) {
		// Never block the store; the model reads the newest state anyway.
		select {
		case updates <- snapshot:
		default:
		}
	})

	snapshot := s.Current()
	m.current = snapshot.ThemeName
	m.hydrating = s.State() != store.Active
	m.cursor = m.indexOf(m.current)
	return m
}

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForTheme(m.updates, m.done)}
	if m.hydrating {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Close stops the store subscription and the pending listener.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		if m.sub != nil {
			m.sub.Unsubscribe()
		}
		close(m.done)
	})
}

// Current returns the active theme name as last seen by the model.
func (m Model) Current() theme.Name {
	return m.current
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) indexOf(name theme.Name) int {
	for i, candidate := range m.names {
		if candidate == name {
			return i
		}
	}
	return 0
}

// Run drives the picker until the user quits and returns the active theme.
func Run(ctx context.Context, s *store.Store, names []theme.Name, opts ...tea.ProgramOption) (theme.Name, error) {
	m := NewModel(ctx, s, names)
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return s.Current().ThemeName, err
	}
	if fm, ok := final.(Model); ok {
		return fm.current, nil
	}
	return s.Current().ThemeName, nil
}
