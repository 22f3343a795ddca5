// Package store holds the active theme for a host application. A Store
// resolves the selected name into a complete theme, broadcasts every change to
// its subscribers, hydrates the last selection from preferences and writes new
// selections back in the background.
package store

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/thematic/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/thematic/internal/ports"
	"github.com/alexisbeaulieu97/thematic/internal/preferences"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

// State is the store lifecycle position.
type State int

const (
	// Uninitialized: created, Activate not yet called. Current returns the
	// placeholder theme.
	Uninitialized State = iota
	// Hydrating: waiting for the persisted name.
	Hydrating
	// Active: the current theme reflects a real selection.
	Active

	anyState State = -1
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Hydrating:
		return "hydrating"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Snapshot is what consumers see: the selected name, its resolved theme and
// the setter.
type Snapshot struct {
	ThemeName    theme.Name
	Theme        theme.Theme
	SetThemeName func(theme.Name)
}

// Options configures a Store.
type Options struct {
	// CustomThemes are host overrides keyed by theme name. They are copied.
	CustomThemes theme.Overrides
	// InitialThemeName skips hydration when set.
	InitialThemeName theme.Name
	// Preferences persists the selection. Nil disables persistence.
	Preferences *preferences.Adapter
	// Resolver defaults to one over the default registry.
	Resolver *theme.Resolver
	Logger   ports.Logger
}

// Store owns the active theme name and resolved theme.
type Store struct {
	mu        sync.RWMutex
	state     State
	name      theme.Name
	current   theme.Theme
	activated bool
	closed    bool

	overrides theme.Overrides
	initial   theme.Name
	prefs     *preferences.Adapter
	resolver  *theme.Resolver
	logger    ports.Logger

	ready     chan struct{}
	readyOnce sync.Once

	subs *subscribers

	writes      *writeQueue
	writerDone  chan struct{}
	persistCtx  context.Context
	cancelHydr  context.CancelFunc
	hydrateDone chan struct{}
	closeOnce   sync.Once
}

// New creates a Store in the Uninitialized state holding the placeholder
// theme. Call Activate to select the real theme and Close when done.
func New(opts Options) *Store {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = theme.NewResolver(nil, opts.Logger)
	}

	s := &Store{
		state:      Uninitialized,
		name:       theme.Light,
		current:    theme.Placeholder(),
		overrides:  opts.CustomThemes.Clone(),
		initial:    opts.InitialThemeName,
		prefs:      opts.Preferences,
		resolver:   resolver,
		logger:     logging.OrNoOp(opts.Logger).With("component", "store"),
		ready:      make(chan struct{}),
		subs:       newSubscribers(),
		writes:     newWriteQueue(),
		writerDone: make(chan struct{}),
		persistCtx: context.Background(),
	}

	go s.runWriter()
	return s
}

// Activate moves the store out of Uninitialized. With an initial name the
// theme is resolved synchronously and storage is never read; otherwise the
// persisted name is loaded in the background. Later calls do nothing.
func (s *Store) Activate(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	if s.activated || s.closed {
		s.mu.Unlock()
		return
	}
	s.activated = true
	s.persistCtx = context.WithoutCancel(ctx)

	if s.initial != "" {
		s.mu.Unlock()
		s.apply(ctx, s.initial, Uninitialized)
		return
	}

	if s.state != Uninitialized {
		// SetThemeName already made a selection.
		s.mu.Unlock()
		return
	}

	s.state = Hydrating
	hydrateCtx, cancel := context.WithCancel(ctx)
	s.cancelHydr = cancel
	s.hydrateDone = make(chan struct{})
	s.mu.Unlock()

	go s.hydrate(hydrateCtx)
}

func (s *Store) hydrate(ctx context.Context) {
	defer close(s.hydrateDone)
	name := s.prefs.LoadThemeName(ctx)
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		s.logger.Debug(ctx, "store closed during hydration")
		return
	}
	if !s.apply(ctx, name, Hydrating) {
		s.logger.Debug(ctx, "discarding hydration result", "theme", string(name))
		return
	}
	s.logger.Debug(ctx, "store hydrated", "theme", string(name))
}

// Ready is closed once the store is Active.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// State reports the lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns the active snapshot. Before activation it holds the
// placeholder theme.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// SetThemeName selects name. The in-memory state and subscribers are updated
// before it returns; the name is persisted in the background. Unknown names
// resolve to the light theme but are stored as given.
func (s *Store) SetThemeName(name theme.Name) {
	s.apply(s.backgroundContext(), name, anyState)
}

// apply resolves name and installs it. Unless from is anyState the update
// only happens while the store is still in from, and nothing is persisted.
// It reports whether the update happened.
func (s *Store) apply(ctx context.Context, name theme.Name, from State) bool {
	resolution := s.resolver.ResolveDetailed(ctx, name, s.overrides)

	s.mu.Lock()
	if from != anyState && s.state != from {
		s.mu.Unlock()
		return false
	}
	previous := s.state
	s.state = Active
	s.name = name
	s.current = resolution.Theme
	snapshot := s.snapshotLocked()
	skipped := from == anyState && s.closed
	if from == anyState && !s.closed {
		s.writes.push(name)
	}
	s.mu.Unlock()

	if skipped {
		s.logger.Debug(ctx, "store closed, selection not persisted", "theme", string(name))
	}
	if previous != Active {
		s.readyOnce.Do(func() { close(s.ready) })
	}
	s.logger.Info(ctx, "theme changed", "theme", string(name), "source", string(resolution.Source))
	s.subs.notify(snapshot)
	return true
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		ThemeName:    s.name,
		Theme:        s.current.Clone(),
		SetThemeName: s.SetThemeName,
	}
}

func (s *Store) backgroundContext() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistCtx
}

// Subscribe registers fn to run after every change, in registration order,
// on the goroutine that made the change.
func (s *Store) Subscribe(fn func(Snapshot)) ports.Subscription {
	return s.subs.add(fn)
}

// Close cancels pending hydration, stops accepting new writes and waits for
// queued writes to finish or ctx to end. It is safe to call more than once.
func (s *Store) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		cancel := s.cancelHydr
		s.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		s.writes.close()
	})

	s.mu.RLock()
	hydrateDone := s.hydrateDone
	s.mu.RUnlock()

	if hydrateDone != nil {
		select {
		case <-hydrateDone:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	select {
	case <-s.writerDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) runWriter() {
	defer close(s.writerDone)
	for {
		name, ok := s.writes.pop()
		if !ok {
			return
		}
		s.prefs.SaveThemeName(s.backgroundContext(), name)
	}
}
