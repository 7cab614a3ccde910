// Package tui hosts the interactive conflict list. The Model owns a stub
// registry and shows the merge-conflicts pane through its stub handle, so
// the pane is on screen before the conflicts are loaded and the real list
// is attached.
package tui

import (
	"context"
	"time"

	"github.com/Iron-Ham/conflictpane/internal/logging"
	"github.com/Iron-Ham/conflictpane/internal/mergeconflict"
	"github.com/Iron-Ham/conflictpane/internal/stub"
	"github.com/Iron-Ham/conflictpane/internal/tui/keymap"
	"github.com/Iron-Ham/conflictpane/internal/tui/panel"
	"github.com/Iron-Ham/conflictpane/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PlaceholderTitle is the stub title shown until the list is attached.
const PlaceholderTitle = "Merge Conflicts"

// loadTimeout bounds a single git query.
const loadTimeout = 30 * time.Second

// ConflictLoader loads the current merge conflicts.
type ConflictLoader interface {
	Load(ctx context.Context) ([]mergeconflict.MergeConflict, error)
}

// Options configures a Model.
type Options struct {
	Loader    ConflictLoader
	Namespace string
	Theme     *styles.Theme
	Keymap    *keymap.Keymap
	Logger    *logging.Logger
}

// Model is the bubbletea model of the conflict pane.
type Model struct {
	registry *stub.Registry
	handle   *stub.Handle
	list     *panel.ConflictListPanel
	help     *panel.HelpPanel

	loader ConflictLoader
	keymap *keymap.Keymap
	theme  *styles.Theme
	logger *logging.Logger

	mode       keymap.Mode
	filter     textinput.Model
	prevFilter string
	helpScroll int

	width   int
	height  int
	loading bool
	loaded  bool
	err     error

	// reloadPending records a reload requested while a load was running.
	reloadPending bool
}

// NewModel creates the model and registers the merge-conflicts stub.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	km := opts.Keymap
	if km == nil {
		km = keymap.DefaultKeymap()
	}

	registry := stub.NewRegistry(stub.WithNamespace(opts.Namespace), stub.WithLogger(logger))
	handle := registry.Create(panel.ConflictListSelector, stub.Props{
		Title:    PlaceholderTitle,
		IconName: panel.ConflictListIcon,
	})

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter paths"
	ti.CharLimit = 200

	return Model{
		registry: registry,
		handle:   handle,
		list:     panel.NewConflictListPanel(logger),
		help:     panel.NewHelpPanel(),
		loader:   opts.Loader,
		keymap:   km,
		theme:    theme,
		logger:   logger,
		mode:     keymap.ModeNormal,
		filter:   ti,
		loading:  opts.Loader != nil,
	}
}

// Registry returns the stub registry the model renders panes from.
func (m Model) Registry() *stub.Registry { return m.registry }

// Handle returns the merge-conflicts stub handle.
func (m Model) Handle() *stub.Handle { return m.handle }

// List returns the conflict list panel.
func (m Model) List() *panel.ConflictListPanel { return m.list }

// Mode returns the current input mode.
func (m Model) Mode() keymap.Mode { return m.mode }

// Err returns the last load error, if any.
func (m Model) Err() error { return m.err }

// Loading reports whether a load is in flight.
func (m Model) Loading() bool { return m.loading }

// Close destroys the pane and its stub.
func (m Model) Close() {
	m.list.Destroy()
	m.handle.Destroy()
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return loadConflicts(m.loader)
}

// loadConflicts returns a command that queries git off the update loop.
func loadConflicts(loader ConflictLoader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		conflicts, err := loader.Load(ctx)
		return conflictsLoadedMsg{conflicts: conflicts, err: err}
	}
}

// reload starts a load. While one is running the request is queued and
// issued once the running load's result arrives, since that result may
// predate the change that triggered the request.
func (m Model) reload() (Model, tea.Cmd) {
	if m.loader == nil {
		return m, nil
	}
	if m.loading {
		m.reloadPending = true
		return m, nil
	}
	m.loading = true
	return m, loadConflicts(m.loader)
}

// pendingReload starts the reload queued during the last load, if any.
func (m Model) pendingReload() (Model, tea.Cmd) {
	if !m.reloadPending {
		return m, nil
	}
	m.reloadPending = false
	return m.reload()
}

// attach hands the loaded conflicts to the list and makes it the stub's
// real item on first load.
func (m Model) attach(conflicts []mergeconflict.MergeConflict) Model {
	if m.handle.GetRealItem() == nil && !m.list.Destroyed() {
		m.handle.SetRealItem(m.list)
	}
	m.list.SetConflicts(conflicts)
	m.loaded = true
	m.syncElement()
	return m
}

// syncElement mirrors the visible rows into the stub's render target.
func (m Model) syncElement() {
	if m.handle.GetRealItem() == nil {
		return
	}
	m.list.RenderInto(m.handle.GetElement())
}
