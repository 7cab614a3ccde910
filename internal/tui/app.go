package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/conflictpane/internal/conflict"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	watcher *conflict.Watcher
}

// New creates a new TUI application. The watcher is optional; when set, its
// change notifications trigger reloads.
func New(opts Options, watcher *conflict.Watcher) *App {
	return &App{
		model:   NewModel(opts),
		watcher: watcher,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	defer a.model.Close()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok && a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	if a.watcher != nil {
		a.watcher.SetChangeCallback(func() {
			a.program.Send(ConflictsChangedMsg{})
		})
		a.watcher.Start()
		defer a.watcher.Stop()
	}

	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}
