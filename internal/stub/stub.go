package stub

import (
	"fmt"
	"sync"

	"github.com/Iron-Ham/conflictpane/internal/event"
	"github.com/Iron-Ham/conflictpane/internal/logging"
	"github.com/Iron-Ham/conflictpane/internal/surface"
)

// DefaultNamespace prefixes the class of every stub render target.
const DefaultNamespace = "github"

// Props is the immutable configuration given to a stub at creation.
type Props struct {
	Title    string
	IconName string
}

// ElementClass returns the class carried by a stub's render target.
func ElementClass(namespace, selector string) string {
	return fmt.Sprintf("%s-StubItem-%s", namespace, selector)
}

// Stub is the backing state of a placeholder pane. Stubs are only created
// through Registry.Create.
type Stub struct {
	selector string
	props    Props
	element  *surface.Element
	registry *Registry
	logger   *logging.Logger

	emitter       *event.Emitter
	subscriptions *event.CompositeDisposable

	mu         sync.RWMutex
	realItem   any
	generation uint64
	destroyed  bool
}

func newStub(r *Registry, selector string, props Props) *Stub {
	logger := r.logger.WithSelector(selector)
	emitter := event.NewEmitter()
	emitter.SetLogger(logger.Slog())

	return &Stub{
		selector:      selector,
		props:         props,
		element:       surface.New("div", ElementClass(r.namespace, selector)),
		registry:      r,
		logger:        logger,
		emitter:       emitter,
		subscriptions: event.NewCompositeDisposable(),
	}
}

// Selector returns the registry key of the stub.
func (s *Stub) Selector() string {
	return s.selector
}

// Props returns the configuration given at creation.
func (s *Stub) Props() Props {
	return s.props
}

// SetRealItem attaches the real pane. Title and icon change notifications
// fire right away so observers re-read derived values. When the item
// announces title, icon, or destroy events, the stub re-emits them on its
// own channel; a destroy event also detaches the item.
func (s *Stub) SetRealItem(item any) {
	s.mu.Lock()
	s.realItem = item
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.logger.Debug("real item attached", "item", fmt.Sprintf("%T", item))

	s.emitter.Emit(event.DidChangeTitle)
	s.emitter.Emit(event.DidChangeIcon)

	if n, ok := item.(TitleNotifier); ok {
		s.subscriptions.Add(n.OnDidChangeTitle(func(args ...any) {
			s.emitter.Emit(event.DidChangeTitle, args...)
		}))
	}

	if n, ok := item.(IconNotifier); ok {
		s.subscriptions.Add(n.OnDidChangeIcon(func(args ...any) {
			s.emitter.Emit(event.DidChangeIcon, args...)
		}))
	}

	if n, ok := item.(DestroyNotifier); ok {
		s.subscriptions.Add(n.OnDidDestroy(func(args ...any) {
			s.mu.Lock()
			// A later SetRealItem owns the slot now.
			if s.generation == gen {
				s.realItem = nil
			}
			s.mu.Unlock()

			s.logger.Debug("real item destroyed")
			s.emitter.Emit(event.DidDestroy, args...)
		}))
	}
}

// GetRealItem returns the attached real item, or nil.
func (s *Stub) GetRealItem() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.realItem
}

// GetTitle returns the configured title, or "" when none was given. It never
// consults the real item.
func (s *Stub) GetTitle() string {
	return s.props.Title
}

// GetIconName returns the configured icon name, or "".
func (s *Stub) GetIconName() string {
	return s.props.IconName
}

// OnDidChangeTitle registers cb for title change notifications.
func (s *Stub) OnDidChangeTitle(cb event.Handler) event.Disposable {
	return s.emitter.On(event.DidChangeTitle, cb)
}

// OnDidChangeIcon registers cb for icon change notifications.
func (s *Stub) OnDidChangeIcon(cb event.Handler) event.Disposable {
	return s.emitter.On(event.DidChangeIcon, cb)
}

// OnDidDestroy registers cb for destroy notifications.
func (s *Stub) OnDidDestroy(cb event.Handler) event.Disposable {
	return s.emitter.On(event.DidDestroy, cb)
}

// GetElement returns the stub's render target.
func (s *Stub) GetElement() *surface.Element {
	return s.element
}

// Destroy releases subscriptions on the real item, silences the stub's
// notification channel, and removes the stub from its registry. The real
// item is owned by whoever attached it and is left alone.
func (s *Stub) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	s.mu.Unlock()

	s.subscriptions.Dispose()
	s.emitter.Dispose()
	s.registry.remove(s)

	s.logger.Debug("stub destroyed")
}

// Destroyed reports whether Destroy has run.
func (s *Stub) Destroyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destroyed
}
