package stub

import (
	"slices"
	"sync"

	"github.com/Iron-Ham/conflictpane/internal/logging"
	"github.com/Iron-Ham/conflictpane/internal/surface"
)

// Registry maps selectors to live stubs. It is owned by whatever manages
// pane lifecycle and passed to the components that need it.
type Registry struct {
	namespace string
	logger    *logging.Logger

	mu      sync.RWMutex
	handles map[string]*Handle
}

// Option configures a Registry.
type Option func(*Registry)

// WithNamespace sets the prefix of render target classes.
func WithNamespace(namespace string) Option {
	return func(r *Registry) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

// WithLogger sets the registry logger.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		namespace: DefaultNamespace,
		logger:    logging.NopLogger(),
		handles:   make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Namespace returns the render target class prefix.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Create builds a stub for selector and registers its handle, replacing any
// handle already registered under that selector.
func (r *Registry) Create(selector string, props Props) *Handle {
	h := &Handle{stub: newStub(r, selector, props)}

	r.mu.Lock()
	_, replaced := r.handles[selector]
	r.handles[selector] = h
	r.mu.Unlock()

	r.logger.Debug("stub created", "selector", selector, "replaced", replaced)
	return h
}

// GetBySelector returns the handle registered under selector.
func (r *Registry) GetBySelector(selector string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handles[selector]
	return h, ok
}

// GetElementBySelector returns the render target of the stub registered
// under selector, or nil.
func (r *Registry) GetElementBySelector(selector string) *surface.Element {
	h, ok := r.GetBySelector(selector)
	if !ok {
		return nil
	}
	return h.GetElement()
}

// Selectors returns the registered selectors in sorted order.
func (r *Registry) Selectors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.handles))
	for sel := range r.handles {
		out = append(out, sel)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of registered stubs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}

// remove drops s from the registry. A stub that was replaced by a later
// Create for the same selector leaves the newer entry in place.
func (r *Registry) remove(s *Stub) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.handles[s.selector]; ok && h.stub == s {
		delete(r.handles, s.selector)
	}
}
