package event

import (
	"log/slog"
	"runtime/debug"
	"sync"
)

// Pane notification names.
const (
	DidChangeTitle = "did-change-title"
	DidChangeIcon  = "did-change-icon"
	DidDestroy     = "did-destroy"
)

// Handler receives the arguments passed to Emit.
type Handler func(args ...any)

// subscription represents a registered handler.
type subscription struct {
	id      uint64
	handler Handler
}

// Emitter is a synchronous named-event fan-out local to one owner.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[string][]subscription
	nextID   uint64
	disposed bool
	logger   *slog.Logger
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[string][]subscription),
		logger:   slog.Default(),
	}
}

// SetLogger replaces the logger used to report recovered handler panics.
func (e *Emitter) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	e.mu.Lock()
	e.logger = logger
	e.mu.Unlock()
}

// On registers handler for name and returns a Disposable that removes it.
// A disposed emitter accepts nothing and returns a no-op Disposable.
func (e *Emitter) On(name string, handler Handler) Disposable {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed || handler == nil {
		return noopDisposable{}
	}

	e.nextID++
	id := e.nextID
	e.handlers[name] = append(e.handlers[name], subscription{id: id, handler: handler})

	var once sync.Once
	return DisposableFunc(func() {
		once.Do(func() { e.off(name, id) })
	})
}

// off removes a single subscription.
func (e *Emitter) off(name string, id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	subs := e.handlers[name]
	for i, sub := range subs {
		if sub.id == id {
			e.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			if len(e.handlers[name]) == 0 {
				delete(e.handlers, name)
			}
			return
		}
	}
}

// Emit calls every handler registered for name, in registration order,
// and returns once all of them have run. Handlers added or removed while
// emitting take effect on the next Emit.
func (e *Emitter) Emit(name string, args ...any) {
	e.mu.RLock()
	if e.disposed {
		e.mu.RUnlock()
		return
	}
	subs := make([]subscription, len(e.handlers[name]))
	copy(subs, e.handlers[name])
	logger := e.logger
	e.mu.RUnlock()

	for _, sub := range subs {
		safeCall(logger, name, sub.handler, args)
	}
}

// safeCall invokes a handler and recovers from any panic so one misbehaving
// observer cannot starve the rest.
func safeCall(logger *slog.Logger, name string, handler Handler, args []any) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event handler panicked",
				"event", name,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	handler(args...)
}

// Dispose drops every handler. After Dispose, Emit does nothing.
func (e *Emitter) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposed = true
	e.handlers = make(map[string][]subscription)
}

// Disposed reports whether Dispose has been called.
func (e *Emitter) Disposed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.disposed
}

// HandlerCount returns the number of handlers registered for name.
func (e *Emitter) HandlerCount(name string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[name])
}
