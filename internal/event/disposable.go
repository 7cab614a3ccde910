package event

import "sync"

// Disposable releases a registration or resource. Dispose must be safe to
// call more than once.
type Disposable interface {
	Dispose()
}

// DisposableFunc adapts a plain function to the Disposable interface.
// The function runs at most once.
type DisposableFunc func()

// Dispose calls f.
func (f DisposableFunc) Dispose() {
	if f != nil {
		f()
	}
}

// noopDisposable is handed out by a disposed emitter.
type noopDisposable struct{}

func (noopDisposable) Dispose() {}

// CompositeDisposable collects disposables so they can be released together.
type CompositeDisposable struct {
	mu          sync.Mutex
	disposables []Disposable
	disposed    bool
}

// NewCompositeDisposable creates a CompositeDisposable holding the given
// disposables.
func NewCompositeDisposable(ds ...Disposable) *CompositeDisposable {
	c := &CompositeDisposable{}
	for _, d := range ds {
		c.Add(d)
	}
	return c
}

// Add tracks d. If the composite was already disposed, d is disposed
// immediately instead.
func (c *CompositeDisposable) Add(d Disposable) {
	if d == nil {
		return
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		d.Dispose()
		return
	}
	c.disposables = append(c.disposables, d)
	c.mu.Unlock()
}

// Dispose releases every tracked disposable in the order they were added.
func (c *CompositeDisposable) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	ds := c.disposables
	c.disposables = nil
	c.mu.Unlock()

	for _, d := range ds {
		d.Dispose()
	}
}

// Disposed reports whether Dispose has been called.
func (c *CompositeDisposable) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Len returns the number of disposables still tracked.
func (c *CompositeDisposable) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.disposables)
}
