// Package event provides the synchronous notification channel used by panes
// and stub items in conflictpane.
//
// An [Emitter] fans a named event out to every handler registered for that
// name, in registration order, before Emit returns. There is no queue and no
// asynchronous dispatch. Registrations are undone through the [Disposable]
// returned by [Emitter.On], and groups of registrations are tracked with a
// [CompositeDisposable].
//
// # Basic Usage
//
//	em := event.NewEmitter()
//	sub := em.On(event.DidChangeTitle, func(args ...any) {
//	    log.Printf("title changed: %v", args)
//	})
//	em.Emit(event.DidChangeTitle)
//	sub.Dispose()
//
// Once the emitter itself is disposed, Emit is a no-op and On returns a
// Disposable that does nothing.
//
// # Event Names
//
// Pane notifications use the names below:
//   - did-change-title
//   - did-change-icon
//   - did-destroy
package event
