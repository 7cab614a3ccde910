package stub

import (
	"reflect"

	"github.com/Iron-Ham/conflictpane/internal/event"
	"github.com/Iron-Ham/conflictpane/internal/surface"
)

// stubOwned lists the members that always resolve to the stub.
var stubOwned = map[string]bool{
	"Stub":       true,
	"GetElement": true,
	"Destroy":    true,
}

// Handle is the stable reference callers keep for a stubbed pane. It
// forwards to the attached real item where possible.
type Handle struct {
	stub *Stub
}

// Stub returns the backing stub.
func (h *Handle) Stub() *Stub {
	return h.stub
}

// GetElement always returns the stub's render target.
func (h *Handle) GetElement() *surface.Element {
	return h.stub.GetElement()
}

// Destroy always destroys the stub.
func (h *Handle) Destroy() {
	h.stub.Destroy()
}

// GetTitle returns the real item's title when it has one, otherwise the
// stub's configured title.
func (h *Handle) GetTitle() string {
	if t, ok := h.stub.GetRealItem().(Titled); ok {
		return t.GetTitle()
	}
	return h.stub.GetTitle()
}

// GetIconName returns the real item's icon name when it has one, otherwise
// the stub's configured icon name.
func (h *Handle) GetIconName() string {
	if t, ok := h.stub.GetRealItem().(IconNamed); ok {
		return t.GetIconName()
	}
	return h.stub.GetIconName()
}

// OnDidChangeTitle subscribes on the real item when it announces title
// changes, otherwise on the stub.
func (h *Handle) OnDidChangeTitle(cb event.Handler) event.Disposable {
	if n, ok := h.stub.GetRealItem().(TitleNotifier); ok {
		return n.OnDidChangeTitle(cb)
	}
	return h.stub.OnDidChangeTitle(cb)
}

// OnDidChangeIcon subscribes on the real item when it announces icon
// changes, otherwise on the stub.
func (h *Handle) OnDidChangeIcon(cb event.Handler) event.Disposable {
	if n, ok := h.stub.GetRealItem().(IconNotifier); ok {
		return n.OnDidChangeIcon(cb)
	}
	return h.stub.OnDidChangeIcon(cb)
}

// OnDidDestroy subscribes on the real item when it announces destruction,
// otherwise on the stub.
func (h *Handle) OnDidDestroy(cb event.Handler) event.Disposable {
	if n, ok := h.stub.GetRealItem().(DestroyNotifier); ok {
		return n.OnDidDestroy(cb)
	}
	return h.stub.OnDidDestroy(cb)
}

// SetRealItem attaches item to the stub.
func (h *Handle) SetRealItem(item any) {
	h.stub.SetRealItem(item)
}

// GetRealItem returns the attached real item, or nil.
func (h *Handle) GetRealItem() any {
	return h.stub.GetRealItem()
}

// Lookup resolves an arbitrary member name. Methods come back as bound
// method values, so they can be called without the receiver. It returns
// nil when neither the stub nor the real item has the member.
func (h *Handle) Lookup(name string) any {
	if stubOwned[name] {
		return methodValue(h, name)
	}

	if item := h.stub.GetRealItem(); item != nil {
		if mp, ok := item.(MemberProvider); ok {
			if v, ok := mp.Member(name); ok {
				return v
			}
		}
		if v := methodValue(item, name); v != nil {
			return v
		}
	}

	return methodValue(h.stub, name)
}

// Has reports whether Lookup would resolve name.
func (h *Handle) Has(name string) bool {
	return h.Lookup(name) != nil
}

// Call resolves name and invokes it with args. The second result is false
// when the member is missing, is not a function, or the arguments do not
// fit its signature.
func (h *Handle) Call(name string, args ...any) ([]any, bool) {
	member := h.Lookup(name)
	if member == nil {
		return nil, false
	}

	fn := reflect.ValueOf(member)
	if fn.Kind() != reflect.Func {
		return nil, false
	}

	in, ok := callArgs(fn.Type(), args)
	if !ok {
		return nil, false
	}

	out := fn.Call(in)
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, true
}

// methodValue returns recv's exported method name bound to recv, or nil.
func methodValue(recv any, name string) any {
	if recv == nil {
		return nil
	}
	m := reflect.ValueOf(recv).MethodByName(name)
	if !m.IsValid() {
		return nil
	}
	return m.Interface()
}

// callArgs converts args into reflect values matching fnType.
func callArgs(fnType reflect.Type, args []any) ([]reflect.Value, bool) {
	numIn := fnType.NumIn()
	variadic := fnType.IsVariadic()
	if (!variadic && len(args) != numIn) || (variadic && len(args) < numIn-1) {
		return nil, false
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if variadic && i >= numIn-1 {
			want = fnType.In(numIn - 1).Elem()
		} else {
			want = fnType.In(i)
		}

		if arg == nil {
			switch want.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				in[i] = reflect.Zero(want)
				continue
			default:
				return nil, false
			}
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, false
		}
		in[i] = v
	}
	return in, true
}
