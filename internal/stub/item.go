package stub

import (
	"github.com/Iron-Ham/conflictpane/internal/event"
	"github.com/Iron-Ham/conflictpane/internal/surface"
)

// Pane is the capability set shared by stubs, handles, and real items that
// implement the full pane contract.
type Pane interface {
	GetElement() *surface.Element
	GetTitle() string
	GetIconName() string
	OnDidChangeTitle(cb event.Handler) event.Disposable
	OnDidChangeIcon(cb event.Handler) event.Disposable
	OnDidDestroy(cb event.Handler) event.Disposable
	Destroy()
}

// Optional capabilities a real item may provide. Each is checked
// independently; an item may implement any subset.
type (
	// Titled items report their own title.
	Titled interface {
		GetTitle() string
	}

	// IconNamed items report their own icon name.
	IconNamed interface {
		GetIconName() string
	}

	// TitleNotifier items announce title changes.
	TitleNotifier interface {
		OnDidChangeTitle(cb event.Handler) event.Disposable
	}

	// IconNotifier items announce icon changes.
	IconNotifier interface {
		OnDidChangeIcon(cb event.Handler) event.Disposable
	}

	// DestroyNotifier items announce their own destruction.
	DestroyNotifier interface {
		OnDidDestroy(cb event.Handler) event.Disposable
	}

	// Destroyer items can be destroyed.
	Destroyer interface {
		Destroy()
	}

	// MemberProvider items expose members by name that are not Go methods,
	// such as plain values or closures assembled at runtime. A member
	// reported here takes precedence over a method of the same name.
	MemberProvider interface {
		Member(name string) (any, bool)
	}
)

var (
	_ Pane = (*Stub)(nil)
	_ Pane = (*Handle)(nil)
)
