// Package surface provides a small DOM-like element tree. Panes render into
// an Element, and list views describe their rows with one, before the
// terminal renderer turns them into styled text.
package surface

import (
	"maps"
	"slices"
	"strings"
)

// Element is a tagged node with classes, attributes, text and children.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Element

	classes []string
}

// New creates an element with the given tag and classes. Class strings may
// hold several space-separated names.
func New(tag string, classes ...string) *Element {
	el := &Element{Tag: tag}
	el.AddClass(classes...)
	return el
}

// AddClass appends class names, skipping empty names and duplicates.
func (e *Element) AddClass(classes ...string) {
	for _, c := range classes {
		for _, name := range strings.Fields(c) {
			if !slices.Contains(e.classes, name) {
				e.classes = append(e.classes, name)
			}
		}
	}
}

// RemoveClass drops a class name if present.
func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

// HasClass reports whether the element carries the class name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns a copy of the element's class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// ClassName returns the class list joined by single spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// SetAttr sets an attribute. The "class" attribute is routed to AddClass.
func (e *Element) SetAttr(key, value string) {
	if key == "class" || key == "className" {
		e.AddClass(value)
		return
	}
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
}

// Attr returns an attribute value.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

// Append adds children and returns the element for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// WithText sets the text content and returns the element for chaining.
func (e *Element) WithText(text string) *Element {
	e.Text = text
	return e
}

// Find returns the first element in depth-first order, starting with e
// itself, that carries the class name.
func (e *Element) Find(class string) *Element {
	if e == nil {
		return nil
	}
	if e.HasClass(class) {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the text of e and all descendants.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	b.WriteString(e.Text)
	for _, c := range e.Children {
		c.writeText(b)
	}
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{
		Tag:     e.Tag,
		Text:    e.Text,
		Attrs:   maps.Clone(e.Attrs),
		classes: slices.Clone(e.classes),
	}
	for _, c := range e.Children {
		out.Children = append(out.Children, c.Clone())
	}
	return out
}
