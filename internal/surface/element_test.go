package surface

import "testing"

func TestNew_SplitsClasses(t *testing.T) {
	el := New("div", "a b", "", "c", "a")

	want := "a b c"
	if got := el.ClassName(); got != want {
		t.Errorf("ClassName() = %q, want %q", got, want)
	}
	if el.Tag != "div" {
		t.Errorf("Tag = %q, want div", el.Tag)
	}
}

func TestElement_Classes(t *testing.T) {
	el := New("span", "one")
	el.AddClass("two")

	if !el.HasClass("one") || !el.HasClass("two") {
		t.Errorf("expected both classes, got %v", el.Classes())
	}

	el.RemoveClass("one")
	if el.HasClass("one") {
		t.Error("RemoveClass should drop the class")
	}

	classes := el.Classes()
	classes[0] = "mutated"
	if el.HasClass("mutated") {
		t.Error("Classes should return a copy")
	}
}

func TestElement_SetAttr(t *testing.T) {
	el := New("div")
	el.SetAttr("data-path", "a.go")
	el.SetAttr("class", "extra more")

	if v, ok := el.Attr("data-path"); !ok || v != "a.go" {
		t.Errorf("Attr(data-path) = %q, %v", v, ok)
	}
	if _, ok := el.Attr("class"); ok {
		t.Error("class should not be stored as a plain attribute")
	}
	if el.ClassName() != "extra more" {
		t.Errorf("ClassName() = %q", el.ClassName())
	}
}

func TestElement_FindAndText(t *testing.T) {
	root := New("div", "root").Append(
		New("span", "icon"),
		New("span", "path").WithText("src/main.go"),
		nil,
		New("span", "info").WithText(" AM "),
	)

	if len(root.Children) != 3 {
		t.Fatalf("nil children should be skipped, got %d", len(root.Children))
	}
	if got := root.Find("path"); got == nil || got.Text != "src/main.go" {
		t.Errorf("Find(path) = %+v", got)
	}
	if root.Find("missing") != nil {
		t.Error("Find should return nil for unknown classes")
	}
	if root.Find("root") != root {
		t.Error("Find should match the receiver itself")
	}
	if got := root.TextContent(); got != "src/main.go AM " {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestElement_Clone(t *testing.T) {
	el := New("div", "a").Append(New("span", "b").WithText("x"))
	el.SetAttr("k", "v")

	cp := el.Clone()
	cp.AddClass("c")
	cp.Attrs["k"] = "changed"
	cp.Children[0].Text = "y"

	if el.HasClass("c") || el.Attrs["k"] != "v" || el.Children[0].Text != "x" {
		t.Error("Clone should not share state with the original")
	}
}
