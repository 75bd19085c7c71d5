package dom

import (
	"strings"
	"testing"
)

func TestElement_Classes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.AddClass("a")
	el.AddClass("b")
	el.AddClass("a")

	got := el.Classes()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected deduped ordered classes [a b], got %v", got)
	}

	el.RemoveClass("a")
	if el.HasClass("a") {
		t.Error("expected class a removed")
	}
	if !el.HasClass("b") {
		t.Error("expected class b kept")
	}
}

func TestElement_AttributesAndStyles(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")

	el.SetAttribute("type", "text")
	if v, ok := el.Attribute("type"); !ok || v != "text" {
		t.Errorf("expected type=text, got %q ok=%v", v, ok)
	}
	if _, ok := el.Attribute("missing"); ok {
		t.Error("expected missing attribute to report !ok")
	}

	el.SetStyle("position", "relative")
	if got := el.Style("position"); got != "relative" {
		t.Errorf("expected relative, got %q", got)
	}
	if got := el.Style("unset"); got != "" {
		t.Errorf("expected empty style, got %q", got)
	}
}

func TestElement_TreeOperations(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")

	parent.AppendChild(child)
	if child.Parent() != parent {
		t.Fatal("expected child parented")
	}

	other := doc.CreateElement("div")
	other.AppendChild(child)
	if child.Parent() != other {
		t.Error("expected reparent to move the child")
	}
	if len(parent.Children()) != 0 {
		t.Error("expected old parent emptied on reparent")
	}

	child.Remove()
	if child.Parent() != nil {
		t.Error("expected detached child")
	}
	// Removing twice is a no-op.
	child.Remove()
}

func TestElement_Attached(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	inner := doc.CreateElement("span")
	el.AppendChild(inner)

	if inner.Attached() {
		t.Error("expected detached subtree")
	}
	doc.Body().AppendChild(el)
	if !inner.Attached() {
		t.Error("expected attached after body append")
	}
	el.Remove()
	if inner.Attached() {
		t.Error("expected detached after removal")
	}
}

func TestElement_QueryByClass(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	a := doc.CreateElement("span")
	a.AddClass("hit")
	b := doc.CreateElement("span")
	c := doc.CreateElement("i")
	c.AddClass("hit")
	root.AppendChild(a)
	root.AppendChild(b)
	b.AppendChild(c)

	if got := root.QueryByClass("hit"); got != a {
		t.Error("expected first depth-first match")
	}
	if got := root.QueryByClass("none"); got != nil {
		t.Error("expected nil for no match")
	}
	all := root.QueryAllByClass("hit")
	if len(all) != 2 || all[0] != a || all[1] != c {
		t.Errorf("expected both matches in order, got %d", len(all))
	}
}

func TestDispatch_OrderAndBubbling(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")
	parent.AppendChild(child)
	doc.Body().AppendChild(parent)

	var order []string
	child.AddEventListener("tap", func(*Event) { order = append(order, "child-1") })
	child.AddEventListener("tap", func(*Event) { order = append(order, "child-2") })
	parent.AddEventListener("tap", func(*Event) { order = append(order, "parent") })
	doc.AddEventListener("tap", func(*Event) { order = append(order, "document") })

	child.Dispatch(&Event{Type: "tap"})

	want := []string{"child-1", "child-2", "parent", "document"}
	if len(order) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestDispatch_TargetDefaultsToElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	doc.Body().AppendChild(el)

	var target *Element
	doc.AddEventListener("tap", func(evt *Event) { target = evt.Target })
	el.Dispatch(&Event{Type: "tap"})

	if target != el {
		t.Error("expected target to default to dispatching element")
	}
}

func TestDispatch_StopPropagation(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")
	parent.AppendChild(child)
	doc.Body().AppendChild(parent)

	parentCalled := false
	child.AddEventListener("tap", func(evt *Event) { evt.StopPropagation() })
	parent.AddEventListener("tap", func(*Event) { parentCalled = true })

	child.Dispatch(&Event{Type: "tap"})
	if parentCalled {
		t.Error("expected propagation stopped before parent")
	}
}

func TestDispatch_RemoveDuringDispatch(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	var calls []string
	var removeSecond func()
	el.AddEventListener("tap", func(*Event) {
		calls = append(calls, "first")
		removeSecond()
	})
	removeSecond = el.AddEventListener("tap", func(*Event) {
		calls = append(calls, "second")
	})

	el.Dispatch(&Event{Type: "tap"})
	if len(calls) != 1 || calls[0] != "first" {
		t.Errorf("expected listener removed mid-dispatch to be skipped, got %v", calls)
	}
}

func TestAddEventListener_RemoveIdempotent(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	calls := 0
	remove := el.AddEventListener("tap", func(*Event) { calls++ })

	remove()
	remove()
	el.Dispatch(&Event{Type: "tap"})

	if calls != 0 {
		t.Error("expected removed listener not to fire")
	}
	if got := el.ListenerCount("tap"); got != 0 {
		t.Errorf("expected 0 listeners, got %d", got)
	}
}

func TestElement_RemoveAllListeners(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	calls := 0
	el.AddEventListener("tap", func(*Event) { calls++ })
	el.AddEventListener("press", func(*Event) { calls++ })

	el.RemoveAllListeners()
	el.Dispatch(&Event{Type: "tap"})
	el.Dispatch(&Event{Type: "press"})

	if calls != 0 {
		t.Errorf("expected no calls after RemoveAllListeners, got %d", calls)
	}
}

func TestDocument_ListenerCount(t *testing.T) {
	doc := NewDocument()
	remove := doc.AddEventListener("mouseup", func(*Event) {})
	doc.AddEventListener("mouseup", func(*Event) {})

	if got := doc.ListenerCount("mouseup"); got != 2 {
		t.Fatalf("expected 2 listeners, got %d", got)
	}
	remove()
	if got := doc.ListenerCount("mouseup"); got != 1 {
		t.Errorf("expected 1 listener after removal, got %d", got)
	}
}

func TestDocument_TouchSupport(t *testing.T) {
	if NewDocument().TouchEnabled() {
		t.Error("expected touch disabled by default")
	}
	if !NewDocument(WithTouchSupport(true)).TouchEnabled() {
		t.Error("expected touch enabled via option")
	}
}

func TestAppendChild_CrossDocumentPanics(t *testing.T) {
	a := NewDocument()
	b := NewDocument()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cross-document append")
		}
	}()
	a.Body().AppendChild(b.CreateElement("div"))
}

func TestRender_EscapesAndNests(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	root.AddClass("card")
	root.SetStyle("position", "relative")
	label := doc.CreateElement("span")
	label.SetText(`<b>&"bold"</b>`)
	label.SetAttribute("data-id", `x"y`)
	root.AppendChild(label)

	out := root.OuterHTML()

	if !strings.Contains(out, `class="card"`) {
		t.Errorf("expected class attribute, got %s", out)
	}
	if !strings.Contains(out, `style="position: relative"`) {
		t.Errorf("expected style attribute, got %s", out)
	}
	if strings.Contains(out, "<b>") {
		t.Errorf("expected text escaped, got %s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;") {
		t.Errorf("expected entity-escaped text, got %s", out)
	}
	if strings.Contains(out, `data-id="x"y"`) {
		t.Errorf("expected attribute value escaped, got %s", out)
	}
}

func TestRender_VoidElement(t *testing.T) {
	doc := NewDocument()
	input := doc.CreateElement("input")
	input.SetAttribute("type", "text")

	out := input.OuterHTML()
	if strings.Contains(out, "</input>") {
		t.Errorf("expected no closing tag for void element, got %s", out)
	}
}
