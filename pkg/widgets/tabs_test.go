package widgets_test

import (
	"testing"

	"github.com/go-tide/tide/pkg/uitest"
	"github.com/go-tide/tide/pkg/widgets"
)

func newTabs(t *testing.T, h *uitest.Harness, opts widgets.TabsOptions) *widgets.Tabs {
	t.Helper()
	tb, err := widgets.NewTabs(testEnv(h), opts)
	if err != nil {
		t.Fatalf("NewTabs: %v", err)
	}
	return tb
}

func TestNewTabs_BuildsItems(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"Home", "Feed", "Settings"}})

	host := tb.Element()
	if host.Tag() != "nav" {
		t.Fatalf("host tag = %q, want nav", host.Tag())
	}
	if !host.HasClass("tide-tabs") {
		t.Fatalf("classes = %v, want tide-tabs", host.Classes())
	}
	if !host.HasClass("tide-interactive") {
		t.Fatalf("classes = %v, want interactive marker", host.Classes())
	}
	if tb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tb.Len())
	}
	if got := uitest.CountByClass(host, "tide-tabs-item"); got != 3 {
		t.Fatalf("items in host = %d, want 3", got)
	}
	if tb.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", tb.Active())
	}
	first := tb.Item(0)
	if !first.HasClass("tide-tabs-item--active") {
		t.Fatalf("first item classes = %v, want active modifier", first.Classes())
	}
	if v, _ := first.Attribute("aria-selected"); v != "true" {
		t.Fatalf("first item aria-selected = %q, want true", v)
	}
	if tb.Item(1).Text() != "Feed" {
		t.Fatalf("second label = %q, want Feed", tb.Item(1).Text())
	}
}

func TestNewTabs_RequiresLabels(t *testing.T) {
	h := uitest.New()
	if _, err := widgets.NewTabs(testEnv(h), widgets.TabsOptions{}); err == nil {
		t.Fatal("expected error for zero labels")
	}
}

func TestNewTabs_OutOfRangeActiveWarnsAndFallsBack(t *testing.T) {
	h := uitest.New()
	rec := uitest.Capture(t)

	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b"}, Active: 7})
	if tb.Active() != 0 {
		t.Fatalf("Active() = %d, want fallback 0", tb.Active())
	}
	if len(rec.Warnings()) != 1 {
		t.Fatalf("warnings = %d, want 1", len(rec.Warnings()))
	}
}

func TestTabs_ClickActivates(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b", "c"}})

	var changes []int
	tb.OnChange(func(i int) { changes = append(changes, i) })

	h.Click(tb.Item(2), 5, 5)
	if tb.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", tb.Active())
	}
	if !tb.Item(2).HasClass("tide-tabs-item--active") {
		t.Fatal("clicked item missing active modifier")
	}
	if tb.Item(0).HasClass("tide-tabs-item--active") {
		t.Fatal("previous item kept active modifier")
	}
	if v, _ := tb.Item(0).Attribute("aria-selected"); v != "false" {
		t.Fatalf("previous item aria-selected = %q, want false", v)
	}
	if len(changes) != 1 || changes[0] != 2 {
		t.Fatalf("changes = %v, want [2]", changes)
	}
}

func TestTabs_ActivateSameIndexEmitsNothing(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b"}})

	var changes int
	tb.OnChange(func(int) { changes++ })

	tb.Activate(0)
	h.Click(tb.Item(0), 5, 5)
	if changes != 0 {
		t.Fatalf("changes = %d, want 0", changes)
	}
}

func TestTabs_ActivateOutOfRangeIsNoOp(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b"}})

	tb.Activate(-1)
	tb.Activate(2)
	if tb.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", tb.Active())
	}
}

func TestTabs_SwipeLeftAdvances(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b", "c"}})

	host := tb.Element()
	h.TouchStart(host, 100, 10)
	h.TouchMove(host, 30, 10) // 70px left, past the swipe threshold
	h.TouchEnd(host, 30, 10)

	if tb.Active() != 1 {
		t.Fatalf("Active() = %d, want 1 after left swipe", tb.Active())
	}
}

func TestTabs_SwipeRightGoesBack(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b", "c"}, Active: 2})

	host := tb.Element()
	h.TouchStart(host, 30, 10)
	h.TouchMove(host, 100, 10)
	h.TouchEnd(host, 100, 10)

	if tb.Active() != 1 {
		t.Fatalf("Active() = %d, want 1 after right swipe", tb.Active())
	}
}

func TestTabs_SwipeClampsAtEnds(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b"}})

	host := tb.Element()
	h.TouchStart(host, 30, 10)
	h.TouchMove(host, 100, 10) // right swipe at the first tab
	h.TouchEnd(host, 100, 10)
	if tb.Active() != 0 {
		t.Fatalf("Active() = %d, want 0 (clamped)", tb.Active())
	}

	tb.Activate(1)
	h.TouchStart(host, 100, 10)
	h.TouchMove(host, 30, 10) // left swipe at the last tab
	h.TouchEnd(host, 30, 10)
	if tb.Active() != 1 {
		t.Fatalf("Active() = %d, want 1 (clamped)", tb.Active())
	}
}

func TestTabs_ItemOutOfRangeReturnsNil(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a"}})
	if tb.Item(-1) != nil || tb.Item(1) != nil {
		t.Fatal("out-of-range Item should be nil")
	}
}

func TestTabs_OnChangeRemove(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b", "c"}})

	var calls int
	remove := tb.OnChange(func(int) { calls++ })
	tb.Activate(1)
	remove()
	tb.Activate(2)
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
}

func TestTabs_DestroyRemovesItemsAndHost(t *testing.T) {
	h := uitest.New()
	tb := newTabs(t, h, widgets.TabsOptions{Labels: []string{"a", "b"}})
	h.Doc.Body().AppendChild(tb.Element())

	tb.Destroy()
	if tb.Element().Attached() {
		t.Fatal("host still attached after destroy")
	}
	if got := uitest.CountByClass(h.Doc.Body(), "tide-tabs-item"); got != 0 {
		t.Fatalf("items left in document = %d, want 0", got)
	}
	tb.Destroy() // idempotent
}
