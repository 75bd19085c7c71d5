package ripple_test

import (
	"testing"
	"time"

	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/element"
	"github.com/go-tide/tide/pkg/ripple"
	"github.com/go-tide/tide/pkg/uitest"
)

// newHost returns a manager and a mounted host sized 200x40 at (20, 30).
func newHost(h *uitest.Harness, opts ripple.Options) (*ripple.Manager, *dom.Element) {
	host := h.Doc.CreateElement("button")
	host.SetBounds(dom.Rect{X: 20, Y: 30, Width: 200, Height: 40})
	h.Doc.Body().AppendChild(host)
	m := ripple.NewManager(h.Clock, opts)
	m.Mount(host)
	return m, host
}

func container(t *testing.T, host *dom.Element) *dom.Element {
	t.Helper()
	c := host.QueryByClass("tide-ripple-container")
	if c == nil {
		t.Fatal("expected a ripple container inside the host")
	}
	return c
}

func TestMount_CreatesContainerAndPositioningContext(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{})

	c := container(t, host)
	if c.Parent() != host {
		t.Error("expected the container to be a direct child of the host")
	}
	if got := host.Style("position"); got != "relative" {
		t.Errorf("expected relative positioning forced, got %q", got)
	}
}

func TestMount_KeepsExplicitPositioning(t *testing.T) {
	h := uitest.New()
	host := h.Doc.CreateElement("button")
	host.SetStyle("position", "absolute")
	h.Doc.Body().AppendChild(host)

	ripple.NewManager(h.Clock, ripple.Options{}).Mount(host)

	if got := host.Style("position"); got != "absolute" {
		t.Errorf("expected explicit positioning kept, got %q", got)
	}
}

func TestMount_AdoptsExistingContainer(t *testing.T) {
	h := uitest.New()
	host := h.Doc.CreateElement("button")
	h.Doc.Body().AppendChild(host)
	existing := h.Doc.CreateElement("div")
	existing.AddClass("tide-ripple-container")
	host.AppendChild(existing)

	m := ripple.NewManager(h.Clock, ripple.Options{})
	m.Mount(host)

	if got := len(host.Children()); got != 1 {
		t.Fatalf("expected the existing container adopted, got %d children", got)
	}

	h.MouseDown(host, 5, 5)
	if got := len(existing.Children()); got != 1 {
		t.Errorf("expected the spawned node inside the adopted container, got %d", got)
	}
}

func TestMount_Idempotent(t *testing.T) {
	h := uitest.New()
	m, host := newHost(h, ripple.Options{})
	m.Mount(host)

	if got := len(host.Children()); got != 1 {
		t.Errorf("expected one container after double mount, got %d children", got)
	}
	if got := host.ListenerCount("mousedown"); got != 1 {
		t.Errorf("expected one spawner after double mount, got %d", got)
	}
}

func TestSpawn_OneNodeSizedToCoverHost(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{})

	h.MouseDown(host, 120, 50)

	nodes := host.QueryAllByClass("tide-ripple")
	if len(nodes) != 1 {
		t.Fatalf("expected exactly one feedback node, got %d", len(nodes))
	}
	node := nodes[0]
	if node.Parent() != container(t, host) {
		t.Error("expected the node inside the ripple container")
	}

	// Diameter is twice the larger host dimension; the node is centered on
	// the pointer relative to the host's bounds.
	if got := node.Style("width"); got != "400px" {
		t.Errorf("expected width 400px, got %q", got)
	}
	if got := node.Style("height"); got != "400px" {
		t.Errorf("expected height 400px, got %q", got)
	}
	if got := node.Style("left"); got != "-100px" {
		t.Errorf("expected left -100px, got %q", got)
	}
	if got := node.Style("top"); got != "-180px" {
		t.Errorf("expected top -180px, got %q", got)
	}
}

func TestSpawn_ActivatesOnNextFrame(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{})

	h.MouseDown(host, 120, 50)
	node := host.QueryByClass("tide-ripple")

	if node.HasClass("tide-ripple--active") {
		t.Error("expected activation deferred to the next frame")
	}
	h.FlushFrames()
	if !node.HasClass("tide-ripple--active") {
		t.Error("expected the active class after the frame flush")
	}
}

func TestSpawn_AppliesColor(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{Color: "rgba(103, 58, 183, 0.25)"})

	h.MouseDown(host, 120, 50)
	node := host.QueryByClass("tide-ripple")

	if got := node.Style("background-color"); got != "rgba(103, 58, 183, 0.25)" {
		t.Errorf("expected inline ink color, got %q", got)
	}
}

func TestRelease_FadesThenRemoves(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{})

	h.MouseDown(host, 120, 50)
	h.FlushFrames()
	node := host.QueryByClass("tide-ripple")

	h.DocMouseUp()

	if node.HasClass("tide-ripple--active") {
		t.Error("expected the active class removed on release")
	}
	if !node.HasClass("tide-ripple--fade-out") {
		t.Error("expected the fade-out class on release")
	}
	if node.Parent() == nil {
		t.Fatal("expected the node kept until the fade elapses")
	}

	h.Advance(ripple.DefaultDuration)

	if node.Parent() != nil {
		t.Error("expected the node removed after the fade duration")
	}
	if got := uitest.CountByClass(host, "tide-ripple"); got != 0 {
		t.Errorf("expected no nodes left, got %d", got)
	}
	if got := h.Clock.TimerCount(); got != 0 {
		t.Errorf("expected no pending timers, got %d", got)
	}
}

func TestRelease_MouseLeaveAlsoReleases(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{})

	h.MouseDown(host, 120, 50)
	node := host.QueryByClass("tide-ripple")

	h.DocMouseLeave()

	if !node.HasClass("tide-ripple--fade-out") {
		t.Error("expected mouseleave to start the fade")
	}
}

func TestRelease_DocumentListenersAreOneShot(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{})

	h.MouseDown(host, 120, 50)

	if up, leave := h.Doc.ListenerCount("mouseup"), h.Doc.ListenerCount("mouseleave"); up != 1 || leave != 1 {
		t.Fatalf("expected one listener of each kind, got mouseup=%d mouseleave=%d", up, leave)
	}

	h.DocMouseUp()

	if up, leave := h.Doc.ListenerCount("mouseup"), h.Doc.ListenerCount("mouseleave"); up != 0 || leave != 0 {
		t.Errorf("expected both listeners removed by the first release, got mouseup=%d mouseleave=%d", up, leave)
	}

	// A second release signal has nothing left to do.
	h.DocMouseLeave()
	h.DocMouseUp()
}

func TestRelease_CustomDuration(t *testing.T) {
	h := uitest.New()
	_, host := newHost(h, ripple.Options{Duration: 100 * time.Millisecond})

	h.MouseDown(host, 120, 50)
	node := host.QueryByClass("tide-ripple")
	h.DocMouseUp()

	h.Advance(99 * time.Millisecond)
	if node.Parent() == nil {
		t.Fatal("expected the node kept before the custom duration elapses")
	}
	h.Advance(1 * time.Millisecond)
	if node.Parent() != nil {
		t.Error("expected the node removed at the custom duration")
	}
}

func TestUnmount_SweepsEverythingImmediately(t *testing.T) {
	h := uitest.New()
	m, host := newHost(h, ripple.Options{})

	// One node mid-fade, one still held down.
	h.MouseDown(host, 60, 40)
	h.DocMouseUp()
	h.MouseDown(host, 80, 44)
	fading := host.QueryByClass("tide-ripple--fade-out")
	if fading == nil {
		t.Fatal("expected a fading node before unmount")
	}

	m.Unmount(host)

	if got := uitest.CountByClass(h.Doc.Body(), "tide-ripple"); got != 0 {
		t.Errorf("expected zero nodes immediately after unmount, got %d", got)
	}
	if got := len(host.Children()); got != 0 {
		t.Errorf("expected the container removed, got %d children", got)
	}
	if got := host.ListenerCount("mousedown"); got != 0 {
		t.Errorf("expected the spawner detached, got %d listeners", got)
	}
	if up, leave := h.Doc.ListenerCount("mouseup"), h.Doc.ListenerCount("mouseleave"); up != 0 || leave != 0 {
		t.Errorf("expected document listeners swept, got mouseup=%d mouseleave=%d", up, leave)
	}
	if got := h.Clock.TimerCount(); got != 0 {
		t.Errorf("expected fade timers cancelled, got %d", got)
	}
	if got := h.Clock.FrameCount(); got != 0 {
		t.Errorf("expected frame requests cancelled, got %d", got)
	}

	// Late timers, input and a second unmount have nothing to act on.
	h.Advance(time.Second)
	h.FlushFrames()
	h.MouseDown(host, 60, 40)
	m.Unmount(host)
	if got := uitest.CountByClass(h.Doc.Body(), "tide-ripple"); got != 0 {
		t.Errorf("expected no nodes after late input, got %d", got)
	}
}

func TestUnmount_UnknownHostIsNoOp(t *testing.T) {
	h := uitest.New()
	m := ripple.NewManager(h.Clock, ripple.Options{})
	m.Unmount(h.Doc.CreateElement("div"))
}

func TestManager_CustomPrefix(t *testing.T) {
	h := uitest.New()
	host := h.Doc.CreateElement("button")
	h.Doc.Body().AppendChild(host)

	m := ripple.NewManager(h.Clock, ripple.Options{Prefix: "app"})
	m.Mount(host)
	h.MouseDown(host, 1, 1)

	if host.QueryByClass("app-ripple-container") == nil {
		t.Error("expected the container class under the custom prefix")
	}
	if host.QueryByClass("app-ripple") == nil {
		t.Error("expected the node class under the custom prefix")
	}
}

func TestWith_RequiresBoundElement(t *testing.T) {
	h := uitest.New()
	_, err := core.Assemble(h.Config("button"),
		core.WithEvents(),
		ripple.With(ripple.Options{}),
	)
	if err == nil {
		t.Fatal("expected an error without the element capability")
	}
}

func TestWith_AttachesCapabilityAndTearsDown(t *testing.T) {
	h := uitest.New()
	e, err := core.Assemble(h.Config("button"),
		core.WithEvents(),
		element.Bind(element.Options{Tag: "button"}),
		ripple.With(ripple.Options{}),
		core.WithLifecycle(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Ripple == nil {
		t.Fatal("expected the ripple capability attached")
	}
	h.Doc.Body().AppendChild(e.Element)
	e.Element.SetBounds(dom.Rect{Width: 100, Height: 100})

	h.MouseDown(e.Element, 10, 10)
	if got := uitest.CountByClass(e.Element, "tide-ripple"); got != 1 {
		t.Fatalf("expected one node after mousedown, got %d", got)
	}

	host := e.Element
	e.Destroy()

	if got := uitest.CountByClass(h.Doc.Body(), "tide-ripple"); got != 0 {
		t.Errorf("expected nodes swept on destroy, got %d", got)
	}
	if host.Parent() != nil {
		t.Error("expected the host detached on destroy")
	}
	if up := h.Doc.ListenerCount("mouseup"); up != 0 {
		t.Errorf("expected document listeners swept on destroy, got %d", up)
	}
	e.Destroy()
}
