// Package ripple spawns and retires animated press-feedback nodes.
//
// A Manager owns the feedback state for any number of host elements. Mount
// installs a spawner on a host; every mousedown then grows an ink node from
// the pointer position, sized to cover the host. Release is document-scoped:
// the node starts fading on the first of mouseup or mouseleave anywhere on
// the page, and is removed once the fade duration elapses.
//
// The manager tracks every node, document listener and timer it creates, and
// Unmount sweeps all of them unconditionally. Nothing the manager spawns
// survives its host's unmount, whatever state its animation was in.
package ripple

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/go-tide/tide/pkg/clock"
	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
)

// DefaultDuration is the fade-out length used when Options.Duration is zero.
const DefaultDuration = 300 * time.Millisecond

// Options configures a Manager.
type Options struct {
	// Duration is how long a released node keeps its fade-out class before
	// it is removed. Zero means DefaultDuration.
	Duration time.Duration
	// Color is applied inline as the node's background color. Empty leaves
	// coloring to the stylesheet.
	Color string
	// Prefix namespaces the manager's class names. Empty means
	// core.DefaultPrefix; the With enhancer fills it from the entity.
	Prefix string
}

// Manager spawns press feedback on mounted hosts and guarantees its removal.
type Manager struct {
	sched    clock.Scheduler
	duration time.Duration
	color    string

	containerClass string
	nodeClass      string
	activeClass    string
	fadeClass      string

	mu    sync.Mutex
	hosts map[*dom.Element]*hostState
}

// hostState is everything the manager holds for one mounted host. Hosts are
// tracked in a plain map; the sweep in Unmount, not a weak reference, is
// what keeps entries from outliving their host.
type hostState struct {
	container     *dom.Element
	removeSpawner func()
	inks          map[*dom.Element]*ink
}

// ink is one in-flight feedback node's pending work: the activation frame,
// the one-shot document listener pair and, once released, the fade timer.
type ink struct {
	cancelFrame func()
	removeUp    func()
	removeLeave func()
	cancelFade  func()
	released    bool
}

// NewManager returns a Manager scheduling against sched. A nil scheduler
// means the wall clock.
func NewManager(sched clock.Scheduler, opts Options) *Manager {
	if sched == nil {
		sched = clock.NewWall()
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Prefix == "" {
		opts.Prefix = core.DefaultPrefix
	}
	node := opts.Prefix + "-ripple"
	return &Manager{
		sched:          sched,
		duration:       opts.Duration,
		color:          opts.Color,
		containerClass: node + "-container",
		nodeClass:      node,
		activeClass:    core.ModifierClass(node, "active"),
		fadeClass:      core.ModifierClass(node, "fade-out"),
		hosts:          make(map[*dom.Element]*hostState),
	}
}

// Mount prepares host to spawn feedback: it ensures a container child
// exists, forces a relative positioning context on statically-positioned
// hosts and installs the mousedown spawner. Mounting an already-mounted
// host is a no-op.
func (m *Manager) Mount(host *dom.Element) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hosts[host]; ok {
		return
	}

	container := childByClass(host, m.containerClass)
	if container == nil {
		container = host.Document().CreateElement("div")
		container.AddClass(m.containerClass)
		host.AppendChild(container)
	}
	if pos := host.Style("position"); pos == "" || pos == "static" {
		host.SetStyle("position", "relative")
	}

	hs := &hostState{container: container, inks: make(map[*dom.Element]*ink)}
	hs.removeSpawner = host.AddEventListener("mousedown", func(evt *dom.Event) {
		m.spawn(host, evt)
	})
	m.hosts[host] = hs
}

// Unmount sweeps every trace of the manager from host: the spawner, all
// in-flight nodes with their document listeners and fade timers, and the
// container itself. Safe to call on a host that was never mounted.
func (m *Manager) Unmount(host *dom.Element) {
	m.mu.Lock()
	hs, ok := m.hosts[host]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(m.hosts, host)
	m.mu.Unlock()

	hs.removeSpawner()
	for node, in := range hs.inks {
		in.cancelFrame()
		in.removeUp()
		in.removeLeave()
		if in.cancelFade != nil {
			in.cancelFade()
		}
		node.Remove()
	}
	hs.container.Remove()
}

// spawn grows one feedback node from the pointer position. The diameter is
// twice the host's larger dimension so the node covers the host from any
// click point.
func (m *Manager) spawn(host *dom.Element, evt *dom.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hs, ok := m.hosts[host]
	if !ok {
		return
	}

	bounds := host.BoundingRect()
	diameter := 2 * math.Max(bounds.Width, bounds.Height)
	node := host.Document().CreateElement("span")
	node.AddClass(m.nodeClass)
	node.SetStyle("width", px(diameter))
	node.SetStyle("height", px(diameter))
	node.SetStyle("left", px(evt.X-bounds.X-diameter/2))
	node.SetStyle("top", px(evt.Y-bounds.Y-diameter/2))
	if m.color != "" {
		node.SetStyle("background-color", m.color)
	}
	hs.container.AppendChild(node)
	// Reading the bounds back is the layout flush that makes the
	// activation class transition instead of applying instantly.
	_ = node.BoundingRect()

	in := &ink{}
	in.cancelFrame = m.sched.RequestFrame(func() {
		node.AddClass(m.activeClass)
	})
	doc := host.Document()
	release := func(*dom.Event) { m.release(host, node) }
	in.removeUp = doc.AddEventListener("mouseup", release)
	in.removeLeave = doc.AddEventListener("mouseleave", release)
	hs.inks[node] = in
}

// release starts a node's fade-out. It runs once per node: the first of
// mouseup or mouseleave wins and removes both listeners.
func (m *Manager) release(host, node *dom.Element) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hs, ok := m.hosts[host]
	if !ok {
		return
	}
	in, ok := hs.inks[node]
	if !ok || in.released {
		return
	}
	in.released = true
	in.cancelFrame()
	in.removeUp()
	in.removeLeave()
	node.RemoveClass(m.activeClass)
	node.AddClass(m.fadeClass)
	in.cancelFade = m.sched.AfterFunc(m.duration, func() {
		m.retire(host, node)
	})
}

// retire removes a fully faded node and drops it from tracking.
func (m *Manager) retire(host, node *dom.Element) {
	m.mu.Lock()
	hs, ok := m.hosts[host]
	if !ok {
		m.mu.Unlock()
		return
	}
	if _, ok := hs.inks[node]; !ok {
		m.mu.Unlock()
		return
	}
	delete(hs.inks, node)
	m.mu.Unlock()
	node.Remove()
}

func childByClass(host *dom.Element, class string) *dom.Element {
	for _, child := range host.Children() {
		if child.HasClass(class) {
			return child
		}
	}
	return nil
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
