package dom

import "sync"

// Document owns a tree of elements and the document-level listener list.
// All elements created from a document share its lock.
type Document struct {
	mu        sync.Mutex
	body      *Element
	touch     bool
	listeners map[string][]*listener
}

// Option configures a Document at construction.
type Option func(*Document)

// WithTouchSupport marks the document as touch-capable. Interactive widgets
// only attach their touch listeners on touch-capable documents.
func WithTouchSupport(enabled bool) Option {
	return func(d *Document) { d.touch = enabled }
}

// NewDocument returns an empty document with a body element.
func NewDocument(opts ...Option) *Document {
	d := &Document{listeners: make(map[string][]*listener)}
	for _, opt := range opts {
		opt(d)
	}
	d.body = newElement(d, "body")
	return d
}

// Body returns the root element of the document tree.
func (d *Document) Body() *Element { return d.body }

// TouchEnabled reports whether the document was built with touch support.
func (d *Document) TouchEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.touch
}

// CreateElement returns a new detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return newElement(d, tag)
}

// AddEventListener registers fn for events of the given type that reach the
// document. The returned func removes the listener and is idempotent.
func (d *Document) AddEventListener(typ string, fn func(*Event)) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	l := &listener{fn: fn}
	d.listeners[typ] = append(d.listeners[typ], l)
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		l.removed = true
		d.listeners[typ] = pruneListeners(d.listeners[typ])
	}
}

// ListenerCount reports the number of live document-level listeners for typ.
func (d *Document) ListenerCount(typ string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, l := range d.listeners[typ] {
		if !l.removed {
			n++
		}
	}
	return n
}

// DispatchToDocument delivers an event to document-level listeners only,
// without an element target. Used for document-scoped signals such as the
// pointer leaving the page.
func (d *Document) DispatchToDocument(evt *Event) {
	d.mu.Lock()
	snapshot := append([]*listener(nil), d.listeners[evt.Type]...)
	d.mu.Unlock()
	invoke(d, snapshot, evt)
}

func pruneListeners(ls []*listener) []*listener {
	kept := ls[:0]
	for _, l := range ls {
		if !l.removed {
			kept = append(kept, l)
		}
	}
	return kept
}
