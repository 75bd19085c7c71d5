package dom

// Rect is an element's assigned geometry in page coordinates. The toolkit
// performs no layout; embedders and tests assign bounds directly.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Element is a node in a document tree.
type Element struct {
	doc       *Document
	tag       string
	parent    *Element
	children  []*Element
	classes   []string
	attrs     map[string]string
	styles    map[string]string
	text      string
	bounds    Rect
	listeners map[string][]*listener
}

func newElement(d *Document, tag string) *Element {
	return &Element{
		doc:       d,
		tag:       tag,
		attrs:     make(map[string]string),
		styles:    make(map[string]string),
		listeners: make(map[string][]*listener),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// AppendChild adds child as the last child, detaching it from any previous
// parent. Elements cannot move between documents.
func (e *Element) AppendChild(child *Element) {
	if child.doc != e.doc {
		panic("dom: element belongs to a different document")
	}
	if child == e {
		panic("dom: cannot append element to itself")
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	child.detachLocked()
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child if it is currently a child of e.
func (e *Element) RemoveChild(child *Element) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if child.parent == e {
		child.detachLocked()
	}
}

// Remove detaches the element from its parent. Listeners stay registered.
func (e *Element) Remove() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.detachLocked()
}

func (e *Element) detachLocked() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Parent returns the current parent, or nil when detached.
func (e *Element) Parent() *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return append([]*Element(nil), e.children...)
}

// Attached reports whether the element is connected to the document body.
func (e *Element) Attached() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for n := e; n != nil; n = n.parent {
		if n == e.doc.body {
			return true
		}
	}
	return false
}

// AddClass appends name to the class list if not already present.
func (e *Element) AddClass(name string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for _, c := range e.classes {
		if c == name {
			return
		}
	}
	e.classes = append(e.classes, name)
}

// RemoveClass removes name from the class list if present.
func (e *Element) RemoveClass(name string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return append([]string(nil), e.classes...)
}

// SetAttribute sets a plain attribute. Class and style have their own APIs.
func (e *Element) SetAttribute(name, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.attrs[name] = value
}

// Attribute returns the attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, ok := e.attrs[name]
	return v, ok
}

// SetStyle sets one inline style property.
func (e *Element) SetStyle(prop, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.styles[prop] = value
}

// Style returns the inline style value for prop, or "" when unset.
func (e *Element) Style(prop string) string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.styles[prop]
}

// SetText replaces the element's text content.
func (e *Element) SetText(s string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.text = s
}

// Text returns the element's text content.
func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.text
}

// SetBounds assigns the element's geometry.
func (e *Element) SetBounds(r Rect) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.bounds = r
}

// BoundingRect returns the assigned geometry.
func (e *Element) BoundingRect() Rect {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.bounds
}

// AddEventListener registers fn for events of the given type reaching this
// element. The returned func removes the listener and is idempotent.
func (e *Element) AddEventListener(typ string, fn func(*Event)) (remove func()) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	l := &listener{fn: fn}
	e.listeners[typ] = append(e.listeners[typ], l)
	return func() {
		e.doc.mu.Lock()
		defer e.doc.mu.Unlock()
		l.removed = true
		e.listeners[typ] = pruneListeners(e.listeners[typ])
	}
}

// RemoveAllListeners drops every listener registered on this element.
func (e *Element) RemoveAllListeners() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for typ, ls := range e.listeners {
		for _, l := range ls {
			l.removed = true
		}
		delete(e.listeners, typ)
	}
}

// ListenerCount reports the number of live listeners for typ on this element.
func (e *Element) ListenerCount(typ string) int {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	n := 0
	for _, l := range e.listeners[typ] {
		if !l.removed {
			n++
		}
	}
	return n
}

// QueryByClass returns the first element in the subtree (including e) with
// the given class, in depth-first order, or nil.
func (e *Element) QueryByClass(name string) *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.queryLocked(name)
}

func (e *Element) queryLocked(name string) *Element {
	for _, c := range e.classes {
		if c == name {
			return e
		}
	}
	for _, child := range e.children {
		if found := child.queryLocked(name); found != nil {
			return found
		}
	}
	return nil
}

// QueryAllByClass returns every element in the subtree (including e) with
// the given class, in depth-first order.
func (e *Element) QueryAllByClass(name string) []*Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	var out []*Element
	e.queryAllLocked(name, &out)
	return out
}

func (e *Element) queryAllLocked(name string, out *[]*Element) {
	for _, c := range e.classes {
		if c == name {
			*out = append(*out, e)
			break
		}
	}
	for _, child := range e.children {
		child.queryAllLocked(name, out)
	}
}

// Dispatch delivers evt to this element's listeners, bubbles it through the
// ancestor chain, and finishes at the document's listeners. Target defaults
// to e. Listener callbacks run outside the document lock, so they may freely
// mutate the tree and listener lists.
func (e *Element) Dispatch(evt *Event) {
	if evt.Target == nil {
		evt.Target = e
	}
	e.doc.mu.Lock()
	var hops [][]*listener
	for n := e; n != nil; n = n.parent {
		hops = append(hops, append([]*listener(nil), n.listeners[evt.Type]...))
	}
	docListeners := append([]*listener(nil), e.doc.listeners[evt.Type]...)
	e.doc.mu.Unlock()

	for _, ls := range hops {
		invoke(e.doc, ls, evt)
		if evt.stopped {
			return
		}
	}
	invoke(e.doc, docListeners, evt)
}
