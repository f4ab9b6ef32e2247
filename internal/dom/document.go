package dom

// Document owns a tree of nodes rooted at a body element and a set of
// document-level listeners that see every bubbling event last.
type Document struct {
	body      *Node
	listeners map[string][]listener
	lastID    ListenerID
}

// NewDocument returns a document with an empty body.
func NewDocument() *Document {
	d := &Document{}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the root element.
func (d *Document) Body() *Node { return d.body }

// CreateElement returns a detached node owned by d.
func (d *Document) CreateElement(tag string, classes ...string) *Node {
	n := &Node{Tag: tag, doc: d}
	n.AddClass(classes...)
	return n
}

// GetElementByID searches the attached tree.
func (d *Document) GetElementByID(id string) *Node { return d.body.FindByID(id) }

// AddEventListener registers a document-level listener.
func (d *Document) AddEventListener(typ string, fn Handler) ListenerID {
	if d.listeners == nil {
		d.listeners = make(map[string][]listener)
	}
	id := d.nextListenerID()
	d.listeners[typ] = append(d.listeners[typ], listener{id: id, fn: fn})
	return id
}

// RemoveEventListener unregisters a document-level listener.
func (d *Document) RemoveEventListener(typ string, id ListenerID) {
	if d.listeners == nil {
		return
	}
	d.listeners[typ] = removeListener(d.listeners[typ], id)
}

// HasEventListener reports whether id is registered on the document for typ.
func (d *Document) HasEventListener(typ string, id ListenerID) bool {
	return hasListener(d.listeners[typ], id)
}

// Dispatch delivers ev to target, then to each ancestor, then to the
// document listeners, stopping early when a handler calls StopPropagation.
// It reports whether the default action was prevented.
func (d *Document) Dispatch(target *Node, ev *Event) bool {
	ev.Target = target
	for n := target; n != nil; n = n.parent {
		ev.CurrentTarget = n
		invoke(n.listeners[ev.Type], ev)
		if ev.stopped {
			return ev.defaultPrevented
		}
	}
	ev.CurrentTarget = nil
	invoke(d.listeners[ev.Type], ev)
	return ev.defaultPrevented
}

func (d *Document) nextListenerID() ListenerID {
	d.lastID++
	return d.lastID
}
