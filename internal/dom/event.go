package dom

// Event types dispatched by the view.
const (
	Click  = "click"
	Change = "change"
	Submit = "submit"
)

// Event is a dispatched event. Target is the node it was dispatched on;
// CurrentTarget is the node whose listener is running (nil for document
// listeners).
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node

	defaultPrevented bool
	stopped          bool
}

// NewEvent returns an event of the given type.
func NewEvent(typ string) *Event { return &Event{Type: typ} }

func (e *Event) PreventDefault()        { e.defaultPrevented = true }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
func (e *Event) StopPropagation()       { e.stopped = true }

// Handler handles an event.
type Handler func(*Event)

// ListenerID identifies a registered listener so it can be removed later.
// The zero value never identifies a listener.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Handler
}

// AddEventListener registers fn for typ events reaching n.
func (n *Node) AddEventListener(typ string, fn Handler) ListenerID {
	if n.listeners == nil {
		n.listeners = make(map[string][]listener)
	}
	id := n.doc.nextListenerID()
	n.listeners[typ] = append(n.listeners[typ], listener{id: id, fn: fn})
	return id
}

// RemoveEventListener unregisters a listener. Unknown ids are ignored.
func (n *Node) RemoveEventListener(typ string, id ListenerID) {
	if n.listeners == nil {
		return
	}
	n.listeners[typ] = removeListener(n.listeners[typ], id)
}

// HasEventListener reports whether id is registered on n for typ.
func (n *Node) HasEventListener(typ string, id ListenerID) bool {
	return hasListener(n.listeners[typ], id)
}

func removeListener(ls []listener, id ListenerID) []listener {
	out := ls[:0:0]
	for _, l := range ls {
		if l.id != id {
			out = append(out, l)
		}
	}
	return out
}

func hasListener(ls []listener, id ListenerID) bool {
	for _, l := range ls {
		if l.id == id {
			return true
		}
	}
	return false
}

// invoke runs a snapshot of the listeners so that handlers may add or
// remove listeners while the event is being delivered.
func invoke(ls []listener, ev *Event) {
	snapshot := append([]listener(nil), ls...)
	for _, l := range snapshot {
		l.fn(ev)
	}
}
