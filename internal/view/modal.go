package view

import (
	"fmt"
	"time"

	"github.com/idilsaglam/library/internal/dom"
)

// ModalState is the visibility of the add-book form.
type ModalState int

const (
	ModalHidden ModalState = iota
	ModalVisible
)

func (s ModalState) String() string {
	switch s {
	case ModalHidden:
		return "hidden"
	case ModalVisible:
		return "visible"
	default:
		return fmt.Sprintf("ModalState(%d)", int(s))
	}
}

// modal owns the listeners and the single pending delayed action of the
// form's state machine. Listener ids are zero while detached. seq identifies
// the current pending action; a call carrying an older seq is ignored.
// action is the pending call itself, kept so it can be run early.
type modal struct {
	state   ModalState
	show    dom.ListenerID
	outside dom.ListenerID
	pending Timer
	action  func()
	seq     uint64
}

// State returns the current modal state.
func (v *View) State() ModalState { return v.modal.state }

// OutsideListenerAttached reports whether outside clicks are being watched.
func (v *View) OutsideListenerAttached() bool { return v.modal.outside != 0 }

// Show opens the form. It is a no-op while the form is visible.
func (v *View) Show() {
	if v.modal.state == ModalVisible {
		return
	}
	v.exitHidden()
	v.modal.state = ModalVisible
	v.enterVisible()
}

// Hide closes the form. It is a no-op while the form is hidden.
func (v *View) Hide() {
	if v.modal.state == ModalHidden {
		return
	}
	v.exitVisible()
	v.modal.state = ModalHidden
	v.enterHidden(true)
}

func (v *View) enterHidden(scheduleReset bool) {
	p := v.page
	for _, n := range []*dom.Node{p.FormContainer, p.Form} {
		n.SetStyle("visibility", "hidden")
		n.SetStyle("opacity", "0")
	}
	p.Library.RemoveStyle("filter")

	v.modal.show = p.AddButton.AddEventListener(dom.Click, func(*dom.Event) { v.Show() })
	if scheduleReset {
		v.schedule(v.resetDelay, func() {
			v.form.Reset()
			v.refreshReadLabel()
		})
	}
}

// exitHidden runs a pending form reset now rather than dropping it, so the
// form never reopens holding the previous entry.
func (v *View) exitHidden() {
	v.page.AddButton.RemoveEventListener(dom.Click, v.modal.show)
	v.modal.show = 0
	v.flushPending()
}

func (v *View) enterVisible() {
	p := v.page
	for _, n := range []*dom.Node{p.FormContainer, p.Form} {
		n.SetStyle("visibility", "visible")
		n.SetStyle("opacity", "1")
	}
	p.Library.SetStyle("filter", "blur(0.25em)")

	v.schedule(v.showDelay, func() {
		v.modal.outside = v.doc.AddEventListener(dom.Click, v.onOutsideClick)
	})
}

func (v *View) exitVisible() {
	if v.modal.outside != 0 {
		v.doc.RemoveEventListener(dom.Click, v.modal.outside)
		v.modal.outside = 0
	}
	v.cancelPending()
}

func (v *View) schedule(d time.Duration, fn func()) {
	v.cancelPending()
	seq := v.modal.seq
	v.modal.action = fn
	v.modal.pending = v.sched.After(d, func() {
		if seq != v.modal.seq {
			return
		}
		v.modal.pending = nil
		v.modal.action = nil
		fn()
	})
}

// flushPending cancels the pending delayed action and runs it immediately.
func (v *View) flushPending() {
	fn := v.modal.action
	v.cancelPending()
	if fn != nil {
		fn()
	}
}

// cancelPending drops the pending delayed action, if any.
func (v *View) cancelPending() {
	v.modal.seq++
	v.modal.action = nil
	if v.modal.pending != nil {
		v.modal.pending.Stop()
		v.modal.pending = nil
	}
}

// HasPendingAction reports whether a delayed action is scheduled.
func (v *View) HasPendingAction() bool { return v.modal.pending != nil }

func (v *View) onCancel(*dom.Event) { v.Hide() }

// onOutsideClick closes the form for any click that is not inside it, except
// that the cancel control always closes.
func (v *View) onOutsideClick(ev *dom.Event) {
	if ev.Target != v.page.Cancel && v.page.Form.Contains(ev.Target) {
		return
	}
	v.Hide()
}
