package view

import (
	"github.com/idilsaglam/library/internal/dom"
	"github.com/idilsaglam/library/internal/model"
)

// target resolves the rendered unit enclosing an event target. The record's
// position is looked up by identity at the time of the action; the stamped
// index is display state only.
func (v *View) target(ev *dom.Event) (*dom.Node, *rendered, int) {
	root := ev.Target.ClosestAncestorWithClass(ClassBook)
	if root == nil {
		return nil, nil, -1
	}
	r, ok := v.units[root]
	if !ok {
		return nil, nil, -1
	}
	return root, r, v.lib.IndexOf(r.book)
}

func (v *View) onToggleRead(ev *dom.Event) {
	_, r, i := v.target(ev)
	if r == nil {
		return
	}
	if _, err := v.lib.SetIsRead(i, ev.Target.Checked); err != nil {
		v.fail("toggle read", err)
	}
	applyReadState(r.unit, r.book)
}

func (v *View) onRemove(ev *dom.Event) {
	root, _, i := v.target(ev)
	if root == nil {
		return
	}
	removed, err := v.lib.RemoveAt(i)
	if err != nil {
		v.fail("remove", err)
	}
	if !removed {
		return
	}
	root.Remove()
	delete(v.units, root)
	v.restamp()
}

func (v *View) onSubmit(ev *dom.Event) {
	ev.PreventDefault()
	b := model.NewBook(v.form.Title(), v.form.Author(), model.ParsePages(v.form.Pages()), v.form.Read())
	if err := v.lib.Add(b); err != nil {
		v.fail("add", err)
	}
	v.RenderOne(b)
	v.Hide()
}
