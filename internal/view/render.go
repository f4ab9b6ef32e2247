package view

import (
	"fmt"
	"strconv"

	"github.com/idilsaglam/library/internal/dom"
	"github.com/idilsaglam/library/internal/model"
)

// DataIndex is the data attribute holding a unit's position in the library.
const DataIndex = "library-index"

// RenderAll renders every book in library order.
func (v *View) RenderAll() {
	for _, b := range v.lib.List() {
		v.RenderOne(b)
	}
}

// RenderOne renders b as the last unit, ahead of the add button, and returns
// the unit's root.
func (v *View) RenderOne(b *model.Book) *dom.Node {
	u := v.tmpl.Clone()
	u.Root.AddClass(ClassBook)
	u.Title.Text = b.Title
	u.Author.Text = b.Author
	u.Pages.Text = fmt.Sprintf("%s pages", b.Pages)
	applyReadState(u, b)

	u.ReadToggle.AddEventListener(dom.Change, v.onToggleRead)
	u.Remove.AddEventListener(dom.Click, v.onRemove)

	stamp(u.Root, v.lib.IndexOf(b))
	v.units[u.Root] = &rendered{unit: u, book: b}
	v.page.Library.InsertBefore(u.Root, v.page.AddButtonContainer)
	return u.Root
}

// Units returns the rendered unit roots in display order.
func (v *View) Units() []*dom.Node {
	var out []*dom.Node
	for _, n := range v.page.Library.Children() {
		if _, ok := v.units[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// BookFor returns the record rendered by unit, or nil.
func (v *View) BookFor(unit *dom.Node) *model.Book {
	if r, ok := v.units[unit]; ok {
		return r.book
	}
	return nil
}

// UnitFor returns the slots of a rendered unit.
func (v *View) UnitFor(root *dom.Node) (Unit, bool) {
	r, ok := v.units[root]
	if !ok {
		return Unit{}, false
	}
	return r.unit, true
}

// StampedIndex returns the index stamped on unit at render time.
func StampedIndex(unit *dom.Node) (int, bool) {
	s, ok := unit.Data(DataIndex)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

func stamp(unit *dom.Node, index int) {
	unit.SetData(DataIndex, strconv.Itoa(index))
}

// restamp brings every unit's stamped index back to its record's position.
func (v *View) restamp() {
	for _, n := range v.Units() {
		stamp(n, v.lib.IndexOf(v.units[n].book))
	}
}

// applyReadState derives the unit's read styling from the record alone.
func applyReadState(u Unit, b *model.Book) {
	u.ReadToggle.Checked = b.IsRead
	u.Root.SetClass(ClassNotRead, !b.IsRead)
}
