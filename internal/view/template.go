package view

import (
	"github.com/google/uuid"

	"github.com/idilsaglam/library/internal/dom"
)

// Classes the view relies on.
const (
	ClassBook       = "book"
	ClassNotRead    = "notRead"
	ClassReadToggle = "bookReadCheckbox"
	ClassRemove     = "bookRemoveButton"

	classTitle  = "bookTitle"
	classAuthor = "bookAuthor"
	classPages  = "bookPages"
)

// Unit is one rendered book: its root element plus the slots the view fills
// and the controls it wires.
type Unit struct {
	Root       *dom.Node
	Title      *dom.Node
	Author     *dom.Node
	Pages      *dom.Node
	ReadToggle *dom.Node
	Remove     *dom.Node
}

// Template produces fresh, detached units.
type Template interface {
	Clone() Unit
}

type protoTemplate struct {
	proto *dom.Node
}

// NewTemplate returns the default book template for doc. Every clone gets a
// unique element id.
func NewTemplate(doc *dom.Document) Template {
	root := doc.CreateElement("div", ClassBook)
	root.AppendChild(doc.CreateElement("p", classTitle))
	root.AppendChild(doc.CreateElement("p", classAuthor))
	root.AppendChild(doc.CreateElement("p", classPages))

	controls := doc.CreateElement("div", "bookControls")
	controls.AppendChild(doc.CreateElement("input", ClassReadToggle))
	remove := doc.CreateElement("button", ClassRemove)
	remove.Text = "Remove"
	controls.AppendChild(remove)
	root.AppendChild(controls)

	return protoTemplate{proto: root}
}

func (t protoTemplate) Clone() Unit {
	root := t.proto.Clone()
	root.ID = "book-" + uuid.NewString()
	return Unit{
		Root:       root,
		Title:      root.FindByClass(classTitle),
		Author:     root.FindByClass(classAuthor),
		Pages:      root.FindByClass(classPages),
		ReadToggle: root.FindByClass(ClassReadToggle),
		Remove:     root.FindByClass(ClassRemove),
	}
}
