package view

import "github.com/idilsaglam/library/internal/dom"

// Element ids of the fixed page markup.
const (
	IDLibrary            = "library"
	IDAddButtonContainer = "addBookButtonContainer"
	IDAddButton          = "addBookButton"
	IDFormContainer      = "bookFormContainer"
	IDForm               = "bookForm"
	IDFormTitle          = "formTitle"
	IDFormAuthor         = "formAuthor"
	IDFormPages          = "formPages"
	IDFormReadCheckbox   = "formReadCheckbox"
	IDFormReadLabel      = "formReadLabel"
	IDSubmit             = "submit"
	IDCancel             = "cancel"
)

// Page holds the elements of the static markup the view renders into.
type Page struct {
	Library            *dom.Node
	AddButtonContainer *dom.Node
	AddButton          *dom.Node

	// FormContainer is the backdrop around Form.
	FormContainer *dom.Node
	Form          *dom.Node
	TitleInput    *dom.Node
	AuthorInput   *dom.Node
	PagesInput    *dom.Node
	ReadCheckbox  *dom.Node
	ReadLabel     *dom.Node
	Submit        *dom.Node
	Cancel        *dom.Node
}

// FormFields returns the focusable form elements in tab order.
func (p *Page) FormFields() []*dom.Node {
	return []*dom.Node{p.TitleInput, p.AuthorInput, p.PagesInput, p.ReadCheckbox, p.Submit, p.Cancel}
}

// NewPage builds the page markup and attaches it to doc's body.
func NewPage(doc *dom.Document) *Page {
	mk := func(tag, id string, classes ...string) *dom.Node {
		n := doc.CreateElement(tag, classes...)
		n.ID = id
		return n
	}

	p := &Page{
		Library:            mk("div", IDLibrary),
		AddButtonContainer: mk("div", IDAddButtonContainer),
		AddButton:          mk("button", IDAddButton),
		FormContainer:      mk("div", IDFormContainer),
		Form:               mk("form", IDForm),
		TitleInput:         mk("input", IDFormTitle),
		AuthorInput:        mk("input", IDFormAuthor),
		PagesInput:         mk("input", IDFormPages),
		ReadCheckbox:       mk("input", IDFormReadCheckbox),
		ReadLabel:          mk("label", IDFormReadLabel),
		Submit:             mk("button", IDSubmit),
		Cancel:             mk("button", IDCancel),
	}
	p.AddButton.Text = "+"
	p.Submit.Text = "Add book"
	p.Cancel.Text = "Cancel"

	body := doc.Body()
	body.AppendChild(p.Library)
	p.Library.AppendChild(p.AddButtonContainer)
	p.AddButtonContainer.AppendChild(p.AddButton)

	body.AppendChild(p.FormContainer)
	p.FormContainer.AppendChild(p.Form)
	for _, n := range []*dom.Node{p.TitleInput, p.AuthorInput, p.PagesInput, p.ReadCheckbox, p.ReadLabel, p.Submit, p.Cancel} {
		p.Form.AppendChild(n)
	}
	return p
}
