package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form field positions, matching view.Page.FormFields.
const (
	fieldTitle = iota
	fieldAuthor
	fieldPages
	fieldRead
	fieldSubmit
	fieldCancel
	fieldCount
)

// formFields holds the add-book form's input state and serves as the view's
// FormInput.
type formFields struct {
	inputs [fieldRead]textinput.Model
	read   bool
}

func newFormFields() *formFields {
	f := &formFields{}
	placeholders := [fieldRead]string{"Title", "Author", "Pages"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		f.inputs[i] = ti
	}
	f.inputs[fieldPages].CharLimit = 12
	return f
}

func (f *formFields) Title() string  { return f.inputs[fieldTitle].Value() }
func (f *formFields) Author() string { return f.inputs[fieldAuthor].Value() }
func (f *formFields) Pages() string  { return f.inputs[fieldPages].Value() }
func (f *formFields) Read() bool     { return f.read }

func (f *formFields) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.read = false
}

// focus gives keyboard focus to field i, blurring the others.
func (f *formFields) focus(i int) tea.Cmd {
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *formFields) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *formFields) update(i int, msg tea.Msg) tea.Cmd {
	if i < 0 || i >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[i], cmd = f.inputs[i].Update(msg)
	return cmd
}
