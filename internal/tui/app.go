// Package tui hosts the library view in a Bubble Tea program. The program
// owns one document; key presses become clicks, changes and submits on its
// elements, and every frame is drawn from the element tree.
package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/library/internal/dom"
	"github.com/idilsaglam/library/internal/library"
	"github.com/idilsaglam/library/internal/view"
)

// Options tune the TUI.
type Options struct {
	Logger *slog.Logger
}

// App is the Bubble Tea model.
type App struct {
	doc   *dom.Document
	page  *view.Page
	view  *view.View
	lib   *library.Library
	form  *formFields
	sched *tickScheduler

	listKeys listKeyMap
	formKeys formKeyMap
	help     help.Model

	// cursor indexes focusables(): the rendered units, then the add slot.
	cursor int
	offset int
	field  int

	width, height int
	quitting      bool
}

// New builds the page, wires the view to lib and renders it. lib must
// already be loaded.
func New(lib *library.Library, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{
		doc:      dom.NewDocument(),
		lib:      lib,
		form:     newFormFields(),
		sched:    newTickScheduler(),
		listKeys: newListKeyMap(),
		formKeys: newFormKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	a.page = view.NewPage(a.doc)
	a.view = view.New(a.doc, a.page, lib, a.form, a.sched, view.WithLogger(logger))
	a.view.RenderAll()
	a.scroll()
	return a
}

// Run starts the interactive program. Every mutation is persisted as it
// happens, so there is nothing to save on exit.
func Run(lib *library.Library, opts Options) error {
	p := tea.NewProgram(New(lib, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
	case timerFiredMsg:
		a.sched.fire(msg.seq)
	case tea.KeyMsg:
		var cmd tea.Cmd
		if a.view.State() == view.ModalVisible {
			cmd = a.updateForm(msg)
		} else {
			cmd = a.updateList(msg)
		}
		cmds = append(cmds, cmd)
	}
	a.scroll()
	cmds = append(cmds, a.sched.drain()...)
	return a, tea.Batch(cmds...)
}

// focusables returns the elements the list cursor can rest on.
func (a *App) focusables() []*dom.Node {
	return append(a.view.Units(), a.page.AddButton)
}

func (a *App) clampCursor() {
	n := len(a.focusables())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) selectedUnit() (view.Unit, bool) {
	a.clampCursor()
	return a.view.UnitFor(a.focusables()[a.cursor])
}

func (a *App) click(n *dom.Node) { a.doc.Dispatch(n, dom.NewEvent(dom.Click)) }

func (a *App) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.listKeys.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, a.listKeys.Up):
		a.cursor--
		a.clampCursor()
	case key.Matches(msg, a.listKeys.Down):
		a.cursor++
		a.clampCursor()
	case key.Matches(msg, a.listKeys.Toggle):
		if u, ok := a.selectedUnit(); ok {
			u.ReadToggle.Checked = !u.ReadToggle.Checked
			a.doc.Dispatch(u.ReadToggle, dom.NewEvent(dom.Change))
		}
	case key.Matches(msg, a.listKeys.Remove):
		if u, ok := a.selectedUnit(); ok {
			a.click(u.Remove)
			a.clampCursor()
		}
	case key.Matches(msg, a.listKeys.Add):
		if msg.String() == "enter" {
			if _, onUnit := a.selectedUnit(); onUnit {
				return nil
			}
		}
		a.cursor = len(a.focusables()) - 1
		a.click(a.page.AddButton)
		if a.view.State() == view.ModalVisible {
			return a.focusField(fieldTitle)
		}
	}
	return nil
}

func (a *App) updateForm(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, a.formKeys.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, a.formKeys.Close):
		a.click(a.page.FormContainer)
	case key.Matches(msg, a.formKeys.Next):
		return a.focusField((a.field + 1) % fieldCount)
	case key.Matches(msg, a.formKeys.Prev):
		return a.focusField((a.field + fieldCount - 1) % fieldCount)
	case key.Matches(msg, a.formKeys.Enter):
		switch a.field {
		case fieldRead:
			a.toggleFormRead()
		case fieldCancel:
			a.click(a.page.Cancel)
		default:
			a.doc.Dispatch(a.page.Form, dom.NewEvent(dom.Submit))
			a.cursor = len(a.focusables()) - 1
		}
	case key.Matches(msg, a.formKeys.Toggle) && a.field >= fieldRead:
		switch a.field {
		case fieldRead:
			a.toggleFormRead()
		case fieldSubmit:
			a.doc.Dispatch(a.page.Form, dom.NewEvent(dom.Submit))
			a.cursor = len(a.focusables()) - 1
		case fieldCancel:
			a.click(a.page.Cancel)
		}
	default:
		cmd = a.form.update(a.field, msg)
	}
	if a.view.State() == view.ModalHidden {
		a.form.blur()
	}
	return cmd
}

// focusField moves form focus to field i. Focusing a field is a click on it,
// which lands inside the form. The cancel button only takes focus: a click
// there would press it.
func (a *App) focusField(i int) tea.Cmd {
	a.field = i
	if i != fieldCancel {
		a.click(a.page.FormFields()[i])
	}
	return a.form.focus(i)
}

func (a *App) toggleFormRead() {
	a.form.read = !a.form.read
	a.page.ReadCheckbox.Checked = a.form.read
	a.doc.Dispatch(a.page.ReadCheckbox, dom.NewEvent(dom.Change))
}
