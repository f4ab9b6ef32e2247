// Package view keeps the rendered element tree in step with the library and
// runs the add-book form's show/hide state machine.
package view

import (
	"io"
	"log/slog"
	"time"

	"github.com/idilsaglam/library/internal/dom"
	"github.com/idilsaglam/library/internal/library"
	"github.com/idilsaglam/library/internal/model"
)

type rendered struct {
	unit Unit
	book *model.Book
}

// View renders a Library into a Page.
type View struct {
	doc    *dom.Document
	page   *Page
	lib    *library.Library
	form   FormInput
	sched  Scheduler
	tmpl   Template
	logger *slog.Logger

	showDelay  time.Duration
	resetDelay time.Duration

	units   map[*dom.Node]*rendered
	modal   modal
	lastErr error
}

// Option configures a View.
type Option func(*View)

// WithTemplate replaces the default book template.
func WithTemplate(t Template) Option {
	return func(v *View) { v.tmpl = t }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithDelays overrides ShowDelay and ResetDelay.
func WithDelays(show, reset time.Duration) Option {
	return func(v *View) {
		v.showDelay = show
		v.resetDelay = reset
	}
}

// New wires a view to page and starts it in the Hidden state. It does not
// render; call RenderAll once the library is loaded.
func New(doc *dom.Document, page *Page, lib *library.Library, form FormInput, sched Scheduler, opts ...Option) *View {
	v := &View{
		doc:        doc,
		page:       page,
		lib:        lib,
		form:       form,
		sched:      sched,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		showDelay:  ShowDelay,
		resetDelay: ResetDelay,
		units:      make(map[*dom.Node]*rendered),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.tmpl == nil {
		v.tmpl = NewTemplate(doc)
	}

	page.Form.AddEventListener(dom.Submit, v.onSubmit)
	page.Cancel.AddEventListener(dom.Click, v.onCancel)
	page.ReadCheckbox.AddEventListener(dom.Change, func(*dom.Event) { v.refreshReadLabel() })
	v.refreshReadLabel()
	v.enterHidden(false)
	return v
}

// Page returns the page the view renders into.
func (v *View) Page() *Page { return v.page }

// Document returns the view's document.
func (v *View) Document() *dom.Document { return v.doc }

// Library returns the library the view renders.
func (v *View) Library() *library.Library { return v.lib }

// LastError returns the most recent persistence failure, if any.
func (v *View) LastError() error { return v.lastErr }

// ClearError forgets the last failure.
func (v *View) ClearError() { v.lastErr = nil }

func (v *View) fail(op string, err error) {
	v.lastErr = err
	v.logger.Error(op+" failed", "err", err)
}

func (v *View) refreshReadLabel() {
	read := v.form.Read()
	v.page.ReadCheckbox.Checked = read
	v.page.ReadLabel.Text = ReadLabel(read)
}
