package view

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/library/internal/dom"
	"github.com/idilsaglam/library/internal/library"
	"github.com/idilsaglam/library/internal/store"
)

// manualScheduler runs scheduled calls only when the test advances time.
type manualScheduler struct {
	now   time.Duration
	calls []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) After(d time.Duration, fn func()) Timer {
	t := &manualTimer{at: s.now + d, fn: fn}
	s.calls = append(s.calls, t)
	return t
}

// Advance moves time forward and runs every due call in time order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.now += d
	for {
		due := s.due()
		if len(due) == 0 {
			return
		}
		for _, t := range due {
			t.fired = true
			t.fn()
		}
	}
}

func (s *manualScheduler) due() []*manualTimer {
	var out []*manualTimer
	for _, t := range s.calls {
		if !t.stopped && !t.fired && t.at <= s.now {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].at < out[j].at })
	return out
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, t := range s.calls {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeForm struct {
	title, author, pages string
	read                 bool
	resets               int
}

func (f *fakeForm) Title() string  { return f.title }
func (f *fakeForm) Author() string { return f.author }
func (f *fakeForm) Pages() string  { return f.pages }
func (f *fakeForm) Read() bool     { return f.read }
func (f *fakeForm) Reset() {
	f.title, f.author, f.pages, f.read = "", "", "", false
	f.resets++
}

type fixture struct {
	doc   *dom.Document
	page  *Page
	blobs *store.Memory
	lib   *library.Library
	form  *fakeForm
	sched *manualScheduler
	view  *View
}

// newFixture builds a seeded library rendered into a fresh page.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		doc:   dom.NewDocument(),
		blobs: store.NewMemory(),
		form:  &fakeForm{},
		sched: &manualScheduler{},
	}
	f.lib = library.New(f.blobs)
	_, err := f.lib.Load()
	require.NoError(t, err)

	f.page = NewPage(f.doc)
	f.view = New(f.doc, f.page, f.lib, f.form, f.sched)
	f.view.RenderAll()
	return f
}

func (f *fixture) click(n *dom.Node) { f.doc.Dispatch(n, dom.NewEvent(dom.Click)) }

func (f *fixture) toggle(unit *dom.Node) {
	u, ok := f.view.UnitFor(unit)
	if !ok {
		panic("not a rendered unit")
	}
	u.ReadToggle.Checked = !u.ReadToggle.Checked
	f.doc.Dispatch(u.ReadToggle, dom.NewEvent(dom.Change))
}

func (f *fixture) remove(unit *dom.Node) {
	u, ok := f.view.UnitFor(unit)
	if !ok {
		panic("not a rendered unit")
	}
	f.click(u.Remove)
}

func (f *fixture) titles() []string {
	var out []string
	for _, n := range f.view.Units() {
		u, _ := f.view.UnitFor(n)
		out = append(out, u.Title.Text)
	}
	return out
}

// open shows the form and lets the outside-click listener attach.
func (f *fixture) open() {
	f.click(f.page.AddButton)
	f.sched.Advance(ShowDelay)
}
