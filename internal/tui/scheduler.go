package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/library/internal/view"
)

// timerFiredMsg is delivered when a scheduled call is due.
type timerFiredMsg struct{ seq uint64 }

// tickScheduler runs the view's delayed actions on the Bubble Tea loop. Each
// call gets a sequence number; a tick whose call was stopped is ignored when
// it arrives.
type tickScheduler struct {
	seq     uint64
	pending map[uint64]func()
	cmds    []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{pending: make(map[uint64]func())}
}

type tickTimer struct {
	s   *tickScheduler
	seq uint64
}

func (t *tickTimer) Stop() bool {
	if _, ok := t.s.pending[t.seq]; !ok {
		return false
	}
	delete(t.s.pending, t.seq)
	return true
}

func (s *tickScheduler) After(d time.Duration, fn func()) view.Timer {
	s.seq++
	seq := s.seq
	s.pending[seq] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return timerFiredMsg{seq: seq} }))
	return &tickTimer{s: s, seq: seq}
}

// fire runs the call for seq if it is still pending.
func (s *tickScheduler) fire(seq uint64) bool {
	fn, ok := s.pending[seq]
	if !ok {
		return false
	}
	delete(s.pending, seq)
	fn()
	return true
}

// drain returns the ticks scheduled since the last drain.
func (s *tickScheduler) drain() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return cmds
}
