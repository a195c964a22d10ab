package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
)

// fireMsg carries a due timer callback into the program's event loop.
type fireMsg struct {
	fn func()
}

// ProgramScheduler runs widget timers on the bubbletea event loop: timers are
// armed with time.AfterFunc and their callbacks are posted back with
// Program.Send, so widget state only changes inside Update.
type ProgramScheduler struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewProgramScheduler returns a scheduler that runs callbacks inline until a
// program is attached.
func NewProgramScheduler() *ProgramScheduler {
	return &ProgramScheduler{}
}

// Attach routes future callbacks through p.
func (s *ProgramScheduler) Attach(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

var _ widgets.Scheduler = (*ProgramScheduler)(nil)

// AfterFunc satisfies widgets.Scheduler.
func (s *ProgramScheduler) AfterFunc(d time.Duration, f func()) widgets.Timer {
	return time.AfterFunc(d, func() {
		s.mu.Lock()
		program := s.program
		s.mu.Unlock()
		if program == nil {
			f()
			return
		}
		program.Send(fireMsg{fn: f})
	})
}
