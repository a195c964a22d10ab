package widgets

import (
	"sort"
	"sync"
	"time"
)

// Timer is a cancelable single-shot task.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Hosts with a single event loop can supply a
// scheduler that posts f into that loop instead of running it on a timer goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules with time.AfterFunc.
type SystemScheduler struct{}

// AfterFunc satisfies Scheduler.
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func normalizeScheduler(s Scheduler) Scheduler {
	if s == nil {
		return SystemScheduler{}
	}
	return s
}

// ManualScheduler is a virtual clock. Nothing fires until Advance is called,
// and due tasks run on the caller's goroutine in deadline order.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner   *ManualScheduler
	at      time.Duration
	order   int
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc satisfies Scheduler.
func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	task := &manualTask{owner: m, at: m.now + d, order: m.seq, fn: f}
	m.tasks = append(m.tasks, task)
	return task
}

// Advance moves the clock forward and runs every task that became due.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()
	for {
		task := m.nextDue(target)
		if task == nil {
			break
		}
		task.fn()
	}
	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// Pending reports how many tasks are scheduled and not yet fired or stopped.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, task := range m.tasks {
		if !task.stopped && !task.fired {
			count++
		}
	}
	return count
}

func (m *ManualScheduler) nextDue(target time.Duration) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	live := m.tasks[:0]
	for _, task := range m.tasks {
		if !task.stopped && !task.fired {
			live = append(live, task)
		}
	}
	m.tasks = live
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at != m.tasks[j].at {
			return m.tasks[i].at < m.tasks[j].at
		}
		return m.tasks[i].order < m.tasks[j].order
	})
	if len(m.tasks) == 0 || m.tasks[0].at > target {
		return nil
	}
	task := m.tasks[0]
	task.fired = true
	m.now = task.at
	return task
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
