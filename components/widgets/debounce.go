package widgets

import (
	"sync"
	"time"
)

// Debouncer runs only the most recent scheduled task once the delay elapses
// without another Schedule call. At most one task is outstanding.
type Debouncer struct {
	delay     time.Duration
	scheduler Scheduler

	mu    sync.Mutex
	timer Timer
	seq   uint64
}

// NewDebouncer builds a debouncer on top of scheduler (time.AfterFunc when nil).
func NewDebouncer(delay time.Duration, scheduler Scheduler) *Debouncer {
	return &Debouncer{
		delay:     delay,
		scheduler: normalizeScheduler(scheduler),
	}
}

// Schedule cancels any pending task and schedules fn.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.seq++
	seq := d.seq
	d.timer = d.scheduler.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if seq != d.seq {
			// superseded after the timer had already fired
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending task, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.seq++
}

// Pending reports whether a task is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
