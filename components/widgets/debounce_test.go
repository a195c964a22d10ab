package widgets

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerRunsOnlyLastTask(t *testing.T) {
	clock := NewManualScheduler()
	d := NewDebouncer(300*time.Millisecond, clock)
	var ran []string

	for _, q := range []string{"a", "ab", "abc"} {
		q := q
		d.Schedule(func() { ran = append(ran, q) })
		clock.Advance(200 * time.Millisecond)
	}
	require.True(t, d.Pending())
	clock.Advance(100 * time.Millisecond)

	assert.Equal(t, []string{"abc"}, ran)
	assert.False(t, d.Pending())
}

func TestDebouncerCancel(t *testing.T) {
	clock := NewManualScheduler()
	d := NewDebouncer(time.Second, clock)
	ran := false
	d.Schedule(func() { ran = true })
	d.Cancel()
	clock.Advance(2 * time.Second)

	assert.False(t, ran)
	assert.Equal(t, 0, clock.Pending())
}

func TestDebouncerDropsStaleFire(t *testing.T) {
	// a scheduler whose timers cannot be stopped, like a fire already in flight
	clock := &unstoppableScheduler{inner: NewManualScheduler()}
	d := NewDebouncer(10*time.Millisecond, clock)
	var runs int32
	d.Schedule(func() { atomic.AddInt32(&runs, 1) })
	d.Schedule(func() { atomic.AddInt32(&runs, 10) })
	clock.inner.Advance(10 * time.Millisecond)

	assert.Equal(t, int32(10), atomic.LoadInt32(&runs))
}

func TestDebouncerWithSystemScheduler(t *testing.T) {
	d := NewDebouncer(5*time.Millisecond, nil)
	done := make(chan struct{})
	d.Schedule(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected debounced task to run")
	}
	assert.Equal(t, 5*time.Millisecond, d.Delay())
}

func TestManualSchedulerOrdersByDeadline(t *testing.T) {
	clock := NewManualScheduler()
	var order []int
	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	clock.AfterFunc(10*time.Millisecond, func() {
		order = append(order, 2)
		clock.AfterFunc(5*time.Millisecond, func() { order = append(order, 4) })
	})
	clock.Advance(20 * time.Millisecond)
	assert.Equal(t, []int{1, 2, 4}, order)

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, []int{1, 2, 4, 3}, order)
}

type unstoppableScheduler struct {
	inner *ManualScheduler
}

func (s *unstoppableScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.inner.AfterFunc(d, f)
	return noStop{}
}

type noStop struct{}

func (noStop) Stop() bool { return false }
