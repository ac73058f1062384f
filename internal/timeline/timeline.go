// Package timeline is a cooperative scheduler for staged presentation work.
//
// Nothing runs on its own: time moves only when the owner calls Advance or
// AdvanceTo, and due callbacks run on the caller's goroutine in due-time order.
// Tests drive it as a virtual clock; the terminal UI advances it to wall-clock
// time on each frame tick.
package timeline

import (
	"container/heap"
	"time"
)

// DefaultFrameInterval approximates a 60Hz paint cadence.
const DefaultFrameInterval = 16 * time.Millisecond

// Handle cancels a scheduled callback.
type Handle interface {
	Stop() bool
}

// Timer is a scheduled callback.
type Timer struct {
	tl      *Timeline
	due     time.Time
	seq     uint64
	fn      func()
	index   int
	stopped bool
	fired   bool
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.tl.queue, t.index)
	}
	return true
}

// Due returns when the callback is scheduled to run.
func (t *Timer) Due() time.Time {
	return t.due
}

// Timeline owns a clock and the callbacks waiting on it. It is not safe for
// concurrent use.
type Timeline struct {
	now   time.Time
	frame time.Duration
	seq   uint64
	queue timerQueue
}

// New returns a timeline starting at start. NextFrame callbacks become due
// one frame interval after they are scheduled; a zero interval makes them due
// on the next Advance call.
func New(start time.Time, frame time.Duration) *Timeline {
	if frame < 0 {
		frame = 0
	}
	return &Timeline{now: start, frame: frame}
}

// Now returns the timeline's current time.
func (tl *Timeline) Now() time.Time {
	return tl.now
}

// FrameInterval returns the configured frame interval.
func (tl *Timeline) FrameInterval() time.Duration {
	return tl.frame
}

// After schedules fn to run once d has elapsed. A non-positive d still defers
// fn to the next Advance call.
func (tl *Timeline) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	tl.seq++
	t := &Timer{tl: tl, due: tl.now.Add(d), seq: tl.seq, fn: fn, index: -1}
	heap.Push(&tl.queue, t)
	return t
}

// NextFrame schedules fn before the next paint.
func (tl *Timeline) NextFrame(fn func()) Handle {
	return tl.After(tl.frame, fn)
}

// Pending returns the number of callbacks still waiting.
func (tl *Timeline) Pending() int {
	return tl.queue.Len()
}

// NextDue returns the due time of the earliest waiting callback.
func (tl *Timeline) NextDue() (time.Time, bool) {
	if tl.queue.Len() == 0 {
		return time.Time{}, false
	}
	return tl.queue[0].due, true
}

// Advance moves the clock forward by d and runs every callback that becomes
// due, including ones scheduled by callbacks along the way. It returns the
// number of callbacks run.
func (tl *Timeline) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return tl.AdvanceTo(tl.now.Add(d))
}

// AdvanceTo moves the clock to target, never backwards, running due callbacks
// in due-time order. Callbacks observe Now() equal to their due time.
func (tl *Timeline) AdvanceTo(target time.Time) int {
	if target.Before(tl.now) {
		target = tl.now
	}
	ran := 0
	for tl.queue.Len() > 0 {
		next := tl.queue[0]
		if next.due.After(target) {
			break
		}
		heap.Pop(&tl.queue)
		if next.due.After(tl.now) {
			tl.now = next.due
		}
		next.fired = true
		if next.fn != nil {
			next.fn()
		}
		ran++
	}
	tl.now = target
	return ran
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
