package viewport

import (
	"sort"
	"time"
)

// Clock supplies the current time to the animator.
type Clock interface {
	Now() time.Time
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler runs per-frame callbacks on behalf of the animator, the way a
// display-refresh callback would in a browser. Callbacks must run on the
// goroutine that owns the animator.
type Scheduler interface {
	Clock
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// FrameQueue is a cooperative Scheduler. Nothing runs until the owner calls
// Flush, which executes the callbacks that were pending when it started;
// callbacks requested during a flush wait for the next one. A FrameQueue is
// not safe for concurrent use.
type FrameQueue struct {
	clock   Clock
	next    FrameID
	pending map[FrameID]func(time.Time)
}

// NewFrameQueue returns a queue reading time from clock.
func NewFrameQueue(clock Clock) *FrameQueue {
	if clock == nil {
		clock = SystemClock
	}
	return &FrameQueue{clock: clock, pending: make(map[FrameID]func(time.Time))}
}

// Now implements Clock.
func (q *FrameQueue) Now() time.Time { return q.clock.Now() }

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// CancelFrame implements Scheduler. Cancelling an unknown or already-run
// frame is a no-op.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending returns the number of scheduled callbacks.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Flush runs every callback pending at call time, in request order, passing
// now as the frame timestamp. It returns how many callbacks ran.
func (q *FrameQueue) Flush(now time.Time) int {
	if len(q.pending) == 0 {
		return 0
	}
	ids := make([]FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		fn, ok := q.pending[id]
		if !ok {
			// cancelled by an earlier callback in this flush
			continue
		}
		delete(q.pending, id)
		fn(now)
		ran++
	}
	return ran
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}
