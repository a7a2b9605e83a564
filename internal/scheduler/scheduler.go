// Package scheduler defers callbacks to the next animation frame.
package scheduler

import (
	"log/slog"
	"runtime/debug"
	"sync"
)

// Scheduler runs fn at some later point, in the order callbacks were scheduled.
type Scheduler interface {
	Schedule(fn func())
}

// FrameQueue holds callbacks until the next Flush. Callbacks scheduled while
// a flush is running belong to the following frame.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func()
	frames  int
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Schedule appends fn to the current frame. Every call queues exactly one
// callback; nothing is coalesced.
func (q *FrameQueue) Schedule(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Frames returns how many non-empty frames have been flushed.
func (q *FrameQueue) Frames() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames
}

// Flush runs one frame and returns the number of callbacks it ran.
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	if len(batch) > 0 {
		q.frames++
	}
	q.mu.Unlock()

	for _, fn := range batch {
		run(fn)
	}
	return len(batch)
}

// Drain flushes frames until the queue stays empty or maxFrames is reached.
func (q *FrameQueue) Drain(maxFrames int) int {
	total := 0
	for i := 0; i < maxFrames; i++ {
		n := q.Flush()
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

func run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("frame callback panic", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Immediate runs callbacks synchronously. Hosts without a frame loop use it.
type Immediate struct{}

// Schedule calls fn right away.
func (Immediate) Schedule(fn func()) {
	if fn != nil {
		fn()
	}
}
