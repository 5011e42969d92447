package psort

import (
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Scheduler runs units of work, possibly concurrently with the caller.
// Implementations must eventually run every submitted function exactly once;
// they are free to run it inline on the submitting goroutine.
type Scheduler interface {
	Run(fn func())
}

// Task is the pending result of a forked computation.
type Task[T any] struct {
	done   chan struct{}
	result T
}

// Fork schedules fn on s and returns a Task that yields its result.
// It panics if s is nil, before anything is scheduled.
func Fork[T any](s Scheduler, fn func() T) *Task[T] {
	if s == nil {
		panic("psort: nil scheduler")
	}
	t := &Task[T]{done: make(chan struct{})}
	s.Run(func() {
		t.result = fn()
		close(t.done)
	})
	return t
}

// Join blocks until the forked computation has finished and returns its
// result. Join may be called any number of times.
func (t *Task[T]) Join() T {
	<-t.done
	return t.result
}

// Sequential runs every submitted function inline on the caller. Forking on
// it degrades Sort to an ordinary recursive merge sort, which is useful for
// debugging and as a benchmark baseline.
var Sequential Scheduler = sequential{}

type sequential struct{}

func (sequential) Run(fn func()) { fn() }

// Pool is a Scheduler that bounds the number of concurrently running
// goroutines. When all worker slots are taken, Run executes the function
// inline on the submitting goroutine instead of queuing it. Under fork/join
// recursion this keeps deep fan-out from building an unbounded queue and
// makes it impossible for a parent to deadlock waiting on a child that
// cannot be scheduled.
type Pool struct {
	slots *semaphore.Weighted
}

// NewPool creates a scheduler that admits up to workers concurrent
// goroutines. If workers <= 0 it defaults to runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{slots: semaphore.NewWeighted(int64(workers))}
}

// Run executes fn on a new goroutine if a worker slot is free, inline
// otherwise.
func (p *Pool) Run(fn func()) {
	if !p.slots.TryAcquire(1) {
		fn()
		return
	}
	go func() {
		defer p.slots.Release(1)
		fn()
	}()
}
