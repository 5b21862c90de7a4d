// Package asynctask runs one logical background operation at a time and
// exposes its latest status. Starting a new operation supersedes the
// previous one: results of superseded operations are discarded.
package asynctask

import (
	"context"
	"fmt"
	"sync"
)

// State is the lifecycle state of the current operation.
type State int

// Operation states.
const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is a snapshot of the current operation.
// Value is meaningful only when State is StateLoaded, Err only when StateError.
type Status[T any] struct {
	Value T
	Err   string
	State State
}

// Operation produces a value for an input.
type Operation[I, T any] func(ctx context.Context, input I) (T, error)

// Runner owns the generation counter and status of one logical operation.
// Fields are ordered to minimize memory padding.
type Runner[I, T any] struct {
	ctx    context.Context
	op     Operation[I, T]
	notify chan<- struct{}
	status Status[T]
	wg     sync.WaitGroup
	gen    uint64
	mu     sync.Mutex
}

// New creates an idle Runner. Status changes are signalled on notify with a
// non-blocking send, so a buffered channel of capacity 1 coalesces bursts.
// ctx is passed to every operation; cancelling it does not change status.
func New[I, T any](ctx context.Context, op Operation[I, T], notify chan<- struct{}) *Runner[I, T] {
	return &Runner[I, T]{
		ctx:    ctx,
		op:     op,
		notify: notify,
	}
}

// Start supersedes any in-flight operation and launches op(input).
// It returns the generation assigned to the new operation.
func (r *Runner[I, T]) Start(input I) uint64 {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.status = Status[T]{State: StateLoading}
	r.mu.Unlock()

	r.signal()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		value, err := r.run(input)
		r.complete(gen, value, err)
	}()

	return gen
}

// Status returns a consistent snapshot of the current status.
func (r *Runner[I, T]) Status() Status[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Generation returns the generation of the most recently started operation.
func (r *Runner[I, T]) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Wait blocks until every launched operation has returned.
func (r *Runner[I, T]) Wait() {
	r.wg.Wait()
}

func (r *Runner[I, T]) run(input I) (value T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("operation panicked: %v", p)
		}
	}()
	return r.op(r.ctx, input)
}

// complete applies a result only if gen is still current.
// The check and the write share one critical section.
func (r *Runner[I, T]) complete(gen uint64, value T, err error) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	if err != nil {
		r.status = Status[T]{State: StateError, Err: err.Error()}
	} else {
		r.status = Status[T]{State: StateLoaded, Value: value}
	}
	r.mu.Unlock()

	r.signal()
}

func (r *Runner[I, T]) signal() {
	if r.notify == nil {
		return
	}
	select {
	case r.notify <- struct{}{}:
	default:
	}
}
