// Package async turns any request function into an observable,
// re-triggerable unit of state. Each Op instance is independent; there
// is no shared cache and no deduplication of in-flight calls.
package async

import (
	"context"
	"sync"
)

// None is the argument type of operations that take no input.
type None = struct{}

// State is a snapshot of an operation's lifecycle. Data keeps its
// previous value while a refetch is in flight and after a failure.
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Op wraps one request function. Execute runs it and applies the
// outcome to the state; Reset restores the initial snapshot.
//
// Every Execute is tagged with a sequence number. A resolution whose
// number is no longer the latest (a newer Execute started, or Reset
// was called) is returned to its caller but never applied to the
// state, so last-called wins rather than last-to-resolve.
type Op[A, T any] struct {
	fn      func(context.Context, A) (T, error)
	initial T

	mu    sync.Mutex
	seq   uint64
	state State[T]

	subMu   sync.Mutex
	subs    map[uint64]func(State[T])
	nextSub uint64
}

func New[A, T any](fn func(context.Context, A) (T, error), initial T) *Op[A, T] {
	return &Op[A, T]{
		fn:      fn,
		initial: initial,
		state:   State[T]{Data: initial},
		subs:    make(map[uint64]func(State[T])),
	}
}

// State returns the current snapshot.
func (o *Op[A, T]) State() State[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Execute runs the operation and returns its result to the caller in
// addition to storing it, so call sites can chain on the value (for
// example reading a newly created id).
//
// While the call is pending the state is {Data: previous, Loading:
// true, Err: nil}. On failure Data is left untouched and the error is
// both stored and returned. If ctx is cancelled the result is dropped:
// the state keeps its previous Data and records the context error.
func (o *Op[A, T]) Execute(ctx context.Context, arg A) (T, error) {
	o.mu.Lock()
	o.seq++
	seq := o.seq
	o.state.Loading = true
	o.state.Err = nil
	snapshot := o.state
	o.mu.Unlock()
	o.notify(snapshot)

	result, err := o.fn(ctx, arg)

	o.mu.Lock()
	if seq != o.seq {
		// A newer Execute or a Reset superseded this call; the
		// caller still gets the outcome but the state does not.
		o.mu.Unlock()
		if err != nil {
			var zero T
			return zero, err
		}
		return result, nil
	}

	if cause := ctx.Err(); cause != nil && err == nil {
		err = cause
	}

	if err != nil {
		o.state.Loading = false
		o.state.Err = err
		snapshot = o.state
		o.mu.Unlock()
		o.notify(snapshot)
		var zero T
		return zero, err
	}

	o.state = State[T]{Data: result}
	snapshot = o.state
	o.mu.Unlock()
	o.notify(snapshot)
	return result, nil
}

// Reset restores the initial snapshot and invalidates any in-flight
// Execute so its late resolution is discarded. Idempotent.
func (o *Op[A, T]) Reset() {
	o.mu.Lock()
	o.seq++
	o.state = State[T]{Data: o.initial}
	snapshot := o.state
	o.mu.Unlock()
	o.notify(snapshot)
}

// Subscribe registers a listener called with every state change. The
// returned function removes the listener.
func (o *Op[A, T]) Subscribe(fn func(State[T])) func() {
	o.subMu.Lock()
	o.nextSub++
	id := o.nextSub
	o.subs[id] = fn
	o.subMu.Unlock()

	return func() {
		o.subMu.Lock()
		delete(o.subs, id)
		o.subMu.Unlock()
	}
}

func (o *Op[A, T]) notify(s State[T]) {
	o.subMu.Lock()
	fns := make([]func(State[T]), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
