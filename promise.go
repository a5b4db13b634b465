// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"sync/atomic"

	"github.com/google/uuid"
)

type subscriber[T any] struct {
	deliver func(result[T])
}

// promiseState is an immutable snapshot: either open with a subscriber
// map, or closed with a memoized result. Promise swaps the pointer with
// a CAS on every transition, so reads never observe a torn state.
type promiseState[T any] struct {
	closed      bool
	result      result[T]
	subscribers map[string]subscriber[T]
}

func cloneOpenState[T any](s *promiseState[T]) *promiseState[T] {
	next := &promiseState[T]{subscribers: make(map[string]subscriber[T], len(s.subscribers)+1)}
	for k, v := range s.subscribers {
		next.subscribers[k] = v
	}
	return next
}

// Promise is a completable, memoized task. Its Task method yields the
// subscribable side of the contract; Complete is the completer, to be
// called at most meaningfully once (later calls are dropped).
type Promise[T any] struct {
	state atomic.Pointer[promiseState[T]]
}

// NewPromise returns an open, unsubscribed, uncompleted promise.
func NewPromise[T any]() *Promise[T] {
	p := &Promise[T]{}
	p.state.Store(&promiseState[T]{subscribers: make(map[string]subscriber[T])})
	return p
}

// Task returns the promise's subscribable side.
func (p *Promise[T]) Task() Task[T] {
	return p.subscribe
}

func (p *Promise[T]) subscribe(s SuccessFunc[T], f FailureFunc) CancelFunc {
	guard := &onceGuard{}
	deliver := func(r result[T]) {
		guard.fire(func() { r.deliver(s, f) })
	}
	for {
		cur := p.state.Load()
		if cur.closed {
			deliver(cur.result)
			return noopCancel
		}
		key := uuid.NewString()
		next := cloneOpenState(cur)
		next.subscribers[key] = subscriber[T]{deliver: deliver}
		if p.state.CompareAndSwap(cur, next) {
			return func() { p.cancelSubscriber(key, deliver) }
		}
		// lost the race to a concurrent subscribe/complete; retry with
		// a fresh key against the current state.
	}
}

func (p *Promise[T]) cancelSubscriber(key string, deliver func(result[T])) {
	for {
		cur := p.state.Load()
		if cur.closed {
			return
		}
		if _, ok := cur.subscribers[key]; !ok {
			return
		}
		next := cloneOpenState(cur)
		delete(next.subscribers, key)
		if p.state.CompareAndSwap(cur, next) {
			logf(LevelDebug, "promise subscriber cancelled")
			deliver(failResult[T](&CancelledError{}))
			return
		}
	}
}

// Complete subscribes the promise's own terminal latch to t, starting
// it immediately. The first of t's success or failure closes the
// promise and broadcasts the memoized result to every currently
// subscribed delivery thunk; later arrivals from t are dropped.
func (p *Promise[T]) Complete(t Task[T]) CancelFunc {
	guard := &onceGuard{}
	return t(
		func(v T) { guard.fire(func() { p.close(okResult(v)) }) },
		func(err error) { guard.fire(func() { p.close(failResult[T](err)) }) },
	)
}

func (p *Promise[T]) close(r result[T]) {
	for {
		cur := p.state.Load()
		if cur.closed {
			return
		}
		next := &promiseState[T]{closed: true, result: r}
		if p.state.CompareAndSwap(cur, next) {
			for _, sub := range cur.subscribers {
				sub.deliver(r)
			}
			return
		}
	}
}
