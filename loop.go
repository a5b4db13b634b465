// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync/atomic"

// loop is the single-writer serialized engine behind NewTask/NewTaskVia.
// Its FIFO (msQueue) accepts enqueues from any goroutine; exactly one
// pump goroutine drains it at a time. pending tracks queue occupancy so
// that the pump is (re)submitted only on a 0→1 transition, and so the
// boot function can buffer every signal it fires internally: NewTaskVia
// pre-sets pending to 1 as a virtual reservation before boot runs, so no enqueue during boot can ever itself observe 0→1 — only the
// explicit post-boot release can, and it does so at most once.
type loop[T any] struct {
	executor Executor
	queue    *msQueue[func() Status[T]]
	pending  atomic.Int64
	guard    onceGuard
	success  SuccessFunc[T]
	failure  FailureFunc
}

func newLoop[T any](ex Executor, s SuccessFunc[T], f FailureFunc) *loop[T] {
	return &loop[T]{
		executor: ex,
		queue:    newMSQueue[func() Status[T]](),
		success:  s,
		failure:  f,
	}
}

// enqueue buffers thunk and submits the pump iff the queue was empty.
// Once the loop has delivered a terminal result, further enqueues are
// dropped on a best-effort basis — a late arrival racing the terminal
// delivery may still be queued, but it never runs: the terminal path
// does not release pending, so no later enqueue sees a 0→1 transition
// and the pump is never resubmitted.
func (l *loop[T]) enqueue(thunk func() Status[T]) {
	if l.guard.done() {
		return
	}
	l.queue.push(thunk)
	if l.pending.Add(1) == 1 {
		l.executor.Submit(l.pump)
	}
}

func (l *loop[T]) pump() {
	for {
		thunk, ok := l.queue.pop()
		if !ok {
			return
		}
		status, panicErr := l.invoke(thunk)
		if panicErr != nil {
			l.deliverFailure(panicErr)
			return
		}
		switch {
		case status.IsFailed():
			l.deliverFailure(status.Err())
			return
		case status.IsDone():
			l.deliverSuccess(status.Value())
			return
		default:
			if l.pending.Add(-1) == 0 {
				return
			}
		}
	}
}

func (l *loop[T]) invoke(thunk func() Status[T]) (status Status[T], panicErr error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr = toPanicError(r)
		}
	}()
	status = thunk()
	return
}

func (l *loop[T]) deliverSuccess(v T) {
	l.guard.fire(func() { l.success(v) })
}

func (l *loop[T]) deliverFailure(err error) {
	l.guard.fire(func() {
		logf(LevelDebug, "event loop terminated with failure", F("error", err))
		l.failure(err)
	})
}
