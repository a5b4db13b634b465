// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// E is an event wrapper bound to one loop's execution. On turns a
// user-supplied handler into a signal: a plain function that, called
// from any goroutine, enqueues the handler's next invocation onto the
// loop's FIFO rather than running it inline.
type E[T any] struct {
	l *loop[T]
}

// On wraps handler h, returning a signal that enqueues h(x) for the
// loop backing e. The extra type parameter X (the handler's own
// argument type) is why On is a free function rather than a method: Go
// does not allow a method to introduce type parameters beyond its
// receiver's.
func On[T, X any](e E[T], h func(X) Status[T]) func(X) {
	return func(x X) {
		e.l.enqueue(func() Status[T] { return h(x) })
	}
}

// NewTaskVia constructs a task backed by an event loop submitted to ex.
// boot receives the loop's event wrapper, wires up child subscriptions
// via On, and must return a cancellation handler — itself an ordinary
// handler, wrapped with On to become the task's CancelFunc. Every
// signal boot fires synchronously is buffered and drained only after
// boot returns.
func NewTaskVia[T any](ex Executor, boot func(E[T]) func() Status[T]) Task[T] {
	return func(s SuccessFunc[T], f FailureFunc) CancelFunc {
		l := newLoop(ex, s, f)
		l.pending.Store(1) // virtual reservation, released once boot returns
		e := E[T]{l: l}
		hc := boot(e)
		cancel := On(e, func(struct{}) Status[T] { return hc() })
		if l.pending.Add(-1) > 0 {
			ex.Submit(l.pump)
		}
		return func() { cancel(struct{}{}) }
	}
}

// NewTask is NewTaskVia using DefaultExecutor.
func NewTask[T any](boot func(E[T]) func() Status[T]) Task[T] {
	return NewTaskVia(DefaultExecutor(), boot)
}
