// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Then runs t; on success, calls f with t's value to obtain a follow-up
// task and runs that instead, succeeding or failing with the follow-up
// task's outcome. Any failure from t propagates unchanged. Cancelling
// the outer task cancels whichever of t or the follow-up task is
// currently live; current is plain, unsynchronized state because every
// handler that reads or writes it is dispatched through the same event
// wrapper and therefore never runs concurrently with another.
func Then[A, B any](ex Executor, t Task[A], f func(A) Task[B]) Task[B] {
	return NewTaskVia(ex, func(e E[B]) func() Status[B] {
		var current CancelFunc
		current = t(
			On(e, func(a A) Status[B] {
				next := f(a)
				current = next(
					On(e, func(b B) Status[B] { return Done(b) }),
					On(e, func(err error) Status[B] { return Failed[B](err) }),
				)
				return Pending[B]()
			}),
			On(e, func(err error) Status[B] { return Failed[B](err) }),
		)
		return func() Status[B] {
			current()
			return Pending[B]()
		}
	})
}
