// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Else runs t; on failure, calls f with t's error to obtain a recovery
// task and runs that instead, succeeding or failing with the recovery
// task's outcome. Any success from t propagates unchanged. Symmetric to
// Then; see Then's doc comment for the cancellation-state rationale.
func Else[T any](ex Executor, t Task[T], f func(error) Task[T]) Task[T] {
	return NewTaskVia(ex, func(e E[T]) func() Status[T] {
		var current CancelFunc
		current = t(
			On(e, func(v T) Status[T] { return Done(v) }),
			On(e, func(err error) Status[T] {
				next := f(err)
				current = next(
					On(e, func(v T) Status[T] { return Done(v) }),
					On(e, func(err2 error) Status[T] { return Failed[T](err2) }),
				)
				return Pending[T]()
			}),
		)
		return func() Status[T] {
			current()
			return Pending[T]()
		}
	})
}
