// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync"

// Race runs every task in parallel and succeeds with the first child
// to succeed, cancelling every other still-live child exactly once. If
// every child fails, Race fails with an *AggregateError carrying every
// child error, in argument order. With zero tasks, Race fails
// synchronously with an empty *AggregateError.
func Race[T any](ex Executor, tasks ...Task[T]) Task[T] {
	if len(tasks) == 0 {
		return Failure[T](&AggregateError{})
	}
	return NewTaskVia(ex, func(e E[T]) func() Status[T] {
		size := len(tasks)
		errs := make([]error, size)
		filled := make([]bool, size)
		failed := 0
		cancels := make([]CancelFunc, size)
		var cancelOnce sync.Once
		cancelAll := func() {
			cancelOnce.Do(func() {
				for _, c := range cancels {
					if c != nil {
						c()
					}
				}
			})
		}

		for i, t := range tasks {
			onSuccess := On(e, func(v T) Status[T] {
				cancelAll()
				return Done(v)
			})
			onFailure := On(e, func(err error) Status[T] {
				if filled[i] {
					return Pending[T]()
				}
				filled[i] = true
				errs[i] = err
				failed++
				if failed == size {
					return Failed[T](&AggregateError{Errs: append([]error(nil), errs...)})
				}
				return Pending[T]()
			})
			cancels[i] = t(onSuccess, onFailure)
		}

		return func() Status[T] {
			cancelAll()
			return Pending[T]()
		}
	})
}
