// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync"

// Join runs every task in parallel and succeeds with all of their
// results, in argument order, once every one of them has succeeded. If
// any child fails, every other still-live child's canceller is invoked
// exactly once before the outer failure fires. With zero tasks, Join
// succeeds synchronously with an empty slice.
func Join[R any](ex Executor, tasks ...Task[R]) Task[[]R] {
	if len(tasks) == 0 {
		return Success([]R{})
	}
	return NewTaskVia(ex, func(e E[[]R]) func() Status[[]R] {
		size := len(tasks)
		args := make([]R, size)
		filled := make([]bool, size)
		completed := 0
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
			onSuccess := On(e, func(v R) Status[[]R] {
				if filled[i] {
					return Pending[[]R]()
				}
				filled[i] = true
				args[i] = v
				completed++
				if completed == size {
					return Done(append([]R(nil), args...))
				}
				return Pending[[]R]()
			})
			onFailure := On(e, func(err error) Status[[]R] {
				cancelAll()
				return Failed[[]R](err)
			})
			cancels[i] = t(onSuccess, onFailure)
		}

		return func() Status[[]R] {
			cancelAll()
			return Pending[[]R]()
		}
	})
}
