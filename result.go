// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// result is the memoized terminal outcome stored inside a closed
// Promise cell: either a success value or a failure error, never both.
// Adapted from the two-case sum shape of a teacher Either[E, A], sized
// down to the task contract's fixed error type.
type result[T any] struct {
	ok  bool
	val T
	err error
}

func okResult[T any](v T) result[T] { return result[T]{ok: true, val: v} }

func failResult[T any](err error) result[T] { return result[T]{err: err} }

// deliver replays the memoized outcome to one subscriber's pair of
// continuations.
func (r result[T]) deliver(s SuccessFunc[T], f FailureFunc) {
	if r.ok {
		s(r.val)
		return
	}
	f(r.err)
}
