// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// SuccessFunc delivers a task's terminal value. The engine guarantees
// that a SuccessFunc it owns (e.g. one installed by Promise or the
// event-loop helper) is called at most once; consumers must not throw
// and must tolerate being invoked on any goroutine.
type SuccessFunc[T any] func(T)

// FailureFunc delivers a task's terminal error. Same invariants as
// SuccessFunc.
type FailureFunc func(error)

// CancelFunc requests cooperative termination of a running task. It
// must be safe to call from any goroutine, at any time, repeatedly —
// the second and later calls are no-ops, including after the task has
// already completed.
type CancelFunc func()

// Task is a value-level description of a one-shot computation. Calling
// it starts a fresh, independent execution and returns a canceller.
// A task must not panic synchronously from the starting call, must not
// block the calling goroutine, and must eventually call exactly one of
// the two continuations it is given — or never, if cancelled first and
// the author defines no cancelled result.
type Task[T any] func(s SuccessFunc[T], f FailureFunc) CancelFunc

func noopCancel() {}
